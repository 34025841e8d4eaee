package render

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/weierstrass/pkg/series"
)

func TestNiceStep(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{1, 1},
		{1.2, 2},
		{2, 2},
		{3, 5},
		{7, 10},
		{10, 10},
		{1000, 1000},
		{0.2, 0.2},
		{0.03, 0.05},
		{0.0011, 0.002},
		{-2e6, -2e6},
		{-4.5, -5},
		{123456, 200000},
	}
	for _, tc := range tests {
		got := NiceStep(tc.in)
		if math.Abs(got-tc.want) > 1e-9*math.Max(1, math.Abs(tc.want)) {
			t.Errorf("NiceStep(%g) = %g, want %g", tc.in, got, tc.want)
		}
	}
}

func TestNiceTicker(t *testing.T) {
	ticks := NiceTicker{}.Ticks(-2, 2)
	require.NotEmpty(t, ticks)

	// 4/8 = 0.5 is already on the ladder.
	want := []float64{-2, -1.5, -1, -0.5, 0, 0.5, 1, 1.5, 2}
	require.Len(t, ticks, len(want))
	for i, tk := range ticks {
		assert.InDelta(t, want[i], tk.Value, 1e-12)
		assert.NotEmpty(t, tk.Label)
	}
	assert.Equal(t, "0", ticks[4].Label)
}

func TestNiceTicker_Degenerate(t *testing.T) {
	ticks := NiceTicker{Target: 5}.Ticks(1, 1)
	require.Len(t, ticks, 1)
	assert.Equal(t, 1.0, ticks[0].Value)
}

func testSamples(t *testing.T) *series.Samples {
	t.Helper()
	s, err := series.Group(0.5, 7, -1, 1, 10, 200, series.Intervals)
	require.NoError(t, err)
	return s
}

func TestNewPlot(t *testing.T) {
	p, err := NewPlot(testSamples(t))
	require.NoError(t, err)
	assert.Contains(t, p.Title.Text, "Sum_{i=0}^{10}")

	_, err = NewPlot(&series.Samples{})
	assert.ErrorIs(t, err, series.ErrInvalidArgument)
}

func TestSavePlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w.png")
	require.NoError(t, SavePlot(testSamples(t), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, testSamples(t)))
	out := buf.String()
	assert.Contains(t, out, "echarts")
	assert.Contains(t, out, "Weierstrass function")

	assert.ErrorIs(t, HTML(&buf, nil), series.ErrInvalidArgument)
}
