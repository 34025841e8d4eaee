package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/weierstrass/pkg/series"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_Apply(t *testing.T) {
	path := writeFile(t, "run.json", `{
		"selector": "stable",
		"a": 0.3,
		"range": 20,
		"min_x": -1,
		"max_x": 3,
		"order": 12,
		"count": 64,
		"convention": "points",
		"seed": 9,
		"format": "json"
	}`)

	fc, err := LoadConfig(path)
	require.NoError(t, err)

	cfg := DefaultConfig()
	fc.Apply(&cfg)

	assert.Equal(t, "stable", cfg.Selector)
	require.NotNil(t, cfg.Overrides.A)
	assert.Equal(t, 0.3, *cfg.Overrides.A)
	assert.Nil(t, cfg.Overrides.B)
	require.NotNil(t, cfg.Overrides.Range)
	assert.Equal(t, 20, *cfg.Overrides.Range)
	assert.Equal(t, -1.0, cfg.MinX)
	assert.Equal(t, 3.0, cfg.MaxX)
	assert.Equal(t, 12, cfg.Order)
	assert.Equal(t, 64, cfg.Count)
	assert.Equal(t, series.Points, cfg.Convention)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, "json", cfg.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_PartialKeepsDefaults(t *testing.T) {
	path := writeFile(t, "partial.json", `{"order": 5}`)
	fc, err := LoadConfig(path)
	require.NoError(t, err)

	cfg := DefaultConfig()
	fc.Apply(&cfg)

	want := DefaultConfig()
	want.Order = 5
	assert.Equal(t, want, cfg)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(writeFile(t, "run.yaml", `{}`))
	assert.ErrorContains(t, err, ".json extension")

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "stat")

	_, err = LoadConfig(writeFile(t, "bad.json", `{"order": "many"}`))
	assert.ErrorContains(t, err, "parse")

	_, err = LoadConfig(writeFile(t, "conv.json", `{"convention": "sideways"}`))
	assert.Error(t, err)
}
