package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/wildfunctions/weierstrass/pkg/series"
)

// NewChart builds an interactive line chart of s.
func NewChart(s *series.Samples) (*charts.Line, error) {
	if s == nil || s.Len() == 0 {
		return nil, fmt.Errorf("%w: no samples to chart", series.ErrInvalidArgument)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Weierstrass function", Width: "1200px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Weierstrass function", Subtitle: s.Candidate.String()}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "x", Min: s.MinX, Max: s.MaxX, NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "W(x)", NameLocation: "middle", NameGap: 40}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
	)

	data := make([]opts.LineData, 0, s.Len())
	for _, p := range s.Points {
		data = append(data, opts.LineData{Value: []interface{}{p.X, p.Y}})
	}
	line.AddSeries("W(x)", data, charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}))
	return line, nil
}

// HTML renders s as a standalone HTML page.
func HTML(w io.Writer, s *series.Samples) error {
	line, err := NewChart(s)
	if err != nil {
		return err
	}
	return line.Render(w)
}
