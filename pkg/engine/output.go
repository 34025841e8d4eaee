package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/wildfunctions/weierstrass/pkg/params"
	"github.com/wildfunctions/weierstrass/pkg/series"
)

// Report summarizes one run.
type Report struct {
	RunID      string            `json:"run_id"`
	Timestamp  time.Time         `json:"timestamp"`
	Seed       int64             `json:"seed"`
	Config     Config            `json:"config"`
	Parameters params.Parameters `json:"parameters"`
	Candidate  string            `json:"candidate"`
	LaTeX      string            `json:"latex"`
	Summary    series.Summary    `json:"summary"`
	Samples    *series.Samples   `json:"samples"`
	Outputs    []string          `json:"outputs,omitempty"`
}

// formatValue prints a float the way a default C++ ostream does: six
// significant digits, shortest of fixed or exponent form.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// WriteTextParameters writes the chosen parameter line.
func WriteTextParameters(w io.Writer, p params.Parameters) {
	fmt.Fprintf(w, "Random a: %.2f, b: %d, range: %d\n", p.A, p.B, p.Range)
}

// WriteTextSamples writes the sampled point list.
func WriteTextSamples(w io.Writer, s *series.Samples) {
	fmt.Fprintln(w, "Weierstrass Group:")
	fmt.Fprintf(w, "%d points generated.\n", s.N)
	fmt.Fprintln(w, "x and y values:")
	for i, p := range s.Points {
		fmt.Fprintf(w, "(%d) x: %s, y: %s\n", i, formatValue(p.X), formatValue(p.Y))
	}
}

// WriteText writes the report in the plain-text console format.
func WriteText(w io.Writer, r Report) {
	WriteTextParameters(w, r.Parameters)
	if r.Samples != nil {
		WriteTextSamples(w, r.Samples)
	}
}

// WriteSummary writes a short human-readable digest of the run.
func WriteSummary(w io.Writer, r Report) {
	fmt.Fprintf(w, "Run:       %s\n", r.RunID)
	fmt.Fprintf(w, "Selector:  %s (seed %d)\n", r.Parameters.Selector, r.Seed)
	fmt.Fprintf(w, "Series:    %s\n", r.Candidate)
	fmt.Fprintf(w, "LaTeX:     %s\n", r.LaTeX)
	fmt.Fprintf(w, "y range:   [%s, %s]\n", formatValue(r.Summary.Min), formatValue(r.Summary.Max))
	fmt.Fprintf(w, "Mean:      %s\n", formatValue(r.Summary.Mean))
	fmt.Fprintf(w, "Std dev:   %s\n", formatValue(r.Summary.StdDev))
	fmt.Fprintf(w, "Bound:     %s\n", formatValue(r.Summary.Bound))
	for _, out := range r.Outputs {
		fmt.Fprintf(w, "Wrote:     %s\n", out)
	}
}

// WriteJSON writes the report as JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
