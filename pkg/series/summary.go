package series

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Bound returns Sum_{i=0}^{n} |a|^i, an upper bound on |W(a, b, x; n)| for
// any b and x since |cos| <= 1.
func Bound(a float64, n int) float64 {
	var sum float64
	for i := 0; i <= n; i++ {
		sum += math.Pow(math.Abs(a), float64(i))
	}
	return sum
}

// Summary describes the y values of a sample set.
type Summary struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Bound  float64 `json:"bound"`
}

// Summarize computes y statistics for s. It returns the zero Summary for an
// empty sample set.
func Summarize(s *Samples) Summary {
	if s == nil || len(s.Points) == 0 {
		return Summary{}
	}
	_, ys := s.XYs()
	sum := Summary{
		Min:   floats.Min(ys),
		Max:   floats.Max(ys),
		Mean:  stat.Mean(ys, nil),
		Bound: Bound(s.Candidate.A, s.Candidate.Order),
	}
	if len(ys) > 1 {
		sum.StdDev = stat.StdDev(ys, nil)
	}
	return sum
}
