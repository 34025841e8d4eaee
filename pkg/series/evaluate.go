package series

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidArgument reports a precondition violation: bad domain bounds,
// non-positive point count, negative order or an unusable parameter.
var ErrInvalidArgument = errors.New("invalid argument")

// Weierstrass computes Sum_{i=0}^{n} a^i * cos(b^i * pi * x).
// A negative n sums no terms and yields 0. The result is NaN once
// b^n * pi * x overflows float64; Group rejects such inputs.
func Weierstrass(a, b, x float64, n int) float64 {
	var sum float64
	for i := 0; i <= n; i++ {
		fi := float64(i)
		sum += math.Pow(a, fi) * math.Cos(math.Pow(b, fi)*math.Pi*x)
	}
	return sum
}

// Point is one sampled (x, y) pair.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Samples is a sampled Weierstrass curve. The caller owns Points; there is
// nothing to release.
type Samples struct {
	Candidate  Candidate  `json:"candidate"`
	MinX       float64    `json:"min_x"`
	MaxX       float64    `json:"max_x"`
	N          int        `json:"count"`
	Convention Convention `json:"convention"`
	Step       float64    `json:"step"`
	Points     []Point    `json:"points"`
}

// Len returns the number of sampled points.
func (s *Samples) Len() int { return len(s.Points) }

// XYs returns the x and y coordinates as two parallel slices.
func (s *Samples) XYs() (xs, ys []float64) {
	xs = make([]float64, len(s.Points))
	ys = make([]float64, len(s.Points))
	for i, p := range s.Points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}

// Group samples the series of order n at evenly spaced x values spanning
// [minX, maxX], both endpoints included. Under Intervals the span is cut into
// N steps (N+1 points); under Points exactly N points are produced.
// On any precondition failure no samples are returned.
func Group(a, b, minX, maxX float64, n, N int, conv Convention) (*Samples, error) {
	if N <= 0 {
		return nil, fmt.Errorf("%w: N must be positive, got %d", ErrInvalidArgument, N)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: n must be non-negative, got %d", ErrInvalidArgument, n)
	}
	if !finite(minX) || !finite(maxX) {
		return nil, fmt.Errorf("%w: domain bounds must be finite, got [%g, %g]", ErrInvalidArgument, minX, maxX)
	}
	if minX >= maxX {
		return nil, fmt.Errorf("%w: min_x must be less than max_x, got [%g, %g]", ErrInvalidArgument, minX, maxX)
	}
	if math.IsInf(maxX-minX, 0) {
		return nil, fmt.Errorf("%w: domain width overflows for [%g, %g]", ErrInvalidArgument, minX, maxX)
	}
	if !finite(a) || !finite(b) {
		return nil, fmt.Errorf("%w: a and b must be finite, got a=%g b=%g", ErrInvalidArgument, a, b)
	}

	// The largest cosine argument is |b|^n * pi * max(|minX|, |maxX|).
	xMax := math.Max(math.Abs(minX), math.Abs(maxX))
	if math.IsInf(math.Pow(math.Abs(b), float64(n))*math.Pi*xMax, 0) {
		return nil, fmt.Errorf("%w: b^n * pi * x overflows for b=%g, n=%d, |x| <= %g", ErrInvalidArgument, b, n, xMax)
	}

	count, err := conv.PointCount(N)
	if err != nil {
		return nil, err
	}

	xs := floats.Span(make([]float64, count), minX, maxX)
	c := Candidate{A: a, B: b, Order: n}
	pts := make([]Point, count)
	for i, x := range xs {
		pts[i] = Point{X: x, Y: c.Eval(x)}
	}

	return &Samples{
		Candidate:  c,
		MinX:       minX,
		MaxX:       maxX,
		N:          N,
		Convention: conv,
		Step:       (maxX - minX) / float64(count-1),
		Points:     pts,
	}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
