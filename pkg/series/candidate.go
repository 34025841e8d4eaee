package series

import (
	"fmt"
	"strconv"
)

// Candidate is a concrete truncated Weierstrass series:
// Sum_{i=0}^{Order} A^i * cos(B^i * pi * x)
type Candidate struct {
	A     float64 `json:"a"`
	B     float64 `json:"b"`
	Order int     `json:"order"` // highest summed index n
}

// Eval evaluates the series at x.
func (c Candidate) Eval(x float64) float64 {
	return Weierstrass(c.A, c.B, x, c.Order)
}

// Terms returns the number of summed terms, Order+1.
func (c Candidate) Terms() int {
	if c.Order < 0 {
		return 0
	}
	return c.Order + 1
}

// String returns a human-readable representation.
func (c Candidate) String() string {
	return fmt.Sprintf("Sum_{i=0}^{%d} %s^i * cos(%s^i * pi * x)", c.Order, fmtNum(c.A), fmtNum(c.B))
}

// LaTeX returns a LaTeX representation.
func (c Candidate) LaTeX() string {
	return fmt.Sprintf("\\sum_{i=0}^{%d} %s^{i} \\cos\\left(%s^{i} \\pi x\\right)", c.Order, fmtNum(c.A), fmtNum(c.B))
}

func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
