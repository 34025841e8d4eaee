// Package params chooses the Weierstrass parameters a, b and range, either
// from caller overrides or by random draw.
package params

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/wildfunctions/weierstrass/pkg/series"
)

// ErrInvalidArgument is shared with the sampler so callers can test for a
// single kind with errors.Is.
var ErrInvalidArgument = series.ErrInvalidArgument

// ErrParse reports a malformed numeric string.
var ErrParse = errors.New("parse error")

// DefaultRange is the width of the b search window when none is given.
const DefaultRange = 100

// Overrides holds caller-supplied values. A nil field is unset.
type Overrides struct {
	A     *float64 `json:"a,omitempty"`
	B     *int     `json:"b,omitempty"`
	Range *int     `json:"range,omitempty"`
}

// Float64 and Int return pointers for building Overrides.
func Float64(v float64) *float64 { return &v }
func Int(v int) *int             { return &v }

// Validate checks explicit overrides. Range is not checked here: a
// non-positive range is ignored by every selector.
func (o Overrides) Validate() error {
	if o.A != nil {
		a := *o.A
		if math.IsNaN(a) || a <= 0 || a >= 1 {
			return fmt.Errorf("%w: a must be in (0, 1), got %g", ErrInvalidArgument, a)
		}
	}
	if o.B != nil && *o.B < 1 {
		return fmt.Errorf("%w: b must be >= 1, got %d", ErrInvalidArgument, *o.B)
	}
	return nil
}

// rangeOverride returns the override when it is set and positive.
func (o Overrides) rangeOverride() (int, bool) {
	if o.Range == nil || *o.Range <= 0 {
		return 0, false
	}
	return *o.Range, true
}

// Parameters is a concrete (a, b, range) triple.
type Parameters struct {
	A        float64 `json:"a"`
	B        int     `json:"b"`
	Range    int     `json:"range"`
	Selector string  `json:"selector"`
	RandomA  bool    `json:"random_a"`
	RandomB  bool    `json:"random_b"`
}

// Candidate returns the series of order n these parameters define.
func (p Parameters) Candidate(n int) series.Candidate {
	return series.Candidate{A: p.A, B: float64(p.B), Order: n}
}

// Selector turns overrides into concrete parameters.
type Selector interface {
	Name() string
	Select(o Overrides, rng *rand.Rand) (Parameters, error)
}

var registry = map[string]func() Selector{}

// Register adds a selector constructor to the registry.
func Register(name string, constructor func() Selector) {
	registry[name] = constructor
}

// Get returns a selector by name.
func Get(name string) (Selector, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown selector: %s", name)
	}
	return ctor(), nil
}

// Names returns all registered selector names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// NextOdd returns v if v is odd, otherwise v+1.
func NextOdd(v int) int {
	if v%2 == 0 {
		return v + 1
	}
	return v
}

// RandomValidB picks an odd integer uniformly from [minB, maxB].
// The odd values in the window are enumerated and one is chosen by index.
func RandomValidB(minB, maxB int, rng *rand.Rand) (int, error) {
	lo := NextOdd(minB)
	hi := maxB
	if hi%2 == 0 {
		hi--
	}
	if lo > hi {
		return 0, fmt.Errorf("%w: no odd integer in [%d, %d]", ErrInvalidArgument, minB, maxB)
	}
	count := (hi-lo)/2 + 1
	return lo + 2*rng.Intn(count), nil
}

// stabilityProduct is the classical lower bound on a*b, 1 + 3*pi/2.
const stabilityProduct = 1 + 3*math.Pi/2

// maxMinB caps MinB so min_b + range stays far from int overflow.
const maxMinB = 1 << 53

// MinB returns the smallest odd b >= 3 with a*b >= 1 + 3*pi/2.
func MinB(a float64) (int, error) {
	if math.IsNaN(a) || a <= 0 || a >= 1 {
		return 0, fmt.Errorf("%w: a must be in (0, 1), got %g", ErrInvalidArgument, a)
	}
	v := math.Ceil(stabilityProduct / a)
	if v > maxMinB {
		return 0, fmt.Errorf("%w: a=%g is too small, minimum b %g overflows", ErrInvalidArgument, a, v)
	}
	b := NextOdd(int(v))
	if b < 3 {
		b = 3
	}
	return b, nil
}
