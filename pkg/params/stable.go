package params

import (
	"fmt"
	"math"
	"math/rand"
)

func init() {
	Register("stable", func() Selector { return &StableSelector{} })
}

// StableSelector draws a from (0, 1) and an odd b from
// [MinB(a), MinB(a)+range], so a*b clears 1 + 3*pi/2 whenever b is drawn.
type StableSelector struct{}

func (s *StableSelector) Name() string { return "stable" }

func (s *StableSelector) Select(o Overrides, rng *rand.Rand) (Parameters, error) {
	if err := o.Validate(); err != nil {
		return Parameters{}, err
	}
	p := Parameters{Selector: s.Name(), Range: DefaultRange}
	if r, ok := o.rangeOverride(); ok {
		p.Range = r
	}

	if o.A != nil {
		p.A = *o.A
	} else {
		p.A = rng.Float64()
		for p.A == 0 {
			p.A = rng.Float64()
		}
		p.RandomA = true
	}

	if o.B != nil {
		p.B = *o.B
		return p, nil
	}

	minB, err := MinB(p.A)
	if err != nil {
		return Parameters{}, err
	}
	if p.Range > math.MaxInt-minB {
		return Parameters{}, fmt.Errorf("%w: range %d overflows the b window above %d", ErrInvalidArgument, p.Range, minB)
	}
	b, err := RandomValidB(minB, minB+p.Range, rng)
	if err != nil {
		return Parameters{}, err
	}
	p.B = b
	p.RandomB = true
	return p, nil
}
