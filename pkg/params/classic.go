package params

import "math/rand"

func init() {
	Register("classic", func() Selector { return &ClassicSelector{} })
}

// ClassicSelector draws a from [0.1, 0.9) and an odd b from [1, 101].
// A positive range override always re-draws b from [1, range], replacing an
// explicit b; the reported range is b itself unless overridden.
type ClassicSelector struct{}

func (s *ClassicSelector) Name() string { return "classic" }

const (
	classicMinA = 0.1
	classicMaxA = 0.9
	classicMinB = 1
	classicMaxB = 101
)

func (s *ClassicSelector) Select(o Overrides, rng *rand.Rand) (Parameters, error) {
	if err := o.Validate(); err != nil {
		return Parameters{}, err
	}
	p := Parameters{Selector: s.Name()}

	if o.A != nil {
		p.A = *o.A
	} else {
		p.A = classicMinA + (classicMaxA-classicMinA)*rng.Float64()
		p.RandomA = true
	}

	if o.B != nil {
		p.B = *o.B
	} else {
		b, err := RandomValidB(classicMinB, classicMaxB, rng)
		if err != nil {
			return Parameters{}, err
		}
		p.B = b
		p.RandomB = true
	}
	p.Range = p.B

	if r, ok := o.rangeOverride(); ok {
		p.Range = r
		b, err := RandomValidB(classicMinB, r, rng)
		if err != nil {
			return Parameters{}, err
		}
		p.B = b
		p.RandomB = true
	}
	return p, nil
}
