package params

import (
	"fmt"
	"math"
	"strconv"
)

// Unset is the command-line spelling of an unset override.
const Unset = "None"

func isUnset(s string) bool {
	return s == "" || s == Unset
}

// ParseOverrides converts command-line strings into Overrides. "None" or an
// empty string leaves a field unset; anything else must parse cleanly.
func ParseOverrides(a, b, rng string) (Overrides, error) {
	var o Overrides
	if !isUnset(a) {
		v, err := ParseFloat("a", a)
		if err != nil {
			return Overrides{}, err
		}
		o.A = &v
	}
	if !isUnset(b) {
		v, err := ParseInt("b", b)
		if err != nil {
			return Overrides{}, err
		}
		o.B = &v
	}
	if !isUnset(rng) {
		v, err := ParseInt("range", rng)
		if err != nil {
			return Overrides{}, err
		}
		o.Range = &v
	}
	return o, nil
}

// ParseFloat parses a finite real number.
func ParseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not a number", ErrParse, name, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s: %q is not finite", ErrParse, name, s)
	}
	return v, nil
}

// ParseInt parses an integer. Base prefixes (0x, 0o, 0b) are honored.
func ParseInt(name, s string) (int, error) {
	v, err := strconv.ParseInt(s, 0, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not an integer", ErrParse, name, s)
	}
	return int(v), nil
}
