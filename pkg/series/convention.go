package series

import "fmt"

// MaxCount is the largest N accepted by either convention.
const MaxCount = 1 << 24

// Convention selects how the point count N maps onto the sampling grid.
type Convention int

const (
	// Intervals divides the domain into N steps and yields N+1 points.
	Intervals Convention = iota
	// Points yields exactly N points, so the step is (max-min)/(N-1).
	Points
)

var conventionNames = map[Convention]string{
	Intervals: "intervals",
	Points:    "points",
}

func (c Convention) String() string {
	if s, ok := conventionNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Convention(%d)", int(c))
}

// ParseConvention maps a name to a Convention.
func ParseConvention(s string) (Convention, error) {
	for c, name := range conventionNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown convention %q (available: intervals, points)", ErrInvalidArgument, s)
}

// PointCount returns how many grid points N produces under c.
func (c Convention) PointCount(N int) (int, error) {
	if N > MaxCount {
		return 0, fmt.Errorf("%w: N must be at most %d, got %d", ErrInvalidArgument, MaxCount, N)
	}
	switch c {
	case Intervals:
		return N + 1, nil
	case Points:
		if N < 2 {
			return 0, fmt.Errorf("%w: the points convention needs N >= 2, got %d", ErrInvalidArgument, N)
		}
		return N, nil
	default:
		return 0, fmt.Errorf("%w: unknown convention %d", ErrInvalidArgument, int(c))
	}
}

func (c Convention) MarshalText() ([]byte, error) {
	if _, ok := conventionNames[c]; !ok {
		return nil, fmt.Errorf("unknown convention %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Convention) UnmarshalText(b []byte) error {
	v, err := ParseConvention(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
