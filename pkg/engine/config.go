package engine

import (
	"fmt"

	"github.com/wildfunctions/weierstrass/pkg/params"
	"github.com/wildfunctions/weierstrass/pkg/series"
)

// Config holds all parameters for one sampling run.
type Config struct {
	Selector   string            `json:"selector"`
	Overrides  params.Overrides  `json:"overrides"`
	MinX       float64           `json:"min_x"`
	MaxX       float64           `json:"max_x"`
	Order      int               `json:"order"`
	Count      int               `json:"count"`
	Convention series.Convention `json:"convention"`
	Seed       int64             `json:"seed"`
	Format     string            `json:"format"` // "text" or "json"
	Verbose    bool              `json:"verbose"`
	PNG        string            `json:"png,omitempty"`
	HTML       string            `json:"html,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Selector:   "classic",
		MinX:       -2,
		MaxX:       2,
		Order:      20,
		Count:      100,
		Convention: series.Intervals,
		Seed:       0, // 0 = random
		Format:     "text",
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if _, err := params.Get(c.Selector); err != nil {
		return fmt.Errorf("%w (available: %v)", err, params.Names())
	}
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format: %s (available: text, json)", c.Format)
	}
	if c.MinX >= c.MaxX {
		return fmt.Errorf("%w: min_x must be less than max_x", series.ErrInvalidArgument)
	}
	if c.Order < 0 || c.Count <= 0 {
		return fmt.Errorf("%w: n must be non-negative and N must be positive", series.ErrInvalidArgument)
	}
	if _, err := c.Convention.PointCount(c.Count); err != nil {
		return err
	}
	return c.Overrides.Validate()
}
