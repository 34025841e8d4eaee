package engine

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/wildfunctions/weierstrass/pkg/params"
	"github.com/wildfunctions/weierstrass/pkg/render"
	"github.com/wildfunctions/weierstrass/pkg/series"
)

// Engine runs one parameter selection and sampling pass.
type Engine struct {
	cfg      Config
	selector params.Selector
	seed     int64
	rng      *rand.Rand
}

// New creates a new engine from the given config.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s, err := params.Get(cfg.Selector)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	return &Engine{
		cfg:      cfg,
		selector: s,
		seed:     seed,
		rng:      rand.New(rand.NewSource(seed)),
	}, nil
}

// Run selects parameters, samples the series and writes any requested plots.
// Nothing is returned on failure.
func (e *Engine) Run() (Report, error) {
	Logf("selector %s, domain [%g, %g], n=%d, N=%d (%s), seed %d",
		e.cfg.Selector, e.cfg.MinX, e.cfg.MaxX, e.cfg.Order, e.cfg.Count, e.cfg.Convention, e.seed)

	p, err := e.selector.Select(e.cfg.Overrides, e.rng)
	if err != nil {
		return Report{}, fmt.Errorf("select parameters: %w", err)
	}
	Logf("selected a=%g (random %t), b=%d (random %t), range=%d", p.A, p.RandomA, p.B, p.RandomB, p.Range)

	s, err := series.Group(p.A, float64(p.B), e.cfg.MinX, e.cfg.MaxX, e.cfg.Order, e.cfg.Count, e.cfg.Convention)
	if err != nil {
		return Report{}, fmt.Errorf("sample: %w", err)
	}

	r := Report{
		RunID:      uuid.NewString(),
		Timestamp:  time.Now().UTC(),
		Seed:       e.seed,
		Config:     e.cfg,
		Parameters: p,
		Candidate:  s.Candidate.String(),
		LaTeX:      s.Candidate.LaTeX(),
		Summary:    series.Summarize(s),
		Samples:    s,
	}
	Logf("sampled %d points, y in [%g, %g], bound %g", s.Len(), r.Summary.Min, r.Summary.Max, r.Summary.Bound)

	if e.cfg.PNG != "" {
		if err := render.SavePlot(s, e.cfg.PNG); err != nil {
			return Report{}, fmt.Errorf("write plot: %w", err)
		}
		Logf("wrote %s", e.cfg.PNG)
		r.Outputs = append(r.Outputs, e.cfg.PNG)
	}
	if e.cfg.HTML != "" {
		if err := writeHTML(s, e.cfg.HTML); err != nil {
			return Report{}, fmt.Errorf("write chart: %w", err)
		}
		Logf("wrote %s", e.cfg.HTML)
		r.Outputs = append(r.Outputs, e.cfg.HTML)
	}

	return r, nil
}

func writeHTML(s *series.Samples, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.HTML(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
