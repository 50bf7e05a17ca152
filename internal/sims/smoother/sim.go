package smoother

import (
	"fmt"

	"cell-smoother/internal/core"
)

// Sim plugs a Universe into the host registry. It owns the random
// initialization policy; the Universe itself only consumes values.
type Sim struct {
	cfg Config
	u   *Universe
}

// NewSim allocates a zero-filled universe sized by cfg.
func NewSim(cfg Config) (*Sim, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cfg.Width, cfg.Height)
	}
	u, err := New(cfg.Width, cfg.Height, make([]uint8, cfg.Width*cfg.Height))
	if err != nil {
		return nil, err
	}
	u.SetWorkers(cfg.Workers)
	return &Sim{cfg: cfg, u: u}, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "smoother" }

// Size reports the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.u.Width(), H: s.u.Height()} }

// Cells exposes the universe storage directly; the slice stays valid across
// steps and resets.
func (s *Sim) Cells() []uint8 { return s.u.Bytes() }

// Universe returns the underlying grid.
func (s *Sim) Universe() *Universe { return s.u }

// Reset refills the grid with uniform random values. A zero seed falls back
// to the configured seed.
func (s *Sim) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	values := make([]uint8, s.u.Width()*s.u.Height())
	core.NewRNG(effective).FillUniform(values, s.cfg.MaxValue)
	if err := s.u.Load(values); err != nil {
		panic(err)
	}
	s.u.generation = 0
	s.u.changed = 0
}

// Step advances the universe by one generation.
func (s *Sim) Step() { s.u.Step() }

// Stable reports whether the last step left every cell unchanged.
func (s *Sim) Stable() bool { return s.u.Generation() > 0 && s.u.Changed() == 0 }

// String renders the current grid for debugging.
func (s *Sim) String() string { return s.u.String() }

func init() {
	core.Register("smoother", func(cfg map[string]string) (core.Sim, error) {
		sim, err := NewSim(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return sim, nil
	})
}
