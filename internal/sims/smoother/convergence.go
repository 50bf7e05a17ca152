package smoother

// ConvergenceResult summarizes a run from a random start toward a fixed point.
type ConvergenceResult struct {
	Steps         int
	Stable        bool
	InitialSpread int
	FinalSpread   int
	TotalChanges  int
}

// Converge seeds a universe from cfg and steps it until a step changes no
// cell or maxSteps is reached.
func Converge(cfg Config, maxSteps int) (ConvergenceResult, error) {
	sim, err := NewSim(cfg)
	if err != nil {
		return ConvergenceResult{}, err
	}
	sim.Reset(cfg.Seed)

	res := ConvergenceResult{InitialSpread: spread(sim.Cells())}
	for res.Steps < maxSteps {
		sim.Step()
		res.Steps++
		res.TotalChanges += sim.u.Changed()
		if sim.Stable() {
			res.Stable = true
			break
		}
	}
	res.FinalSpread = spread(sim.Cells())
	return res, nil
}

func spread(values []uint8) int {
	if len(values) == 0 {
		return 0
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return int(hi) - int(lo)
}
