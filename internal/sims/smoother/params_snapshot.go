package smoother

import (
	"strconv"

	"cell-smoother/internal/core"
)

// Parameters describes the configuration and progress of the simulation.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", s.u.Width()),
				intParam("h", "Height", s.u.Height()),
				int64Param("seed", "Seed", s.cfg.Seed),
				intParam("max", "Max value", s.cfg.MaxValue),
				intParam("workers", "Workers", s.u.Workers()),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.FormatUint(s.u.Generation(), 10)},
				intParam("changed", "Changed cells", s.u.Changed()),
				floatParam("mean", "Mean value", mean(s.u.Bytes())),
			},
		},
	}}
}

func mean(values []uint8) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum uint64
	for _, v := range values {
		sum += uint64(v)
	}
	return float64(sum) / float64(len(values))
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', 2, 64),
	}
}
