package objectives

import (
	"gonum.org/v1/gonum/floats"

	"github.com/XiaoConstantine/pareto-go/pkg/core"
	"github.com/XiaoConstantine/pareto-go/pkg/errors"
)

// ComputeStats observes the per-objective min/max across the candidates' raw
// vectors. An empty population yields empty stats.
func ComputeStats(candidates []*core.Candidate, names []string) (core.PopulationStats, error) {
	stats := make(core.PopulationStats, len(names))
	if len(candidates) == 0 {
		return stats, nil
	}

	values := make([]float64, len(candidates))
	for _, name := range names {
		for i, c := range candidates {
			v, ok := c.Raw[name]
			if !ok {
				return nil, errors.WithFields(
					errors.Newf(errors.InvalidObjective, "objective %q missing from raw vector", name),
					errors.Fields{"objective": name, "candidate": c.ID},
				)
			}
			values[i] = v
		}
		stats[name] = core.Range{
			Min: floats.Min(values),
			Max: floats.Max(values),
		}
	}

	return stats, nil
}

// MergeStats widens base with the ranges observed in other. Used when stats
// are accumulated across batches of evaluations.
func MergeStats(base, other core.PopulationStats) core.PopulationStats {
	out := make(core.PopulationStats, len(base))
	for name, r := range base {
		out[name] = r
	}
	for name, r := range other {
		if existing, ok := out[name]; ok {
			if r.Min < existing.Min {
				existing.Min = r.Min
			}
			if r.Max > existing.Max {
				existing.Max = r.Max
			}
			out[name] = existing
		} else {
			out[name] = r
		}
	}
	return out
}
