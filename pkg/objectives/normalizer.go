// Package objectives rescales raw objective measurements onto a comparable,
// maximize-oriented [0,1] scale.
package objectives

import (
	"github.com/XiaoConstantine/pareto-go/pkg/core"
	"github.com/XiaoConstantine/pareto-go/pkg/errors"
)

// Normalizer rescales raw objective vectors against observed population
// ranges. Pure: it never mutates its inputs.
type Normalizer struct {
	names      []string
	directions map[string]core.Direction
}

// NewNormalizer creates a normalizer for the declared objective set. Every
// name must carry a direction.
func NewNormalizer(names []string, directions map[string]core.Direction) (*Normalizer, error) {
	if len(names) == 0 {
		return nil, errors.New(errors.InvalidInput, "no objectives declared")
	}
	for _, name := range names {
		d, ok := directions[name]
		if !ok {
			return nil, errors.WithFields(
				errors.Newf(errors.InvalidObjective, "objective %q missing from direction map", name),
				errors.Fields{"objective": name},
			)
		}
		if d != core.Maximize && d != core.Minimize {
			return nil, errors.WithFields(
				errors.Newf(errors.InvalidObjective, "objective %q has unknown direction %q", name, d),
				errors.Fields{"objective": name},
			)
		}
	}
	return &Normalizer{
		names:      append([]string(nil), names...),
		directions: directions,
	}, nil
}

// Objectives returns the declared objective names in their configured order.
func (n *Normalizer) Objectives() []string {
	return append([]string(nil), n.names...)
}

// Normalize rescales one raw vector using per-objective observed ranges. Each
// objective maps through (value - min) / (max - min), exactly 0.5 when the
// range has no spread, then inverts for minimize objectives so every
// normalized objective is maximize-oriented.
func (n *Normalizer) Normalize(raw core.ObjectiveVector, stats core.PopulationStats) (core.ObjectiveVector, error) {
	out := make(core.ObjectiveVector, len(n.names))

	for _, name := range n.names {
		value, ok := raw[name]
		if !ok {
			return nil, errors.WithFields(
				errors.Newf(errors.InvalidObjective, "objective %q missing from raw vector", name),
				errors.Fields{"objective": name},
			)
		}

		r, ok := stats[name]
		if !ok {
			return nil, errors.WithFields(
				errors.Newf(errors.InvalidObjective, "objective %q missing from population stats", name),
				errors.Fields{"objective": name},
			)
		}

		var scaled float64
		if r.Max == r.Min {
			scaled = 0.5
		} else {
			scaled = (value - r.Min) / (r.Max - r.Min)
			// Externally supplied stats may not cover the value.
			if scaled < 0 {
				scaled = 0
			} else if scaled > 1 {
				scaled = 1
			}
		}

		if n.directions[name] == core.Minimize {
			scaled = 1 - scaled
		}
		out[name] = scaled
	}

	return out, nil
}

// NormalizePopulation computes stats over the candidates' raw vectors and
// stamps each candidate's Normalized vector in place. Candidates are assumed
// owned by the caller for this pass.
func (n *Normalizer) NormalizePopulation(candidates []*core.Candidate) error {
	if len(candidates) == 0 {
		return nil
	}

	stats, err := ComputeStats(candidates, n.names)
	if err != nil {
		return err
	}

	for _, c := range candidates {
		normalized, err := n.Normalize(c.Raw, stats)
		if err != nil {
			return errors.WithFields(err, errors.Fields{"candidate": c.ID})
		}
		c.Normalized = normalized
	}
	return nil
}
