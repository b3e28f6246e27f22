package hypervolume

import (
	"github.com/XiaoConstantine/pareto-go/pkg/core"
)

// DefaultReferenceMargin is subtracted from the per-objective worst observed
// value when deriving a reference point automatically.
const DefaultReferenceMargin = 0.1

// AutoReferencePoint derives a reference point guaranteed to be dominated by
// every candidate: per objective, the worst observed normalized value minus
// margin, clamped at zero.
func AutoReferencePoint(candidates []*core.Candidate, names []string, margin float64) core.ObjectiveVector {
	ref := make(core.ObjectiveVector, len(names))
	if margin < 0 {
		margin = DefaultReferenceMargin
	}

	for _, name := range names {
		worst := 1.0
		for _, c := range candidates {
			if v := c.Normalized[name]; v < worst {
				worst = v
			}
		}
		v := worst - margin
		if v < 0 {
			v = 0
		}
		ref[name] = v
	}

	return ref
}

// Improvement reports the relative hypervolume change of the current solution
// set over the previous one, for convergence and stagnation detection. A
// previous volume of zero yields ratio 1 when any volume appears, 0 otherwise.
func Improvement(current, previous []*core.Candidate, referencePoint core.ObjectiveVector, names []string) (float64, float64) {
	newVolume := Calculate(current, referencePoint, names)
	prevVolume := Calculate(previous, referencePoint, names)

	if prevVolume == 0 {
		if newVolume > 0 {
			return 1.0, newVolume
		}
		return 0.0, newVolume
	}

	return (newVolume - prevVolume) / prevVolume, newVolume
}
