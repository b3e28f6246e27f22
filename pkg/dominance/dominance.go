// Package dominance implements Pareto dominance tests, NSGA-II fast
// non-dominated sorting, and crowding-distance diversity estimation over
// normalized, maximize-oriented objective vectors.
package dominance

// Dominates checks if vector a dominates vector b over the given objectives.
// a dominates if it's >= in all objectives and > in at least one. Equal
// vectors never dominate. Vectors are assumed complete over names; absent
// objectives read as zero.
func Dominates(a, b map[string]float64, names []string) bool {
	atLeastOneGreater := false

	for _, name := range names {
		if a[name] < b[name] {
			return false
		}
		if a[name] > b[name] {
			atLeastOneGreater = true
		}
	}

	return atLeastOneGreater
}

// EpsilonDominates is the relaxed dominance test for noisy measurements:
// a must be >= b - epsilon everywhere and > b + epsilon somewhere.
func EpsilonDominates(a, b map[string]float64, names []string, epsilon float64) bool {
	atLeastOneGreater := false

	for _, name := range names {
		if a[name] < b[name]-epsilon {
			return false
		}
		if a[name] > b[name]+epsilon {
			atLeastOneGreater = true
		}
	}

	return atLeastOneGreater
}
