package frontier

// ConvergenceTracker watches generation-over-generation hypervolume to detect
// stagnation of the outer evolutionary loop. A generation whose relative
// improvement falls below the threshold counts as stagnant; enough stagnant
// generations in a row means converged.
type ConvergenceTracker struct {
	threshold       float64 // Relative improvement below this is stagnation. Default: 0.01
	stagnationLimit int     // Consecutive stagnant generations before convergence. Default: 3

	history    []float64
	stagnation int
}

// NewConvergenceTracker creates a tracker with the given improvement
// threshold and stagnation limit.
func NewConvergenceTracker(threshold float64, stagnationLimit int) *ConvergenceTracker {
	if threshold <= 0 {
		threshold = 0.01
	}
	if stagnationLimit < 1 {
		stagnationLimit = 3
	}
	return &ConvergenceTracker{
		threshold:       threshold,
		stagnationLimit: stagnationLimit,
	}
}

// Record registers a generation's hypervolume and returns the relative
// improvement over the previous generation.
func (t *ConvergenceTracker) Record(volume float64) float64 {
	ratio := 0.0
	if n := len(t.history); n > 0 {
		prev := t.history[n-1]
		switch {
		case prev == 0 && volume > 0:
			ratio = 1.0
		case prev != 0:
			ratio = (volume - prev) / prev
		}
	} else {
		// First generation establishes the baseline; never stagnant.
		t.history = append(t.history, volume)
		return 0
	}

	t.history = append(t.history, volume)
	if ratio < t.threshold {
		t.stagnation++
	} else {
		t.stagnation = 0
	}
	return ratio
}

// Converged reports whether the stagnation limit was reached.
func (t *ConvergenceTracker) Converged() bool {
	return t.stagnation >= t.stagnationLimit
}

// Stagnation returns the current run of stagnant generations.
func (t *ConvergenceTracker) Stagnation() int {
	return t.stagnation
}

// History returns the recorded per-generation hypervolumes.
func (t *ConvergenceTracker) History() []float64 {
	out := make([]float64, len(t.history))
	copy(out, t.history)
	return out
}
