package hypervolume

import (
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/XiaoConstantine/pareto-go/pkg/core"
	"github.com/XiaoConstantine/pareto-go/pkg/dominance"
	"github.com/XiaoConstantine/pareto-go/pkg/errors"
)

// Contribution measures each solution's exclusive hypervolume: the volume
// lost when that solution alone is removed, clamped at zero. The per-solution
// recomputations are independent, so they run on a bounded goroutine pool;
// results are keyed by id and deterministic.
//
// Fails with DegenerateReferencePoint when no solution dominates the
// reference point, which leaves the exclusive volumes ill-defined.
func Contribution(solutions []*core.Candidate, referencePoint core.ObjectiveVector, names []string, concurrency int) (map[string]float64, error) {
	contributions := make(map[string]float64, len(solutions))
	if len(solutions) == 0 {
		return contributions, nil
	}

	if err := checkReference(solutions, referencePoint, names); err != nil {
		return nil, err
	}

	total := Calculate(solutions, referencePoint, names)

	if concurrency < 1 {
		concurrency = 1
	}

	var mu sync.Mutex
	p := pool.New().WithMaxGoroutines(concurrency)

	for i := range solutions {
		i := i
		p.Go(func() {
			rest := make([]*core.Candidate, 0, len(solutions)-1)
			rest = append(rest, solutions[:i]...)
			rest = append(rest, solutions[i+1:]...)

			contribution := total - Calculate(rest, referencePoint, names)
			if contribution < 0 {
				contribution = 0
			}

			mu.Lock()
			contributions[solutions[i].ID] = contribution
			mu.Unlock()
		})
	}
	p.Wait()

	return contributions, nil
}

// checkReference verifies at least one solution dominates the reference point.
func checkReference(solutions []*core.Candidate, referencePoint core.ObjectiveVector, names []string) error {
	for _, s := range solutions {
		if dominance.Dominates(s.Normalized, referencePoint, names) {
			return nil
		}
	}
	return errors.WithFields(
		errors.New(errors.DegenerateReferencePoint, "reference point is not dominated by any solution"),
		errors.Fields{"solutions": len(solutions)},
	)
}
