package dominance

import (
	"math"
	"sort"

	"github.com/XiaoConstantine/pareto-go/pkg/core"
)

// CrowdingDistance estimates how isolated each member of a front is. Fronts
// of size <= 2 get every member at +Inf. Otherwise, per objective, members
// are sorted by their normalized value, the two extremes get +Inf, and each
// interior member accumulates the normalized gap between its neighbors. A
// constant objective contributes nothing. Larger distance means more
// isolated, preferred for diversity.
//
// Candidates are stamped with their CrowdingDistance as a side effect.
func CrowdingDistance(front []*core.Candidate, names []string) map[string]float64 {
	distances := make(map[string]float64, len(front))

	if len(front) <= 2 {
		for _, c := range front {
			distances[c.ID] = math.Inf(1)
			c.CrowdingDistance = math.Inf(1)
		}
		return distances
	}

	for _, c := range front {
		distances[c.ID] = 0
	}

	sorted := make([]*core.Candidate, len(front))
	copy(sorted, front)

	for _, name := range names {
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Normalized[name] < sorted[j].Normalized[name]
		})

		// Boundary points get infinite distance.
		distances[sorted[0].ID] = math.Inf(1)
		distances[sorted[len(sorted)-1].ID] = math.Inf(1)

		objRange := sorted[len(sorted)-1].Normalized[name] - sorted[0].Normalized[name]
		if objRange == 0 {
			continue
		}

		for i := 1; i < len(sorted)-1; i++ {
			distances[sorted[i].ID] += (sorted[i+1].Normalized[name] - sorted[i-1].Normalized[name]) / objRange
		}
	}

	for _, c := range front {
		c.CrowdingDistance = distances[c.ID]
	}

	return distances
}

// SortByCrowding orders candidates for trimming and selection: boundary
// (+Inf) members first, then by descending finite distance. Ties fall back to
// id so the order is deterministic.
func SortByCrowding(front []*core.Candidate, distances map[string]float64) []*core.Candidate {
	sorted := make([]*core.Candidate, len(front))
	copy(sorted, front)

	sort.Slice(sorted, func(i, j int) bool {
		di, dj := distances[sorted[i].ID], distances[sorted[j].ID]
		ii, ij := math.IsInf(di, 1), math.IsInf(dj, 1)
		if ii != ij {
			return ii
		}
		if di != dj {
			return di > dj
		}
		return sorted[i].ID < sorted[j].ID
	})

	return sorted
}
