package dominance

import (
	"github.com/XiaoConstantine/pareto-go/pkg/core"
)

// FastNonDominatedSort ranks the population into dominance fronts using the
// NSGA-II procedure: accumulate per-candidate domination counts and
// dominated-sets over all ordered pairs, peel off the zero-count candidates
// as rank 1, then iteratively decrement counts to build deeper ranks.
// O(M*N^2). Within-rank order is unspecified.
//
// Each candidate is stamped with its Rank and its DominatesIDs /
// DominatedByIDs sets as a side effect of the pass. An empty population
// yields an empty front.
func FastNonDominatedSort(candidates []*core.Candidate, names []string) core.Front {
	front := make(core.Front)
	if len(candidates) == 0 {
		return front
	}

	n := len(candidates)
	dominated := make([][]int, n)
	domCount := make([]int, n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if Dominates(candidates[i].Normalized, candidates[j].Normalized, names) {
				dominated[i] = append(dominated[i], j)
			} else if Dominates(candidates[j].Normalized, candidates[i].Normalized, names) {
				domCount[i]++
			}
		}
	}

	// Stamp the domination sets before counts get consumed below.
	for i, c := range candidates {
		c.DominatesIDs = make([]string, 0, len(dominated[i]))
		for _, j := range dominated[i] {
			c.DominatesIDs = append(c.DominatesIDs, candidates[j].ID)
		}
		c.DominatedByIDs = nil
	}
	for i := range candidates {
		for _, j := range dominated[i] {
			candidates[j].DominatedByIDs = append(candidates[j].DominatedByIDs, candidates[i].ID)
		}
	}

	// Rank 1: domination count 0.
	var current []int
	for i := 0; i < n; i++ {
		if domCount[i] == 0 {
			candidates[i].Rank = 1
			front[1] = append(front[1], candidates[i].ID)
			current = append(current, i)
		}
	}

	// Subsequent ranks: members of the current rank release whatever they
	// dominate; anything reaching count 0 joins the next rank.
	rank := 1
	for len(current) > 0 {
		var next []int
		for _, i := range current {
			for _, j := range dominated[i] {
				domCount[j]--
				if domCount[j] == 0 {
					candidates[j].Rank = rank + 1
					front[rank+1] = append(front[rank+1], candidates[j].ID)
					next = append(next, j)
				}
			}
		}
		rank++
		current = next
	}

	return front
}

// ParetoOptimal filters the candidates down to the rank-1 members of a fresh
// non-dominated sort.
func ParetoOptimal(candidates []*core.Candidate, names []string) []*core.Candidate {
	FastNonDominatedSort(candidates, names)
	out := make([]*core.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Rank == 1 {
			out = append(out, c)
		}
	}
	return out
}
