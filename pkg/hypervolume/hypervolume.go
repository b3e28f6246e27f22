// Package hypervolume computes the exact hypervolume indicator of a solution
// set relative to a reference point, per-solution contributions, and
// generation-over-generation improvement. All computation happens in
// normalized, maximize-oriented objective space.
package hypervolume

import (
	"math"
	"sort"

	"github.com/XiaoConstantine/pareto-go/pkg/core"
)

// Calculate returns the measure of objective space simultaneously dominated
// by some solution and dominating the reference point. Solutions are expected
// to dominate the reference point; any axis where a solution sits behind or
// on the reference contributes zero. Empty sets measure zero.
//
// Two-objective inputs take a sorted sweep; higher dimensions run the WFG
// exclusive-volume recursion, O(N^(M-2) * log N) for M objectives.
func Calculate(solutions []*core.Candidate, referencePoint core.ObjectiveVector, names []string) float64 {
	points := toPoints(solutions, names)
	ref := toRef(referencePoint, names)
	return calculate(points, ref)
}

func calculate(points [][]float64, ref []float64) float64 {
	points = clampToRef(points, ref)
	if len(points) == 0 {
		return 0
	}
	if len(ref) == 2 {
		return sweep2D(points, ref)
	}
	// Descending first-objective order keeps the limit sets small.
	sort.Slice(points, func(i, j int) bool {
		return points[i][0] > points[j][0]
	})
	return wfg(points, ref)
}

// sweep2D accumulates rectangle areas toward the reference point, sweeping
// solutions in descending first-objective order.
func sweep2D(points [][]float64, ref []float64) float64 {
	sorted := make([][]float64, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i][0] != sorted[j][0] {
			return sorted[i][0] > sorted[j][0]
		}
		return sorted[i][1] > sorted[j][1]
	})

	volume := 0.0
	prevY := ref[1]
	for _, p := range sorted {
		if p[1] > prevY {
			volume += (p[0] - ref[0]) * (p[1] - prevY)
			prevY = p[1]
		}
	}
	return volume
}

// wfg computes the hypervolume of a set as the sum of each point's exclusive
// contribution against its successors: inclusive volume minus the volume of
// the successor set limited to the point's coordinates. Uniform for any
// M >= 2.
func wfg(points [][]float64, ref []float64) float64 {
	total := 0.0
	for i := range points {
		total += exclusive(points, i, ref)
	}
	return total
}

func exclusive(points [][]float64, i int, ref []float64) float64 {
	excl := inclusive(points[i], ref)
	limited := limitSet(points, i)
	if len(limited) > 0 {
		excl -= wfg(nonDominatedSubset(limited), ref)
	}
	return excl
}

// inclusive is the volume of the box spanned by one point and the reference.
func inclusive(p []float64, ref []float64) float64 {
	volume := 1.0
	for j := range p {
		side := p[j] - ref[j]
		if side <= 0 {
			return 0
		}
		volume *= side
	}
	return volume
}

// limitSet pulls every successor of points[i] down to the coordinates of
// points[i]: the intersection of each successor's dominated region with the
// box of points[i].
func limitSet(points [][]float64, i int) [][]float64 {
	limited := make([][]float64, 0, len(points)-i-1)
	for _, q := range points[i+1:] {
		lim := make([]float64, len(q))
		for j := range q {
			lim[j] = math.Min(q[j], points[i][j])
		}
		limited = append(limited, lim)
	}
	return limited
}

// nonDominatedSubset discards points weakly dominated by another member, which
// keeps the recursion tree from re-measuring fully covered boxes.
func nonDominatedSubset(points [][]float64) [][]float64 {
	out := make([][]float64, 0, len(points))
	for i, p := range points {
		covered := false
		for j, q := range points {
			if i == j {
				continue
			}
			if weaklyDominates(q, p) && (!weaklyDominates(p, q) || j < i) {
				covered = true
				break
			}
		}
		if !covered {
			out = append(out, p)
		}
	}
	return out
}

// weaklyDominates reports q >= p on every axis.
func weaklyDominates(q, p []float64) bool {
	for j := range q {
		if q[j] < p[j] {
			return false
		}
	}
	return true
}

// clampToRef projects each point onto the region dominating the reference,
// dropping points fully behind it.
func clampToRef(points [][]float64, ref []float64) [][]float64 {
	out := make([][]float64, 0, len(points))
	for _, p := range points {
		clamped := make([]float64, len(p))
		useful := false
		for j := range p {
			clamped[j] = p[j]
			if clamped[j] < ref[j] {
				clamped[j] = ref[j]
			}
			if clamped[j] > ref[j] {
				useful = true
			}
		}
		if useful {
			out = append(out, clamped)
		}
	}
	return out
}

func toPoints(solutions []*core.Candidate, names []string) [][]float64 {
	points := make([][]float64, len(solutions))
	for i, s := range solutions {
		p := make([]float64, len(names))
		for j, name := range names {
			p[j] = s.Normalized[name]
		}
		points[i] = p
	}
	return points
}

func toRef(referencePoint core.ObjectiveVector, names []string) []float64 {
	ref := make([]float64, len(names))
	for j, name := range names {
		ref[j] = referencePoint[name]
	}
	return ref
}
