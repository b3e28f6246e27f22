// Package pareto is a Go implementation of multi-objective Pareto-frontier
// management for evolutionary prompt-optimization loops.
//
// Given a population of candidate solutions scored on several competing
// objectives (accuracy, latency, cost, robustness, ...), the engine decides
// which candidates are non-dominated, ranks the population into dominance
// fronts, measures diversity via crowding distance, maintains a size-bounded
// live frontier plus a larger historical archive, and quantifies frontier
// quality with an exact hypervolume indicator.
//
// Key Components:
//
//   - Core: the shared data model — objective vectors with declared
//     maximize/minimize directions, candidates with derived rank and
//     crowding distance, rank maps, and population statistics.
//
//   - Objectives: rescales raw per-objective measurements onto a comparable,
//     maximize-oriented [0,1] scale against observed population ranges.
//
//   - Dominance: pairwise and epsilon-relaxed dominance tests, NSGA-II fast
//     non-dominated sorting in O(M*N^2), and crowding-distance diversity
//     estimation.
//
//   - Hypervolume: exact hypervolume of a solution set relative to a
//     reference point via a 2D sweep and the general WFG recursion,
//     per-solution contributions, automatic reference-point selection, and
//     generation-over-generation improvement ratios.
//
//   - Frontier: the live bounded non-dominated set — dominance-gated
//     insertion, diversity-preserving trimming, hypervolume bookkeeping,
//     historical archival, and convergence tracking.
//
// The engine performs no I/O and holds no global state: a Frontier is an
// explicit value owned by the caller, mutated sequentially within each
// generation of the outer evolutionary loop.
package pareto
