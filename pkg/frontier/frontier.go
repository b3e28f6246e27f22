// Package frontier maintains the live bounded Pareto frontier of an
// optimization run plus its historical archive: dominance-gated insertion,
// diversity-preserving trimming, hypervolume bookkeeping, and archival.
package frontier

import (
	"context"

	"github.com/XiaoConstantine/pareto-go/pkg/config"
	"github.com/XiaoConstantine/pareto-go/pkg/core"
	"github.com/XiaoConstantine/pareto-go/pkg/dominance"
	"github.com/XiaoConstantine/pareto-go/pkg/errors"
	"github.com/XiaoConstantine/pareto-go/pkg/hypervolume"
	"github.com/XiaoConstantine/pareto-go/pkg/logging"
	"github.com/XiaoConstantine/pareto-go/pkg/objectives"
)

// Frontier owns the live bounded non-dominated set of one optimization run.
// It is single-writer: mutating calls are applied sequentially within a
// generation's post-evaluation phase, and read-only queries must not overlap
// a mutation. Every stored member has rank 1 relative to the stored set.
type Frontier struct {
	cfg        *config.FrontierConfig
	normalizer *objectives.Normalizer

	solutions      []*core.Candidate
	referencePoint core.ObjectiveVector
	volume         float64
	generation     int

	archive *Archive
}

// New constructs a frontier from a validated configuration. The objective
// set and directions stay fixed for the run; an explicit reference point is
// held fixed, a derived one tracks the live set's normalization frame.
func New(cfg *config.FrontierConfig) (*Frontier, error) {
	if cfg == nil {
		cfg = config.DefaultFrontierConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	normalizer, err := objectives.NewNormalizer(cfg.Objectives, cfg.Directions)
	if err != nil {
		return nil, err
	}

	var ref core.ObjectiveVector
	if cfg.ReferencePoint != nil {
		ref = cfg.ReferencePoint.Clone()
	}

	return &Frontier{
		cfg:            cfg,
		normalizer:     normalizer,
		referencePoint: ref,
		archive:        NewArchive(cfg.MaxArchiveSize),
	}, nil
}

// Objectives returns the declared objective names.
func (f *Frontier) Objectives() []string {
	return f.normalizer.Objectives()
}

// Solutions returns the current frontier members. The slice is a copy; the
// candidates are shared and must not be mutated by readers.
func (f *Frontier) Solutions() []*core.Candidate {
	out := make([]*core.Candidate, len(f.solutions))
	copy(out, f.solutions)
	return out
}

// Size returns the number of live frontier members.
func (f *Frontier) Size() int {
	return len(f.solutions)
}

// Hypervolume returns the frontier's current hypervolume.
func (f *Frontier) Hypervolume() float64 {
	return f.volume
}

// ReferencePoint returns the anchor of hypervolume computation, nil until one
// is configured or derived from the live set.
func (f *Frontier) ReferencePoint() core.ObjectiveVector {
	if f.referencePoint == nil {
		return nil
	}
	return f.referencePoint.Clone()
}

// Generation returns the current generation counter.
func (f *Frontier) Generation() int {
	return f.generation
}

// AdvanceGeneration moves the frontier to the next generation of the outer
// evolutionary loop.
func (f *Frontier) AdvanceGeneration() int {
	f.generation++
	return f.generation
}

// Archive exposes the historical archive.
func (f *Frontier) Archive() *Archive {
	return f.archive
}

// AddSolution offers a candidate to the frontier. Dominance is judged in one
// shared frame: the current members and the candidate are all normalized
// against stats observed over their combined raw vectors. If any member
// dominates the candidate there, the frontier is unchanged and false is
// returned. Otherwise every member the candidate dominates is removed, the
// candidate is inserted, the live set is renormalized against its own raws,
// hypervolume is recomputed, and the frontier is trimmed back to its size
// bound if needed.
func (f *Frontier) AddSolution(candidate *core.Candidate) (bool, error) {
	return f.add(candidate, func(a, b core.ObjectiveVector) bool {
		return dominance.Dominates(a, b, f.cfg.Objectives)
	})
}

// AddSolutionEpsilon is the epsilon-relaxed insertion path for noisy
// objective measurements, using the configured epsilon tolerance.
func (f *Frontier) AddSolutionEpsilon(candidate *core.Candidate) (bool, error) {
	eps := f.cfg.Epsilon
	return f.add(candidate, func(a, b core.ObjectiveVector) bool {
		return dominance.EpsilonDominates(a, b, f.cfg.Objectives, eps)
	})
}

func (f *Frontier) add(candidate *core.Candidate, dominates func(a, b core.ObjectiveVector) bool) (bool, error) {
	logger := logging.GetLogger()
	ctx := logging.WithGeneration(context.Background(), f.generation)

	if candidate == nil {
		return false, errors.New(errors.InvalidInput, "candidate cannot be nil")
	}

	incoming := candidate.Clone()
	incoming.Generation = f.generation

	memberNorms, incomingNorm, err := f.commonFrame(incoming)
	if err != nil {
		return false, err
	}

	// Rejection test against the live set, in the shared frame. Stored
	// vectors are in the live set's own frame and must not be compared
	// against the candidate's.
	for i, member := range f.solutions {
		if dominates(memberNorms[i], incomingNorm) {
			logger.Debug(ctx, "candidate %s rejected: dominated by %s", incoming.ID, member.ID)
			return false, nil
		}
	}

	// Drop every member the candidate dominates.
	survivors := f.solutions[:0]
	for i, member := range f.solutions {
		if dominates(incomingNorm, memberNorms[i]) {
			logger.Debug(ctx, "member %s displaced by candidate %s", member.ID, incoming.ID)
			continue
		}
		survivors = append(survivors, member)
	}
	f.solutions = append(survivors, incoming)

	if err := f.renormalize(); err != nil {
		return false, err
	}
	f.refreshVolume()

	if len(f.solutions) > f.cfg.MaxFrontierSize {
		f.Trim(f.cfg.MaxFrontierSize)
	}

	logger.Debug(ctx, "candidate %s inserted: size=%d volume=%.6f",
		incoming.ID, len(f.solutions), f.volume)
	return true, nil
}

// frameStats widens the live set's observed ranges with the extra
// candidate's, giving the shared frame both are normalized in.
func (f *Frontier) frameStats(extra *core.Candidate) (core.PopulationStats, error) {
	liveStats, err := objectives.ComputeStats(f.solutions, f.cfg.Objectives)
	if err != nil {
		return nil, err
	}
	extraStats, err := objectives.ComputeStats([]*core.Candidate{extra}, f.cfg.Objectives)
	if err != nil {
		return nil, err
	}
	return objectives.MergeStats(liveStats, extraStats), nil
}

// commonFrame normalizes every current member and the incoming candidate
// against the shared frame, without touching stored vectors. Member vectors
// are index-aligned with f.solutions.
func (f *Frontier) commonFrame(incoming *core.Candidate) ([]core.ObjectiveVector, core.ObjectiveVector, error) {
	stats, err := f.frameStats(incoming)
	if err != nil {
		return nil, nil, err
	}

	memberNorms := make([]core.ObjectiveVector, len(f.solutions))
	for i, member := range f.solutions {
		v, err := f.normalizer.Normalize(member.Raw, stats)
		if err != nil {
			return nil, nil, errors.WithFields(err, errors.Fields{"candidate": member.ID})
		}
		memberNorms[i] = v
	}
	incomingNorm, err := f.normalizer.Normalize(incoming.Raw, stats)
	if err != nil {
		return nil, nil, errors.WithFields(err, errors.Fields{"candidate": incoming.ID})
	}
	return memberNorms, incomingNorm, nil
}

// renormalize restamps every member's normalized vector against the live
// set's own raw ranges, keeping all stored vectors in one frame.
func (f *Frontier) renormalize() error {
	return f.normalizer.NormalizePopulation(f.solutions)
}

// refreshVolume recomputes hypervolume over the live set. A derived
// reference point is re-anchored first so it keeps tracking the live frame;
// an explicitly configured one stays fixed.
func (f *Frontier) refreshVolume() {
	if f.cfg.ReferencePoint == nil {
		if len(f.solutions) == 0 {
			f.referencePoint = nil
		} else {
			f.referencePoint = hypervolume.AutoReferencePoint(f.solutions, f.cfg.Objectives, f.cfg.ReferenceMargin)
		}
	}
	if f.referencePoint == nil || len(f.solutions) == 0 {
		f.volume = 0
		return
	}
	f.volume = hypervolume.Calculate(f.solutions, f.referencePoint, f.cfg.Objectives)
}

// Trim bounds the frontier to maxSize members, preferring diversity: crowding
// distance is recomputed over the live set, boundary members are kept first,
// then descending finite distance. A boundary member is never evicted while a
// finite-distance member remains. No-op when already within bound.
func (f *Frontier) Trim(maxSize int) {
	if maxSize < 1 || len(f.solutions) <= maxSize {
		return
	}

	logger := logging.GetLogger()
	ctx := logging.WithGeneration(context.Background(), f.generation)

	distances := dominance.CrowdingDistance(f.solutions, f.cfg.Objectives)
	sorted := dominance.SortByCrowding(f.solutions, distances)

	evicted := sorted[maxSize:]
	f.solutions = append([]*core.Candidate(nil), sorted[:maxSize]...)
	// Survivors already passed normalization on insertion, so this cannot
	// fail.
	_ = f.renormalize()
	f.refreshVolume()

	for _, c := range evicted {
		logger.Debug(ctx, "member %s evicted in trim: distance=%.4f", c.ID, distances[c.ID])
	}
	logger.Debug(ctx, "frontier trimmed to %d members: volume=%.6f", maxSize, f.volume)
}

// RemoveSolution removes a member by id, renormalizes the remaining set, and
// recomputes hypervolume. No-op when the id is absent.
func (f *Frontier) RemoveSolution(id string) bool {
	for i, member := range f.solutions {
		if member.ID == id {
			f.solutions = append(f.solutions[:i], f.solutions[i+1:]...)
			_ = f.renormalize()
			f.refreshVolume()
			return true
		}
	}
	return false
}

// ArchiveSolution records a candidate in the historical archive, idempotent
// by id. The candidate is normalized first if it never touched the frontier.
func (f *Frontier) ArchiveSolution(candidate *core.Candidate) error {
	if candidate == nil {
		return errors.New(errors.InvalidInput, "candidate cannot be nil")
	}

	entry := candidate.Clone()
	if entry.Normalized == nil {
		stats, err := f.frameStats(entry)
		if err != nil {
			return err
		}
		normalized, err := f.normalizer.Normalize(entry.Raw, stats)
		if err != nil {
			return errors.WithFields(err, errors.Fields{"candidate": entry.ID})
		}
		entry.Normalized = normalized
	}
	f.archive.Add(entry)
	return nil
}

// GetParetoOptimal re-ranks the live set and returns its rank-1 members with
// Rank and CrowdingDistance freshly stamped, for selection to bias toward low
// rank and high crowding distance. By construction the whole live set is
// rank 1.
func (f *Frontier) GetParetoOptimal() []*core.Candidate {
	optimal := dominance.ParetoOptimal(f.solutions, f.cfg.Objectives)
	dominance.CrowdingDistance(optimal, f.cfg.Objectives)
	return optimal
}

// Fronts runs a fresh non-dominated sort over the live set and returns the
// rank map.
func (f *Frontier) Fronts() core.Front {
	return dominance.FastNonDominatedSort(f.solutions, f.cfg.Objectives)
}

// Contribution returns each live member's exclusive hypervolume, for
// hypervolume-minimal eviction decisions.
func (f *Frontier) Contribution(concurrency int) (map[string]float64, error) {
	if len(f.solutions) == 0 {
		// Defined but degenerate: flag the boundary condition without failing.
		logging.GetLogger().Debug(context.Background(), "contribution over empty frontier")
		return map[string]float64{}, nil
	}
	if f.referencePoint == nil {
		return nil, errors.New(errors.DegenerateReferencePoint, "no reference point configured or derived")
	}
	return hypervolume.Contribution(f.solutions, f.referencePoint, f.cfg.Objectives, concurrency)
}

// Improvement measures the relative hypervolume change against a previous
// snapshot of the same configuration.
func (f *Frontier) Improvement(previous []*core.Candidate) (float64, float64) {
	if f.referencePoint == nil {
		return 0, 0
	}
	return hypervolume.Improvement(f.solutions, previous, f.referencePoint, f.cfg.Objectives)
}
