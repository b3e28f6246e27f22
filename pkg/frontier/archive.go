package frontier

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/XiaoConstantine/pareto-go/pkg/core"
)

// Archive is the capacity-bounded list of historically valuable candidates,
// kept for warm-starting future runs. Entries are not required to be
// non-dominated; eviction orders by a simple aggregate score.
type Archive struct {
	capacity int
	entries  []*core.Candidate
	index    map[string]int
}

// NewArchive creates an empty archive with the given capacity.
func NewArchive(capacity int) *Archive {
	if capacity < 1 {
		capacity = 1
	}
	return &Archive{
		capacity: capacity,
		index:    make(map[string]int),
	}
}

// Add appends a candidate, idempotent by id. When capacity is exceeded, the
// lowest-aggregate-score entries are evicted until the archive is back at
// capacity.
func (a *Archive) Add(candidate *core.Candidate) {
	if _, exists := a.index[candidate.ID]; exists {
		return
	}

	a.entries = append(a.entries, candidate)
	a.index[candidate.ID] = len(a.entries) - 1

	if len(a.entries) > a.capacity {
		a.evict()
	}
}

// evict keeps the capacity highest-scoring entries, preserving insertion
// order among survivors.
func (a *Archive) evict() {
	type scored struct {
		pos   int
		score float64
	}
	scoredEntries := make([]scored, len(a.entries))
	for i, c := range a.entries {
		scoredEntries[i] = scored{pos: i, score: AggregateScore(c)}
	}

	sort.Slice(scoredEntries, func(i, j int) bool {
		if scoredEntries[i].score != scoredEntries[j].score {
			return scoredEntries[i].score > scoredEntries[j].score
		}
		return scoredEntries[i].pos < scoredEntries[j].pos
	})

	keep := make(map[int]bool, a.capacity)
	for _, s := range scoredEntries[:a.capacity] {
		keep[s.pos] = true
	}

	survivors := make([]*core.Candidate, 0, a.capacity)
	for i, c := range a.entries {
		if keep[i] {
			survivors = append(survivors, c)
		}
	}

	a.entries = survivors
	a.index = make(map[string]int, len(survivors))
	for i, c := range survivors {
		a.index[c.ID] = i
	}
}

// Contains reports whether an id is archived.
func (a *Archive) Contains(id string) bool {
	_, ok := a.index[id]
	return ok
}

// Get returns an archived candidate by id.
func (a *Archive) Get(id string) (*core.Candidate, bool) {
	i, ok := a.index[id]
	if !ok {
		return nil, false
	}
	return a.entries[i], true
}

// Size returns the number of archived candidates.
func (a *Archive) Size() int {
	return len(a.entries)
}

// Capacity returns the archive's bound.
func (a *Archive) Capacity() int {
	return a.capacity
}

// Entries returns the archived candidates in insertion order.
func (a *Archive) Entries() []*core.Candidate {
	out := make([]*core.Candidate, len(a.entries))
	copy(out, a.entries)
	return out
}

// AggregateScore collapses a candidate's normalized vector to its mean value,
// the ordering key for archive eviction.
func AggregateScore(c *core.Candidate) float64 {
	if len(c.Normalized) == 0 {
		return 0
	}
	values := make([]float64, 0, len(c.Normalized))
	for _, v := range c.Normalized {
		values = append(values, v)
	}
	return stat.Mean(values, nil)
}
