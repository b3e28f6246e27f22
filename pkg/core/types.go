// Package core defines the shared data model for multi-objective frontier
// management: objective vectors, candidates, fronts, and population statistics.
package core

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/XiaoConstantine/pareto-go/pkg/errors"
)

// Direction declares whether an objective is maximized or minimized.
type Direction string

const (
	Maximize Direction = "maximize"
	Minimize Direction = "minimize"
)

// ObjectiveVector maps objective names to numeric measurements.
type ObjectiveVector map[string]float64

// Clone returns an independent copy of the vector.
func (v ObjectiveVector) Clone() ObjectiveVector {
	out := make(ObjectiveVector, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Values extracts the vector's values in the order of names. Fails with
// InvalidObjective when a requested name is missing.
func (v ObjectiveVector) Values(names []string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, name := range names {
		val, ok := v[name]
		if !ok {
			return nil, errors.WithFields(
				errors.Newf(errors.InvalidObjective, "objective %q missing from vector", name),
				errors.Fields{"objective": name},
			)
		}
		out[i] = val
	}
	return out, nil
}

// Candidate represents a scored solution in the population. Rank, crowding
// distance and the domination sets are derived values; they are recomputed
// wholesale whenever the enclosing population changes.
type Candidate struct {
	ID               string          `json:"id"`
	Raw              ObjectiveVector `json:"raw_objectives"`
	Normalized       ObjectiveVector `json:"normalized_objectives"`
	Rank             int             `json:"pareto_rank"`      // 1 = non-dominated, 0 = unranked
	CrowdingDistance float64         `json:"crowding_distance"` // math.Inf(1) for boundary points
	DominatesIDs     []string        `json:"dominates"`
	DominatedByIDs   []string        `json:"dominated_by"`
	Generation       int             `json:"generation"`
	CreatedAt        time.Time       `json:"created_at"`

	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// NewCandidate creates a candidate around a raw objective vector, generating
// an id when the caller does not supply one.
func NewCandidate(id string, raw ObjectiveVector) *Candidate {
	if id == "" {
		id = uuid.New().String()
	}
	return &Candidate{
		ID:        id,
		Raw:       raw.Clone(),
		CreatedAt: time.Now(),
	}
}

// Clone deep-copies the candidate so derived fields can be restamped without
// aliasing the caller's value.
func (c *Candidate) Clone() *Candidate {
	out := *c
	out.Raw = c.Raw.Clone()
	if c.Normalized != nil {
		out.Normalized = c.Normalized.Clone()
	}
	out.DominatesIDs = append([]string(nil), c.DominatesIDs...)
	out.DominatedByIDs = append([]string(nil), c.DominatedByIDs...)
	if c.Metadata != nil {
		out.Metadata = make(map[string]interface{}, len(c.Metadata))
		for k, v := range c.Metadata {
			out.Metadata[k] = v
		}
	}
	return &out
}

// IsBoundary reports whether the candidate carries the infinite crowding
// distance sentinel.
func (c *Candidate) IsBoundary() bool {
	return math.IsInf(c.CrowdingDistance, 1)
}

// Front maps a dominance rank (1 = best) to the ids of the candidates at that
// rank. A Front is recomputed wholesale on every sort, never patched.
type Front map[int][]string

// Size returns the total number of ranked candidates.
func (f Front) Size() int {
	n := 0
	for _, ids := range f {
		n += len(ids)
	}
	return n
}

// MaxRank returns the deepest rank present, 0 for an empty front.
func (f Front) MaxRank() int {
	max := 0
	for rank := range f {
		if rank > max {
			max = rank
		}
	}
	return max
}

// Range holds the observed spread of one objective across a population.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// PopulationStats gives per-objective observed ranges, used for
// normalization. Computed over the current population or supplied externally.
type PopulationStats map[string]Range
