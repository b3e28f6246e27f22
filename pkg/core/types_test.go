package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XiaoConstantine/pareto-go/pkg/errors"
)

func TestObjectiveVectorValues(t *testing.T) {
	v := ObjectiveVector{"accuracy": 0.9, "latency": 1.5}

	t.Run("Ordered extraction", func(t *testing.T) {
		vals, err := v.Values([]string{"latency", "accuracy"})
		require.NoError(t, err)
		assert.Equal(t, []float64{1.5, 0.9}, vals)
	})

	t.Run("Missing objective", func(t *testing.T) {
		_, err := v.Values([]string{"accuracy", "cost"})
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.InvalidObjective))
	})
}

func TestObjectiveVectorClone(t *testing.T) {
	v := ObjectiveVector{"accuracy": 0.9}
	c := v.Clone()
	c["accuracy"] = 0.1
	assert.Equal(t, 0.9, v["accuracy"])
}

func TestNewCandidate(t *testing.T) {
	raw := ObjectiveVector{"accuracy": 0.9}

	t.Run("Generates id when absent", func(t *testing.T) {
		c := NewCandidate("", raw)
		assert.NotEmpty(t, c.ID)
		assert.False(t, c.CreatedAt.IsZero())
	})

	t.Run("Keeps supplied id", func(t *testing.T) {
		c := NewCandidate("cand-1", raw)
		assert.Equal(t, "cand-1", c.ID)
	})

	t.Run("Copies raw vector", func(t *testing.T) {
		c := NewCandidate("cand-2", raw)
		c.Raw["accuracy"] = 0.0
		assert.Equal(t, 0.9, raw["accuracy"])
	})
}

func TestCandidateClone(t *testing.T) {
	c := NewCandidate("cand-1", ObjectiveVector{"accuracy": 0.9})
	c.Normalized = ObjectiveVector{"accuracy": 1.0}
	c.DominatesIDs = []string{"cand-2"}
	c.Metadata = map[string]interface{}{"source": "mutation"}

	clone := c.Clone()
	clone.Normalized["accuracy"] = 0.0
	clone.DominatesIDs[0] = "other"
	clone.Metadata["source"] = "crossover"

	assert.Equal(t, 1.0, c.Normalized["accuracy"])
	assert.Equal(t, "cand-2", c.DominatesIDs[0])
	assert.Equal(t, "mutation", c.Metadata["source"])
}

func TestCandidateIsBoundary(t *testing.T) {
	c := NewCandidate("cand-1", ObjectiveVector{})
	assert.False(t, c.IsBoundary())

	c.CrowdingDistance = math.Inf(1)
	assert.True(t, c.IsBoundary())
}

func TestFront(t *testing.T) {
	f := Front{
		1: {"a", "b"},
		2: {"c"},
	}
	assert.Equal(t, 3, f.Size())
	assert.Equal(t, 2, f.MaxRank())

	empty := Front{}
	assert.Equal(t, 0, empty.Size())
	assert.Equal(t, 0, empty.MaxRank())
}
