package hypervolume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XiaoConstantine/pareto-go/pkg/core"
	"github.com/XiaoConstantine/pareto-go/pkg/errors"
)

func TestContribution(t *testing.T) {
	t.Run("Empty set", func(t *testing.T) {
		got, err := Contribution(nil, origin2, names2, 2)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Single solution owns the whole volume", func(t *testing.T) {
		solutions := []*core.Candidate{solution("a", 0.5, 0.5)}
		got, err := Contribution(solutions, origin2, names2, 2)
		require.NoError(t, err)
		assert.InDelta(t, 0.25, got["a"], 1e-9)
	})

	t.Run("Exclusive regions", func(t *testing.T) {
		solutions := []*core.Candidate{
			solution("a", 0.8, 0.2),
			solution("b", 0.2, 0.8),
		}
		got, err := Contribution(solutions, origin2, names2, 2)
		require.NoError(t, err)
		// Each loses its box minus the 0.2x0.2 shared corner.
		assert.InDelta(t, 0.12, got["a"], 1e-9)
		assert.InDelta(t, 0.12, got["b"], 1e-9)
	})

	t.Run("Dominated solution contributes zero", func(t *testing.T) {
		solutions := []*core.Candidate{
			solution("a", 0.8, 0.8),
			solution("b", 0.5, 0.5),
		}
		got, err := Contribution(solutions, origin2, names2, 2)
		require.NoError(t, err)
		assert.InDelta(t, 0.0, got["b"], 1e-9)
		assert.InDelta(t, 0.64, got["a"], 1e-9)
	})

	t.Run("Contributions never exceed the total", func(t *testing.T) {
		solutions := []*core.Candidate{
			solution("a", 0.9, 0.1),
			solution("b", 0.7, 0.5),
			solution("c", 0.4, 0.8),
			solution("d", 0.1, 0.95),
		}
		total := Calculate(solutions, origin2, names2)
		got, err := Contribution(solutions, origin2, names2, 3)
		require.NoError(t, err)

		sum := 0.0
		for _, v := range got {
			assert.GreaterOrEqual(t, v, 0.0)
			sum += v
		}
		assert.LessOrEqual(t, sum, total+1e-9)
	})

	t.Run("Deterministic across concurrency levels", func(t *testing.T) {
		solutions := []*core.Candidate{
			solution("a", 0.9, 0.1),
			solution("b", 0.6, 0.6),
			solution("c", 0.1, 0.9),
		}
		serial, err := Contribution(solutions, origin2, names2, 1)
		require.NoError(t, err)
		parallel, err := Contribution(solutions, origin2, names2, 8)
		require.NoError(t, err)
		assert.Equal(t, serial, parallel)
	})

	t.Run("Degenerate reference point", func(t *testing.T) {
		solutions := []*core.Candidate{solution("a", 0.3, 0.3)}
		ref := core.ObjectiveVector{"accuracy": 0.5, "latency": 0.5}
		_, err := Contribution(solutions, ref, names2, 2)
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.DegenerateReferencePoint))
	})
}

func TestAutoReferencePoint(t *testing.T) {
	t.Run("Worst observed minus margin", func(t *testing.T) {
		candidates := []*core.Candidate{
			solution("a", 0.9, 0.3),
			solution("b", 0.5, 0.8),
		}
		ref := AutoReferencePoint(candidates, names2, 0.1)
		assert.InDelta(t, 0.4, ref["accuracy"], 1e-9)
		assert.InDelta(t, 0.2, ref["latency"], 1e-9)
	})

	t.Run("Clamps at zero", func(t *testing.T) {
		candidates := []*core.Candidate{solution("a", 0.05, 0.9)}
		ref := AutoReferencePoint(candidates, names2, 0.1)
		assert.Equal(t, 0.0, ref["accuracy"])
	})

	t.Run("Negative margin falls back to default", func(t *testing.T) {
		candidates := []*core.Candidate{solution("a", 0.5, 0.5)}
		ref := AutoReferencePoint(candidates, names2, -1)
		assert.InDelta(t, 0.4, ref["accuracy"], 1e-9)
	})

	t.Run("Every candidate dominates the derived point", func(t *testing.T) {
		candidates := []*core.Candidate{
			solution("a", 0.9, 0.3),
			solution("b", 0.5, 0.8),
			solution("c", 0.6, 0.6),
		}
		ref := AutoReferencePoint(candidates, names2, 0.1)
		for _, c := range candidates {
			for _, name := range names2 {
				assert.Greater(t, c.Normalized[name], ref[name])
			}
		}
	})
}

func TestImprovement(t *testing.T) {
	previous := []*core.Candidate{solution("a", 0.5, 0.5)}
	current := []*core.Candidate{
		solution("a", 0.5, 0.5),
		solution("b", 0.8, 0.2),
	}

	t.Run("Growth", func(t *testing.T) {
		ratio, volume := Improvement(current, previous, origin2, names2)
		assert.InDelta(t, 0.31, volume, 1e-9) // 0.25 + 0.3*0.2 exclusive strip
		assert.InDelta(t, 0.24, ratio, 1e-9)  // (0.31-0.25)/0.25
	})

	t.Run("No change", func(t *testing.T) {
		ratio, volume := Improvement(previous, previous, origin2, names2)
		assert.InDelta(t, 0.25, volume, 1e-9)
		assert.InDelta(t, 0.0, ratio, 1e-9)
	})

	t.Run("From empty", func(t *testing.T) {
		ratio, volume := Improvement(current, nil, origin2, names2)
		assert.Greater(t, volume, 0.0)
		assert.Equal(t, 1.0, ratio)
	})

	t.Run("Empty to empty", func(t *testing.T) {
		ratio, volume := Improvement(nil, nil, origin2, names2)
		assert.Equal(t, 0.0, volume)
		assert.Equal(t, 0.0, ratio)
	})
}
