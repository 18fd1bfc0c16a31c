package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUCTScore(t *testing.T) {
	t.Run("win rate plus exploration bonus", func(t *testing.T) {
		policy := newUCT(DefaultExploration, 100)

		got := policy.score(&Node{wins: 5, visits: 10})

		expected := 0.5 + math.Sqrt2*math.Sqrt(math.Log(100)/10)
		require.InDelta(t, expected, got, 1e-9)
	})

	t.Run("a single parent visit leaves only the win rate", func(t *testing.T) {
		policy := newUCT(DefaultExploration, 1)
		require.InDelta(t, 0.75, policy.score(&Node{wins: 3, visits: 4}), 1e-12)
	})

	t.Run("zero exploration leaves only the win rate", func(t *testing.T) {
		policy := newUCT(0, 500)
		require.InDelta(t, 0.25, policy.score(&Node{wins: 1, visits: 4}), 1e-12)
	})

	t.Run("bonus grows with parent visits and shrinks with child visits", func(t *testing.T) {
		child := &Node{wins: 2, visits: 4}
		require.Greater(t, newUCT(DefaultExploration, 9).score(child), newUCT(DefaultExploration, 8).score(child))

		policy := newUCT(DefaultExploration, 9)
		require.Greater(t, policy.score(&Node{wins: 1, visits: 2}), policy.score(&Node{wins: 2, visits: 4}),
			"Equal win rates should favour the less visited child")
	})

	t.Run("unvisited parent or child", func(t *testing.T) {
		require.Panics(t, func() { newUCT(DefaultExploration, 0) })
		require.Panics(t, func() { newUCT(DefaultExploration, 9).score(&Node{}) })
	})
}
