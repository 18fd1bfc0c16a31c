package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBoard(t *testing.T) {
	t.Run("parsing row-major cells", func(t *testing.T) {
		b, err := ParseBoard("X.O/-o-/x..")

		require.NoError(t, err)
		require.Equal(t, X, b[0][0])
		require.Equal(t, O, b[0][2])
		require.Equal(t, O, b[1][1])
		require.Equal(t, X, b[2][0])
		require.Equal(t, 5, b.Count(None))
	})

	t.Run("rejecting wrong length", func(t *testing.T) {
		_, err := ParseBoard("X.O")
		require.Error(t, err)
	})

	t.Run("rejecting unknown cells", func(t *testing.T) {
		_, err := ParseBoard("X.O.Z....")
		require.Error(t, err)
	})

	t.Run("round trip through compact form", func(t *testing.T) {
		b := mustParse(t, "X.O.X.O..")
		require.Equal(t, "X.O.X.O..", b.Compact())
	})
}

func TestBoardPlay(t *testing.T) {
	t.Run("applying a move returns a new board", func(t *testing.T) {
		b := Board{}

		next, err := b.Play(Move{1, 1}, X)

		require.NoError(t, err)
		require.Equal(t, X, next[1][1])
		require.Equal(t, None, b[1][1], "Original board should not change")
	})

	t.Run("rejecting an occupied cell", func(t *testing.T) {
		b := mustParse(t, "....X....")

		_, err := b.Play(Move{1, 1}, O)

		require.ErrorIs(t, err, ErrInvalidMove)
	})

	t.Run("rejecting out of range cells", func(t *testing.T) {
		for _, m := range []Move{{-1, 0}, {0, 3}, {3, 3}} {
			_, err := Board{}.Play(m, X)
			require.ErrorIs(t, err, ErrInvalidMove, "move %v", m)
		}
	})

	t.Run("rejecting a move for no player", func(t *testing.T) {
		_, err := Board{}.Play(Move{0, 0}, None)
		require.ErrorIs(t, err, ErrInvalidMove)
	})
}

func TestPlayer(t *testing.T) {
	require.Equal(t, O, X.Opponent())
	require.Equal(t, X, O.Opponent())

	p, err := ParsePlayer("o")
	require.NoError(t, err)
	require.Equal(t, O, p)

	_, err = ParsePlayer("Z")
	require.Error(t, err)
}
