package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Board {
	t.Helper()
	b, err := ParseBoard(s)
	require.NoError(t, err)
	return b
}

func TestLegalMoves(t *testing.T) {
	t.Run("empty board lists every cell in row-major order", func(t *testing.T) {
		moves := LegalMoves(Board{})

		require.Len(t, moves, 9)
		require.Equal(t, Move{0, 0}, moves[0], "First move should be the top-left cell")
		require.Equal(t, Move{0, 1}, moves[1], "Moves should walk rows first")
		require.Equal(t, Move{2, 2}, moves[8], "Last move should be the bottom-right cell")
	})

	t.Run("count is nine minus occupied cells", func(t *testing.T) {
		boards := []string{"X........", "X.O......", "XOXOXOX..", "XOXXOOOXX"}
		for _, s := range boards {
			b := mustParse(t, s)
			moves := LegalMoves(b)

			occupied := b.Count(X) + b.Count(O)
			require.Len(t, moves, 9-occupied, "board %s", s)
			for _, m := range moves {
				require.Equal(t, None, b[m.Row][m.Col], "Legal move %v should be empty on %s", m, s)
			}
		}
	})
}

func TestCheckWinner(t *testing.T) {
	tests := []struct {
		name  string
		board string
		want  Outcome
	}{
		{"empty board", ".........", Outcome{Status: InProgress}},
		{"top row", "XXX.OO...", Outcome{Status: Win, Winner: X}},
		{"middle row", "X.XOOOX..", Outcome{Status: Win, Winner: O}},
		{"bottom row", "OO.X.XXXX", Outcome{Status: Win, Winner: X}},
		{"left column", "OX.OX.O..", Outcome{Status: Win, Winner: O}},
		{"middle column", "OX..XO.X.", Outcome{Status: Win, Winner: X}},
		{"right column", "XXOX.O..O", Outcome{Status: Win, Winner: O}},
		{"main diagonal", "XO.OX...X", Outcome{Status: Win, Winner: X}},
		{"anti diagonal", "XXO.OXO..", Outcome{Status: Win, Winner: O}},
		{"full board draw", "XOXXOOOXX", Outcome{Status: Draw}},
		{"one empty cell and no line", "XOXXOOOX.", Outcome{Status: InProgress}},
		{"win on full board is not a draw", "XXXOOXXOO", Outcome{Status: Win, Winner: X}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckWinner(mustParse(t, tt.board))
			require.Equal(t, tt.want, got)
		})
	}
}

func TestWinningMove(t *testing.T) {
	t.Run("completing a row wins for the mover", func(t *testing.T) {
		b := mustParse(t, "XX.OO....")
		require.False(t, CheckWinner(b).Decided())

		next, err := b.Play(Move{0, 2}, X)

		require.NoError(t, err)
		require.Equal(t, Outcome{Status: Win, Winner: X}, CheckWinner(next))
	})
}
