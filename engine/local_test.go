package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/meta"
	"tictactoe/searcher"
	"tictactoe/searcher/agent"
)

type scriptedAgent struct {
	moves []game.Move
	next  int
}

func (s *scriptedAgent) FindMove(game.Board, game.Player) (game.Move, metrics.SearchMetric, error) {
	move := s.moves[s.next]
	s.next++
	return move, metrics.SearchMetric{}, nil
}

func strongAgent(seed uint64) agent.Agent {
	return agent.NewEvaluationAgent(searcher.NewMCTS(
		searcher.WithIterations(meta.ANALYSIS_ITERATIONS),
		searcher.WithSeed(seed),
		searcher.WithReward(searcher.ZeroSum),
	))
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("random agents play to the end", func(t *testing.T) {
		e := LocalEngine(map[game.Player]agent.Agent{
			game.X: agent.NewRandomAgent(1),
			game.O: agent.NewRandomAgent(2),
		}, game.X)
		var updates []Update
		e.OnUpdate(func(u Update) { updates = append(updates, u) })

		outcome, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.True(t, outcome.Decided())
		require.Equal(t, outcome, game.CheckWinner(e.Board))
		require.GreaterOrEqual(t, gameMetric.TotalMoves, 5, "No one can win in fewer than five moves")
		require.Len(t, moveMetrics, gameMetric.TotalMoves)
		require.Len(t, updates, gameMetric.TotalMoves)
		require.Equal(t, "X", gameMetric.StartingPlayer)
		require.Equal(t, game.X, updates[0].Player)
		require.Equal(t, game.O, updates[1].Player)
		require.Equal(t, e.Board, updates[len(updates)-1].Board)
	})

	t.Run("scripted game ends on a win", func(t *testing.T) {
		e := LocalEngine(map[game.Player]agent.Agent{
			game.X: &scriptedAgent{moves: []game.Move{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}},
			game.O: &scriptedAgent{moves: []game.Move{{Row: 1, Col: 0}, {Row: 1, Col: 1}}},
		}, game.X)

		outcome, gameMetric, _, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Outcome{Status: game.Win, Winner: game.X}, outcome)
		require.Equal(t, "X", gameMetric.Winner)
		require.Equal(t, 5, gameMetric.TotalMoves)
	})

	t.Run("illegal move ends the game with an error", func(t *testing.T) {
		e := LocalEngine(map[game.Player]agent.Agent{
			game.X: &scriptedAgent{moves: []game.Move{{Row: 1, Col: 1}}},
			game.O: &scriptedAgent{moves: []game.Move{{Row: 1, Col: 1}}},
		}, game.X)

		_, _, moveMetrics, err := e.Run()

		require.ErrorIs(t, err, game.ErrInvalidMove)
		require.Len(t, moveMetrics, 1, "Only the legal move should be recorded")
	})

	t.Run("decided board plays no moves", func(t *testing.T) {
		board, _ := game.ParseBoard("XXXOO....")
		e := LocalEngine(map[game.Player]agent.Agent{
			game.X: agent.NewRandomAgent(1),
			game.O: agent.NewRandomAgent(2),
		}, game.O).WithBoard(board)

		outcome, gameMetric, _, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.X, outcome.Winner)
		require.Zero(t, gameMetric.TotalMoves)
	})

	t.Run("missing agent", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(map[game.Player]agent.Agent{game.X: agent.NewRandomAgent(1)}, game.X)
		})
	})
}

func TestEngineNeverLosesToRandomOpponent(t *testing.T) {
	if testing.Short() {
		t.Skip("plays full games with large search budgets")
	}

	centre, _ := game.ParseBoard("....X....")

	t.Run("after the opponent's corner reply", func(t *testing.T) {
		for i, corner := range []game.Move{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 2}} {
			board, err := centre.Play(corner, game.O)
			require.NoError(t, err)

			e := LocalEngine(map[game.Player]agent.Agent{
				game.X: strongAgent(uint64(100 + i)),
				game.O: agent.NewRandomAgent(uint64(200 + i)),
			}, game.X).WithBoard(board)

			outcome, _, _, err := e.Run()

			require.NoError(t, err)
			require.NotEqual(t, game.O, outcome.Winner, "O should never win after corner %v\n%v", corner, e.Board)
		}
	})

	t.Run("from the centre opening", func(t *testing.T) {
		for i := 0; i < 8; i++ {
			e := LocalEngine(map[game.Player]agent.Agent{
				game.X: strongAgent(uint64(300 + i)),
				game.O: agent.NewRandomAgent(uint64(400 + i)),
			}, game.O).WithBoard(centre)

			outcome, _, _, err := e.Run()

			require.NoError(t, err)
			require.NotEqual(t, game.O, outcome.Winner, "O should never win game %d\n%v", i, e.Board)
		}
	})
}
