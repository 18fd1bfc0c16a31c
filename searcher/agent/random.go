package agent

import (
	"fmt"

	"golang.org/x/exp/rand"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
func NewRandomAgent(seed uint64) Agent {
	return randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a randomAgent) FindMove(board game.Board, player game.Player) (game.Move, metrics.SearchMetric, error) {
	if outcome := game.CheckWinner(board); outcome.Decided() {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("%w: game is over (%v)", searcher.ErrNoMoveAvailable, outcome)
	}
	moves := game.LegalMoves(board)
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
