package agent

import (
	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

type Agent interface {
	// FindMove returns the move to play for player and performance metrics (if collected) from the search
	FindMove(board game.Board, player game.Player) (game.Move, metrics.SearchMetric, error)
}
