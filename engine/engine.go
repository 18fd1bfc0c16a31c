package engine

import "tictactoe/game"

// Update describes one applied move.
type Update struct {
	Step   int
	Player game.Player
	Move   game.Move
	Board  game.Board // After the move
}

// Listener is notified after every applied move, e.g. to render the board.
type Listener func(Update)
