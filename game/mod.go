package game

import "errors"

// Size is the side length of the board
const Size = 3

// ErrInvalidMove is returned when a move targets an occupied or out-of-range
// cell, or is played for no player.
var ErrInvalidMove = errors.New("invalid move")

// Player marks a cell and identifies whose turn it is. The zero value marks an
// empty cell.
type Player int8

const (
	None Player = 0
	X    Player = 1
	O    Player = -1
)

func (p Player) Opponent() Player {
	return -p
}

func (p Player) String() string {
	switch p {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "."
	}
}

// ParsePlayer accepts "X" or "O" in either case.
func ParsePlayer(s string) (Player, error) {
	switch s {
	case "X", "x":
		return X, nil
	case "O", "o":
		return O, nil
	}
	return None, errors.New("unknown player " + s)
}

type Status int

const (
	InProgress Status = iota
	Win
	Draw
)

func (s Status) String() string {
	switch s {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

// Outcome of a board. Winner is only set when Status is Win.
type Outcome struct {
	Status Status
	Winner Player
}

func (o Outcome) Decided() bool {
	return o.Status != InProgress
}

func (o Outcome) String() string {
	if o.Status == Win {
		return o.Winner.String() + " wins"
	}
	return o.Status.String()
}
