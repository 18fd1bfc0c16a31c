package searcher

import (
	"errors"
	"fmt"
	"math"

	"tictactoe/game"
)

// Hyperparameters for MCTS

// Default exploration constant in the UCT formula
const DefaultExploration = math.Sqrt2

// Rewards are in [0, 1]
const WIN = 1.0
const LOSS = 1 - WIN
const DRAW = (WIN + LOSS) / 2

// ErrNoMoveAvailable is returned when a search has nothing to choose from:
// the board is already decided or no child was expanded within the budget.
var ErrNoMoveAvailable = errors.New("no move available")

// Rand is the source of randomness for expansion and rollout. Seeded sources
// make searches reproducible.
type Rand interface {
	Intn(n int) int
}

// Reward selects how a rollout outcome is credited to the nodes on the
// backpropagation path.
type Reward int

const (
	// RootWinOnly credits WIN to every node on the path when the player to
	// move at the root wins the rollout, and LOSS for draws and opponent wins.
	RootWinOnly Reward = iota
	// ZeroSum credits each node from the perspective of the player who moved
	// into it: WIN for a win, DRAW for a draw and LOSS for a loss.
	ZeroSum
)

func (r Reward) String() string {
	switch r {
	case ZeroSum:
		return "zero-sum"
	default:
		return "root-win-only"
	}
}

func ParseReward(s string) (Reward, error) {
	switch s {
	case "", "root-win-only":
		return RootWinOnly, nil
	case "zero-sum":
		return ZeroSum, nil
	}
	return RootWinOnly, fmt.Errorf("unknown reward scheme %q", s)
}

// MarshalText and UnmarshalText let flags spell the scheme by name.
func (r Reward) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Reward) UnmarshalText(text []byte) error {
	parsed, err := ParseReward(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// rewarder returns the reward for the node entered by mover
func (r Reward) rewarder(outcome game.Outcome, root game.Player) func(mover game.Player) float64 {
	if r == ZeroSum {
		return func(mover game.Player) float64 {
			switch {
			case outcome.Status == game.Draw:
				return DRAW
			case outcome.Winner == mover:
				return WIN
			}
			return LOSS
		}
	}

	reward := LOSS
	if outcome.Status == game.Win && outcome.Winner == root {
		reward = WIN
	}
	return func(game.Player) float64 {
		return reward
	}
}
