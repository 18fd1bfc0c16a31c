package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/meta"
	"tictactoe/searcher/agent"
)

type Engine struct {
	Board    game.Board
	Player   game.Player // To move
	Agents   map[game.Player]agent.Agent
	listener Listener
}

func LocalEngine(agents map[game.Player]agent.Agent, start game.Player) *Engine {
	if agents[game.X] == nil || agents[game.O] == nil {
		panic("need an agent for both players")
	}
	if start != game.X && start != game.O {
		panic("starting player must be X or O")
	}

	return &Engine{
		Player: start,
		Agents: agents,
	}
}

// WithBoard starts the game from a position other than the empty board.
func (e *Engine) WithBoard(board game.Board) *Engine {
	e.Board = board
	return e
}

func (e *Engine) OnUpdate(listener Listener) *Engine {
	e.listener = listener
	return e
}

// Run executes the game loop until the board is decided. An agent failing to
// produce a legal move ends the game with an error.
func (e *Engine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Player.String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %v is starting", e.Player)

	outcome := game.CheckWinner(e.Board)
	for step := 1; !outcome.Decided() && step <= meta.MAX_TURNS; step++ {
		move, searchMetric, err := e.Agents[e.Player].FindMove(e.Board, e.Player)
		if err != nil {
			return outcome, gameMetric, moveMetrics, fmt.Errorf("player %v failed to find a move: %w", e.Player, err)
		}

		board, err := e.Board.Play(move, e.Player)
		if err != nil {
			return outcome, gameMetric, moveMetrics, fmt.Errorf("player %v: %w", e.Player, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       e.Player.String(),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("step %d: player %v plays %v", step, e.Player, move)

		e.Board = board
		if e.listener != nil {
			e.listener(Update{Step: step, Player: e.Player, Move: move, Board: board})
		}
		e.Player = e.Player.Opponent()
		outcome = game.CheckWinner(e.Board)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	if outcome.Status == game.Win {
		gameMetric.Winner = outcome.Winner.String()
	}

	log.Info().Msgf("game over after %d moves: %v", gameMetric.TotalMoves, outcome)

	return outcome, gameMetric, moveMetrics, nil
}
