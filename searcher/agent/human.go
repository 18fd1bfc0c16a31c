package agent

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/utils"
)

// ErrNoInput is returned when the human's input ends before a legal move is read.
var ErrNoInput = errors.New("no more input")

type humanAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHumanAgent returns an agent that prompts on out and reads "row col" lines from in.
func NewHumanAgent(in io.Reader, out io.Writer) Agent {
	return &humanAgent{in: bufio.NewScanner(in), out: out}
}

func (h *humanAgent) FindMove(board game.Board, player game.Player) (game.Move, metrics.SearchMetric, error) {
	legal := game.LegalMoves(board)
	fmt.Fprintf(h.out, "\n%v\n", board)
	for {
		fmt.Fprintf(h.out, "%v to move (row col): ", player)
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return game.Move{}, metrics.SearchMetric{}, err
			}
			return game.Move{}, metrics.SearchMetric{}, ErrNoInput
		}

		var move game.Move
		if _, err := fmt.Sscan(h.in.Text(), &move.Row, &move.Col); err != nil {
			fmt.Fprintf(h.out, "expected two numbers, got %q\n", h.in.Text())
			continue
		}
		if utils.FindIndex(legal, move) < 0 {
			fmt.Fprintf(h.out, "%v is not a legal move\n", move)
			continue
		}
		return move, metrics.SearchMetric{}, nil
	}
}
