package agent

import (
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns an agent that plays the most visited move of a fresh search.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(board game.Board, player game.Player) (game.Move, metrics.SearchMetric, error) {
	decision, err := a.mcts.FindMove(board, player)
	if err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}
	return decision.Move, decision.Metric, nil
}
