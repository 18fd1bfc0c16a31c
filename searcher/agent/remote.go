package agent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

type remoteAgent struct {
	url        string
	iterations int
	client     *http.Client
}

// NewRemoteAgent returns an agent that asks an agent server at url (e.g.
// "http://localhost:8080") for its moves.
func NewRemoteAgent(url string, iterations int) Agent {
	return remoteAgent{
		url:        url,
		iterations: iterations,
		client:     &http.Client{Timeout: time.Minute},
	}
}

// FindMove encodes the board in JSON and posts it to /findmove on the agent server
func (a remoteAgent) FindMove(board game.Board, player game.Player) (game.Move, metrics.SearchMetric, error) {
	bodyBytes, err := json.Marshal(findMoveRequest{
		Board:      board.Compact(),
		Player:     player.String(),
		Iterations: a.iterations,
	})
	if err != nil {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("failed to encode request: %w", err)
	}

	start := time.Now()
	resp, err := a.client.Post(a.url+"/findmove", "application/json", bytes.NewReader(bodyBytes))
	if err != nil {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("failed to reach agent: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("agent returned status %d: %s", resp.StatusCode, bytes.TrimSpace(out))
	}

	var decoded findMoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("failed to decode move: %w", err)
	}
	return decoded.Move, metrics.SearchMetric{
		Iterations: decoded.Iterations,
		Episodes:   decoded.Iterations,
		Duration:   time.Since(start),
	}, nil
}
