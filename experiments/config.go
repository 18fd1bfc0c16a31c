package experiments

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"tictactoe/experiments/metrics"
	"tictactoe/meta"
	"tictactoe/searcher"
)

const (
	NumGames   = 30 // Per match up
	TimeBudget = 10 * time.Millisecond
)

const (
	KindMCTS   = "mcts"
	KindRandom = "random"
)

var ErrInvalidExperiment = errors.New("invalid experiment")

// Experiment pits agents against each other. Each match up lists two agent
// IDs: the first plays X and moves first, the second plays O.
type Experiment struct {
	Name     string                `yaml:"name"`
	Games    int                   `yaml:"games"` // Per match up
	Agents   []metrics.AgentConfig `yaml:"agents"`
	MatchUps [][]int               `yaml:"matchups"`
}

// DefaultExperiment plays both reward schemes against a random opponent from
// either side of the board.
func DefaultExperiment() Experiment {
	return Experiment{
		Name:  "arena",
		Games: NumGames,
		Agents: []metrics.AgentConfig{
			{ID: 1, Kind: KindMCTS, Iterations: meta.ITERATIONS, Reward: searcher.RootWinOnly.String()},
			{ID: 2, Kind: KindMCTS, Iterations: meta.ANALYSIS_ITERATIONS, Reward: searcher.ZeroSum.String()},
			{ID: 3, Kind: KindMCTS, Duration: TimeBudget, Reward: searcher.ZeroSum.String()},
			{ID: 4, Kind: KindRandom},
		},
		MatchUps: [][]int{{1, 4}, {4, 1}, {2, 4}, {4, 2}, {3, 1}, {1, 3}},
	}
}

func LoadExperiment(path string) (Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Experiment{}, fmt.Errorf("failed to read experiment: %w", err)
	}
	return ParseExperiment(data)
}

func ParseExperiment(data []byte) (Experiment, error) {
	var exp Experiment
	if err := yaml.Unmarshal(data, &exp); err != nil {
		return Experiment{}, fmt.Errorf("%w: %w", ErrInvalidExperiment, err)
	}
	if exp.Name == "" {
		exp.Name = "arena"
	}
	if exp.Games == 0 {
		exp.Games = NumGames
	}
	if err := exp.Validate(); err != nil {
		return Experiment{}, err
	}
	return exp, nil
}

func (e Experiment) Validate() error {
	if e.Games < 0 {
		return fmt.Errorf("%w: negative number of games %d", ErrInvalidExperiment, e.Games)
	}
	if len(lo.UniqBy(e.Agents, agentID)) != len(e.Agents) {
		return fmt.Errorf("%w: duplicate agent IDs", ErrInvalidExperiment)
	}
	for _, config := range e.Agents {
		if config.Kind != KindMCTS && config.Kind != KindRandom {
			return fmt.Errorf("%w: agent %d has unknown kind %q", ErrInvalidExperiment, config.ID, config.Kind)
		}
		if _, err := searcher.ParseReward(config.Reward); err != nil {
			return fmt.Errorf("%w: agent %d: %w", ErrInvalidExperiment, config.ID, err)
		}
		if config.Iterations < 0 || config.Duration < 0 {
			return fmt.Errorf("%w: agent %d has a negative budget", ErrInvalidExperiment, config.ID)
		}
	}

	agents := lo.KeyBy(e.Agents, agentID)
	for i, matchUp := range e.MatchUps {
		if len(matchUp) != 2 {
			return fmt.Errorf("%w: match up %d needs two agents, got %d", ErrInvalidExperiment, i+1, len(matchUp))
		}
		for _, id := range matchUp {
			if _, ok := agents[id]; !ok {
				return fmt.Errorf("%w: match up %d references unknown agent %d", ErrInvalidExperiment, i+1, id)
			}
		}
	}
	return nil
}

func agentID(config metrics.AgentConfig) int {
	return config.ID
}
