package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"tictactoe/engine"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher"
	"tictactoe/searcher/agent"
)

// MatchUpResult tallies the games of one match up.
type MatchUpResult struct {
	Agent1 int // Plays X
	Agent2 int // Plays O
	Wins1  int
	Wins2  int
	Draws  int
}

// Result of an experiment, along with the directory its records were written to.
type Result struct {
	Dir      string
	MatchUps []MatchUpResult
}

// Run plays every match up of the experiment and stores agent configs, game
// records and move records as CSV files under dir.
func Run(exp Experiment, dir string) (Result, error) {
	if err := exp.Validate(); err != nil {
		return Result{}, err
	}
	configs := lo.KeyBy(exp.Agents, agentID)

	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	results := make([]MatchUpResult, 0, len(exp.MatchUps))

	log.Info().Msgf("starting %s experiment...", exp.Name)

	for mi, matchUp := range exp.MatchUps {
		config1 := configs[matchUp[0]]
		config2 := configs[matchUp[1]]
		result := MatchUpResult{Agent1: config1.ID, Agent2: config2.ID}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(exp.MatchUps), config1, config2)

		for i := 0; i < exp.Games; i++ {
			outcome, gameMetric, moveMetrics, err := runGame(config1, config2, uint64(count))
			if err != nil {
				return Result{}, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			switch {
			case outcome.Status == game.Draw:
				result.Draws++
			case outcome.Winner == game.X:
				result.Wins1++
			default:
				result.Wins2++
			}

			log.Debug().Msgf("completed matchup %d of %d game %d: %v", mi+1, len(exp.MatchUps), i+1, outcome)
		}
		results = append(results, result)
		log.Info().Msgf("completed matchup %d of %d: %+v", mi+1, len(exp.MatchUps), result)
	}

	log.Info().Msgf("completed %s experiment", exp.Name)

	writer, err := storeRecords(exp, dir, gameRecords, moveRecords)
	if err != nil {
		return Result{}, err
	}

	return Result{Dir: writer.Dir(), MatchUps: results}, nil
}

func storeRecords(exp Experiment, dir string, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (*metrics.Writer, error) {
	writer, err := metrics.NewWriter(dir, exp.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(exp.Agents); err != nil {
		return nil, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer, nil
}

// runGame executes a single game with config1 as X against config2 as O
func runGame(config1, config2 metrics.AgentConfig, gameNum uint64) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := map[game.Player]agent.Agent{
		game.X: createAgent(config1, gameNum),
		game.O: createAgent(config2, gameNum),
	}
	return engine.LocalEngine(agents, game.X).Run()
}

// createAgent builds the agent for one game. The game number offsets the seed
// so repeated games of a match up differ.
func createAgent(config metrics.AgentConfig, offset uint64) agent.Agent {
	seed := config.Seed + offset
	if config.Kind == KindRandom {
		return agent.NewRandomAgent(seed)
	}
	return agent.NewEvaluationAgent(createMCTS(config, seed))
}

func createMCTS(config metrics.AgentConfig, seed uint64) *searcher.MCTS {
	options := []searcher.Option{searcher.WithSeed(seed), searcher.WithMetrics()}

	if config.Iterations > 0 {
		options = append(options, searcher.WithIterations(config.Iterations))
	} else if config.Duration > 0 {
		options = append(options, searcher.WithIterations(0))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Exploration > 0 {
		options = append(options, searcher.WithExploration(config.Exploration))
	}
	// Validated with the experiment
	reward, _ := searcher.ParseReward(config.Reward)
	options = append(options, searcher.WithReward(reward))

	return searcher.NewMCTS(options...)
}
