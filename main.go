package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tictactoe/engine"
	"tictactoe/experiments"
	"tictactoe/game"
	"tictactoe/meta"
	"tictactoe/searcher"
	"tictactoe/searcher/agent"
)

type config struct {
	mode        string
	iterations  int
	duration    time.Duration
	exploration float64
	reward      searcher.Reward
	seed        uint64
	human       string
	centre      bool
	remote      string
	experiment  string
	out         string
	port        string
	debug       bool
}

func main() {
	cfg := config{}
	flag.StringVar(&cfg.mode, "mode", "play", "play, arena or serve")
	flag.IntVar(&cfg.iterations, "iterations", meta.ITERATIONS, "MCTS iterations per move (0 to bound by -duration only)")
	flag.DurationVar(&cfg.duration, "duration", 0, "wall-clock budget per move")
	flag.Float64Var(&cfg.exploration, "exploration", searcher.DefaultExploration, "UCT exploration constant")
	flag.TextVar(&cfg.reward, "reward", searcher.RootWinOnly,
		"reward scheme: root-win-only treats the opponent as cooperative and can miss blocks, so the engine may lose; zero-sum scores each side's own result")
	flag.Uint64Var(&cfg.seed, "seed", 0, "random seed (0 seeds from the clock)")
	flag.StringVar(&cfg.human, "human", "O", "side played by the human in play mode")
	flag.BoolVar(&cfg.centre, "centre", true, "engine opens in the centre when the human plays O")
	flag.StringVar(&cfg.remote, "remote", "", "agent server URL to play against instead of a local search")
	flag.StringVar(&cfg.experiment, "config", "", "arena experiment YAML (default experiment if empty)")
	flag.StringVar(&cfg.out, "out", "results", "arena output directory")
	flag.StringVar(&cfg.port, "port", meta.PORT, "agent server port")
	flag.BoolVar(&cfg.debug, "debug", false, "debug logging")
	flag.Parse()

	setupLogging(cfg.debug)

	var err error
	switch cfg.mode {
	case "play":
		err = play(cfg)
	case "arena":
		err = arena(cfg)
	case "serve":
		err = serve(cfg)
	default:
		err = fmt.Errorf("unknown mode %q", cfg.mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cfg.mode)
	}
}

func setupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
	log.Debug().Msg("debug logging is on")
}

func searchOptions(cfg config) []searcher.Option {
	options := []searcher.Option{
		searcher.WithIterations(cfg.iterations),
		searcher.WithDuration(cfg.duration),
		searcher.WithExploration(cfg.exploration),
		searcher.WithReward(cfg.reward),
		searcher.WithMetrics(),
	}
	if cfg.seed != 0 {
		options = append(options, searcher.WithSeed(cfg.seed))
	}
	return options
}

// play runs a game between a human on the terminal and the engine
func play(cfg config) error {
	human, err := game.ParsePlayer(cfg.human)
	if err != nil || human == game.None {
		return fmt.Errorf("human must play X or O, got %q", cfg.human)
	}
	options := searchOptions(cfg)

	var engineAgent agent.Agent
	if cfg.remote != "" {
		engineAgent = agent.NewRemoteAgent(cfg.remote, cfg.iterations)
	} else {
		engineAgent = agent.NewEvaluationAgent(searcher.NewMCTS(options...))
	}
	agents := map[game.Player]agent.Agent{
		human:            agent.NewHumanAgent(os.Stdin, os.Stdout),
		human.Opponent(): engineAgent,
	}

	board := game.Board{}
	start := game.X
	if human == game.O && cfg.centre {
		board, _ = board.Play(game.Move{Row: 1, Col: 1}, game.X)
		start = game.O
	}

	fmt.Printf("You play %v\n%v\n", human, board)
	e := engine.LocalEngine(agents, start).WithBoard(board).OnUpdate(func(u engine.Update) {
		fmt.Printf("\n%v plays %v\n%v\n", u.Player, u.Move, u.Board)
	})
	outcome, _, _, err := e.Run()
	if err != nil {
		return err
	}

	switch {
	case outcome.Status == game.Draw:
		fmt.Println("Draw!")
	case outcome.Winner == human:
		fmt.Println("You win!")
	default:
		fmt.Printf("%v wins!\n", outcome.Winner)
	}
	return nil
}

func arena(cfg config) error {
	exp := experiments.DefaultExperiment()
	if cfg.experiment != "" {
		var err error
		exp, err = experiments.LoadExperiment(cfg.experiment)
		if err != nil {
			return err
		}
	}

	result, err := experiments.Run(exp, cfg.out)
	if err != nil {
		return err
	}
	for _, r := range result.MatchUps {
		fmt.Printf("agent %d (X) vs agent %d (O): %d-%d, %d draws\n", r.Agent1, r.Agent2, r.Wins1, r.Wins2, r.Draws)
	}
	fmt.Printf("records written to %s\n", result.Dir)
	return nil
}

func serve(cfg config) error {
	return agent.StartAgentServer(cfg.port, searchOptions(cfg)...)
}
