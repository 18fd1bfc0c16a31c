package searcher

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/meta"
)

type Option func(mcts *MCTS)

type MCTS struct {
	iterations  int
	duration    time.Duration
	exploration float64
	reward      Reward
	rng         Rand
	metrics     metrics.Collector
}

// Decision is the outcome of a search from a fresh root.
type Decision struct {
	Move   game.Move
	Child  *Node       // Subtree under the chosen move
	Stats  []ChildStat // Every root child, in expansion order
	Metric metrics.SearchMetric
}

// WithIterations sets the iteration budget. Zero leaves only the duration as
// a bound.
func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations >= 0 {
			m.iterations = iterations
		}
	}
}

// WithDuration adds a wall-clock cutoff. The decision is taken from whatever
// tree exists at the cutoff.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		m.exploration = math.Max(0, c)
	}
}

func WithReward(reward Reward) Option {
	return func(m *MCTS) {
		m.reward = reward
	}
}

func WithRand(rng Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithSeed gives each MCTS built from the option its own seeded source.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		iterations:  meta.ITERATIONS,
		exploration: DefaultExploration,
		reward:      RootWinOnly,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

// FindMove searches a fresh tree for the given position.
func (m *MCTS) FindMove(board game.Board, player game.Player) (Decision, error) {
	root := NewRoot(board, player)
	child, metric, err := m.search(root)
	if err != nil {
		return Decision{}, err
	}
	return Decision{
		Move:   child.move,
		Child:  child,
		Stats:  root.Stats(),
		Metric: metric,
	}, nil
}

// Search grows the tree under root for the configured budget and returns the
// most visited move along with its subtree.
func (m *MCTS) Search(root *Node) (game.Move, *Node, error) {
	child, _, err := m.search(root)
	if err != nil {
		return game.Move{}, nil, err
	}
	return child.move, child, nil
}

func (m *MCTS) search(root *Node) (*Node, metrics.SearchMetric, error) {
	// Expanding for None would never change the board, so rollouts would not end
	if root.player != game.X && root.player != game.O {
		return nil, metrics.SearchMetric{}, fmt.Errorf("%w: no player to move", game.ErrInvalidMove)
	}
	if root.Terminal() {
		return nil, metrics.SearchMetric{}, fmt.Errorf("%w: game is over (%v)", ErrNoMoveAvailable, root.outcome)
	}

	m.metrics.Start(m.iterations)
	start := time.Now()
	episodes := 0
	for !m.exhausted(episodes, start) {
		m.simulate(root)
		m.metrics.AddEpisode()
		episodes++
	}
	metric := m.metrics.Complete(root.Size())

	// Decision by visit count, not win rate or UCT score
	child := root.mostVisited()
	if child == nil {
		return nil, metric, fmt.Errorf("%w: no child expanded after %d iterations", ErrNoMoveAvailable, episodes)
	}

	log.Debug().
		Stringer("player", root.player).
		Stringer("move", child.move).
		Int("iterations", episodes).
		Int("visits", child.visits).
		Float64("winRate", child.WinRate()).
		Dur("elapsed", time.Since(start)).
		Msg("search completed")

	return child, metric, nil
}

func (m *MCTS) exhausted(episodes int, start time.Time) bool {
	// A duration alone still runs one episode so there is a move to return
	if m.duration > 0 && episodes > 0 && time.Since(start) >= m.duration {
		return true
	}
	if m.iterations > 0 {
		return episodes >= m.iterations
	}
	return m.duration <= 0
}

func (m *MCTS) simulate(root *Node) {
	node := selectThenExpand(root, m.exploration, m.rng)
	if node.Terminal() {
		m.metrics.AddTerminalHit()
	}
	outcome := rollout(node.board, node.player, m.rng)
	backup(node, m.reward.rewarder(outcome, root.player))
}

func selectThenExpand(root *Node, c float64, rng Rand) *Node {
	node := root
	// Selection
	for node.FullyExpanded() && !node.Terminal() {
		node = node.selectChildUCT(c)
	}
	// Expansion
	if !node.FullyExpanded() && !node.Terminal() {
		node = node.expand(rng)
	}
	return node
}

// rollout plays uniformly random moves on a copy of the board until the game
// is decided.
func rollout(board game.Board, player game.Player, rng Rand) game.Outcome {
	outcome := game.CheckWinner(board)
	for !outcome.Decided() {
		moves := game.LegalMoves(board)
		move := moves[rng.Intn(len(moves))] // Random rollout policy
		board[move.Row][move.Col] = player
		player = player.Opponent()
		outcome = game.CheckWinner(board)
	}
	return outcome
}

func backup(newNode *Node, rewarder func(mover game.Player) float64) {
	node := newNode
	for node != nil {
		parent := node.backup(rewarder)
		node = parent
	}
}
