package metrics

import (
	"time"
)

type SearchMetric struct {
	Iterations   int // Budget the search was configured with
	Duration     time.Duration
	Episodes     int // Iterations actually completed
	TerminalHits int // Episodes whose selection ended on a decided board
	TreeSize     int
	IsTreeReset  bool
}

type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "" on a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector records search statistics. The search is single-threaded, so the
// collector is not safe for concurrent use.
type Collector interface {
	Start(iterations int)
	AddEpisode()
	AddTerminalHit()
	Complete(treeSize int) SearchMetric
}

type collector struct {
	iterations   int
	startTime    time.Time
	episodes     int
	terminalHits int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(iterations int) {
	m.startTime = time.Now()
	m.iterations = iterations
	m.episodes = 0
	m.terminalHits = 0
}

func (m *collector) AddEpisode() {
	m.episodes++
}

func (m *collector) AddTerminalHit() {
	m.terminalHits++
}

func (m *collector) Complete(treeSize int) SearchMetric {
	return SearchMetric{
		Iterations:   m.iterations,
		Duration:     time.Since(m.startTime),
		Episodes:     m.episodes,
		TerminalHits: m.terminalHits,
		TreeSize:     treeSize,
		IsTreeReset:  true, // trees are rebuilt for every search
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(iterations int)               {}
func (m *dummyCollector) AddEpisode()                        {}
func (m *dummyCollector) AddTerminalHit()                    {}
func (m *dummyCollector) Complete(treeSize int) SearchMetric { return SearchMetric{} }
