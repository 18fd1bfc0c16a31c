// meta/meta.go
package meta

// ITERATIONS defines the number of MCTS iterations per move in interactive play.
const ITERATIONS = 500

// ANALYSIS_ITERATIONS defines the number of MCTS iterations per move for offline analysis.
const ANALYSIS_ITERATIONS = 5000

// MAX_TURNS defines the maximum number of moves in a game.
const MAX_TURNS = 9

// PORT defines the default port of the agent server.
const PORT = "8080"

// MAX_ITERATIONS defines the largest iteration budget the agent server accepts.
const MAX_ITERATIONS = 100000
