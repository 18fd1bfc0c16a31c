package agent

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"

	"github.com/rs/zerolog/log"

	"tictactoe/game"
	"tictactoe/meta"
	"tictactoe/searcher"
)

type findMoveRequest struct {
	Board      string `json:"board"`  // 9 cells, row-major, e.g. "X...O...."
	Player     string `json:"player"` // "X" or "O"
	Iterations int    `json:"iterations"`
}

type findMoveResponse struct {
	Move       game.Move            `json:"move"`
	Visits     int                  `json:"visits"`
	WinRate    float64              `json:"winRate"`
	Iterations int                  `json:"iterations"`
	Children   []searcher.ChildStat `json:"children"`
}

// StartAgentServer starts an agent HTTP server on the given port. Every
// request runs a fresh search built from options. Pass WithSeed rather than
// WithRand, which would share one source between concurrent requests.
func StartAgentServer(port string, options ...searcher.Option) error {
	log.Info().Msgf("starting agent server on :%s ...", port)

	return http.ListenAndServe(":"+port, NewAgentMux(options...))
}

func NewAgentMux(options ...searcher.Option) *http.ServeMux {
	// Local mux rather than the global DefaultServeMux
	mux := http.NewServeMux()
	mux.HandleFunc("/findmove", func(w http.ResponseWriter, r *http.Request) {
		handleFindMove(w, r, options)
	})
	return mux
}

func handleFindMove(w http.ResponseWriter, r *http.Request, options []searcher.Option) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var payload findMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	board, err := game.ParseBoard(payload.Board)
	if err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	player, err := game.ParsePlayer(payload.Player)
	if err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	iterations := payload.Iterations
	if iterations <= 0 {
		iterations = meta.ITERATIONS
	}
	if iterations > meta.MAX_ITERATIONS {
		http.Error(w, "bad request: too many iterations", http.StatusBadRequest)
		return
	}

	mcts := searcher.NewMCTS(append(slices.Clone(options), searcher.WithIterations(iterations))...)
	decision, err := mcts.FindMove(board, player)
	if errors.Is(err, searcher.ErrNoMoveAvailable) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		log.Error().Err(err).Str("board", payload.Board).Msg("search failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	log.Info().Msgf("%v plays %v on %s", player, decision.Move, board.Compact())

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(findMoveResponse{
		Move:       decision.Move,
		Visits:     decision.Child.Visits(),
		WinRate:    decision.Child.WinRate(),
		Iterations: iterations,
		Children:   decision.Stats,
	})
	if err != nil {
		http.Error(w, "failed to encode move: "+err.Error(), http.StatusInternalServerError)
	}
}
