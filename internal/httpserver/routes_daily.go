// internal/httpserver/routes_daily.go
//
// HTTP routes for generated boards.
// Exposes two endpoints under /board:
//   - POST /board/new   → roll a random board and solve it
//   - GET  /board/daily → the board of the day (or of ?date=YYYY-MM-DD)
//
// The daily board depends only on the date, the requested size and the
// server's DAILY_SALT, so every client gets the same board for a date.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mntnorv/wrdl/internal/daily"
	"github.com/mntnorv/wrdl/internal/grid"
)

// mountBoards registers all /board routes.
func (s *Server) mountBoards(r chi.Router) {
	r.Route("/board", func(r chi.Router) {
		r.Post("/new", s.handleNewBoard)
		r.Get("/daily", s.handleDailyBoard)
	})
}

// boardSize resolves a requested board side against the configured limits.
// Zero or negative selects the default size.
func (s *Server) boardSize(size int) (int, bool) {
	if size <= 0 {
		return s.cfg.BoardSize, true
	}
	return size, size <= s.cfg.MaxBoardSize
}

// -----------------------------------------------------------------------------
// /board/new

// newBoardReq is the request payload for /board/new. Every field is optional.
type newBoardReq struct {
	Size          int    `json:"size"`
	Dictionary    string `json:"dictionary"`
	MaxWordLength int    `json:"maxWordLength"`
}

// handleNewBoard rolls a random square board and returns it solved.
func (s *Server) handleNewBoard(w http.ResponseWriter, r *http.Request) {
	var req newBoardReq
	if !decodeOptional(w, r, &req) {
		return
	}
	size, ok := s.boardSize(req.Size)
	if !ok {
		writeError(w, http.StatusBadRequest, "board_too_large")
		return
	}

	g, err := grid.New(grid.Random(size), size, size)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sol, err := s.solve(r.Context(), req.Dictionary, req.MaxWordLength, g)
	if err != nil {
		s.writeSolveError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(solutionResponse(g, sol))
}

// -----------------------------------------------------------------------------
// /board/daily

// dailyBoardRes is returned by /board/daily.
type dailyBoardRes struct {
	Date string `json:"date"`
	solveRes
}

// handleDailyBoard returns the solved board of the day.
// Query parameters: date (YYYY-MM-DD, default today in UTC), size,
// dictionary and maxWordLength.
func (s *Server) handleDailyBoard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	date := time.Now().UTC()
	if v := q.Get("date"); v != "" {
		d, err := daily.ParseDateKey(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_date")
			return
		}
		date = d
	}

	size, maxLen := 0, 0
	if v := q.Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_size")
			return
		}
		size = n
	}
	if v := q.Get("maxWordLength"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_max_word_length")
			return
		}
		maxLen = n
	}
	size, ok := s.boardSize(size)
	if !ok {
		writeError(w, http.StatusBadRequest, "board_too_large")
		return
	}

	g, err := grid.New(daily.Board(date, s.cfg.DailySalt, size), size, size)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sol, err := s.solve(r.Context(), q.Get("dictionary"), maxLen, g)
	if err != nil {
		s.writeSolveError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(dailyBoardRes{
		Date:     daily.DateKey(date),
		solveRes: solutionResponse(g, sol),
	})
}
