// internal/httpserver/server.go
//
// HTTP server wiring for the word finder backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health".
//   - Solver endpoints: POST /solve, dictionary lookups under /dictionaries.
//   - Board endpoints: POST /board/new, GET /board/daily (routes_daily.go).
//   - Game session endpoints: /game/* (routes_game.go).
//
// Notes:
//   - Solved boards go through the solution cache, keyed by dictionary name
//     and version, word length cap, dimensions and board string.
//   - Client-supplied boards are capped at MAX_BOARD_SIZE² cells.
//   - Dictionaries come from a dict.Provider; a search holds on to the
//     snapshot it started with even if the dictionary is reloaded meanwhile.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/mntnorv/wrdl/internal/config"
	"github.com/mntnorv/wrdl/internal/dict"
	"github.com/mntnorv/wrdl/internal/grid"
	"github.com/mntnorv/wrdl/internal/solver"
	"github.com/mntnorv/wrdl/internal/store"
)

// Server bundles router, dictionaries, game store and solution cache.
type Server struct {
	r     *chi.Mux
	cfg   config.Config
	dicts *dict.Provider
	games store.Store
	cache store.SolutionCache
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg config.Config, dicts *dict.Provider, games store.Store, cache store.SolutionCache) *Server {
	s := &Server{r: chi.NewRouter(), cfg: cfg, dicts: dicts, games: games, cache: cache}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                       // zerolog access log
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(cfg.ClientOrigin))          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wrdl","endpoints":["/health","POST /solve","/dictionaries","POST /board/new","/board/daily","/game/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Post("/solve", s.handleSolve)
	s.r.Route("/dictionaries", func(r chi.Router) {
		r.Get("/", s.handleListDictionaries)
		r.Get("/{name}/contains", s.handleContains)
		r.Post("/{name}/reload", s.handleReload)
	})
	s.mountBoards(s.r)
	s.mountGames(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// ServeHTTP lets the Server be used directly as an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.r.ServeHTTP(w, r) }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// accessLog writes one debug line per request.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("requestId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// ------------------------------- SOLVE -------------------------------------

// solveReq is the payload for POST /solve. Either Letters or Board must be
// set; when Columns and Rows are both zero a square board is assumed.
type solveReq struct {
	Letters       []string `json:"letters"`
	Board         string   `json:"board"`
	Columns       int      `json:"columns"`
	Rows          int      `json:"rows"`
	MaxWordLength int      `json:"maxWordLength"`
	Dictionary    string   `json:"dictionary"`
}

// solveRes is returned by every endpoint that solves a board.
type solveRes struct {
	Board         string   `json:"board"`
	Letters       []string `json:"letters"`
	Columns       int      `json:"columns"`
	Rows          int      `json:"rows"`
	Dictionary    string   `json:"dictionary"`
	MaxWordLength int      `json:"maxWordLength"`
	Words         []string `json:"words"`
	Count         int      `json:"count"`
}

// handleSolve builds a grid from the request and returns every word on it.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	letters := req.Letters
	if len(letters) == 0 {
		var err error
		if letters, err = grid.ParseBoard(req.Board); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	g, ok := s.clientGrid(w, letters, req.Columns, req.Rows)
	if !ok {
		return
	}

	sol, err := s.solve(r.Context(), req.Dictionary, req.MaxWordLength, g)
	if err != nil {
		s.writeSolveError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(solutionResponse(g, sol))
}

// solve returns the sorted words on g, consulting the cache first.
// Empty dictionary name and non-positive cap select the server defaults.
// The cache key carries the version of the snapshot the search runs on, so
// a result finished after a reload is stored under the old version only.
func (s *Server) solve(ctx context.Context, name string, maxLen int, g *grid.Grid) (*store.Solution, error) {
	if name == "" {
		name = s.cfg.DictName
	}
	if maxLen <= 0 {
		maxLen = s.cfg.MaxWordLength
	}
	d, err := s.dicts.Get(name)
	if err != nil {
		return nil, err
	}
	board := grid.FormatBoard(g.Letters())
	key := store.SolutionKey(name, d.Version(), maxLen, g.Columns(), g.Rows(), board)

	if sol, err := s.cache.Get(ctx, key); err == nil {
		return sol, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Warn().Err(err).Str("key", key).Msg("solution cache lookup")
	}

	f := &solver.Finder{MaxWordLength: maxLen}
	var found map[string]struct{}
	if s.cfg.SearchWorkers > 0 {
		found, err = f.FindWordsParallel(ctx, g, d, s.cfg.SearchWorkers)
		if err != nil {
			return nil, err
		}
	} else {
		found = f.FindWords(g, d)
	}

	sol := &store.Solution{
		Key:           key,
		Dictionary:    name,
		MaxWordLength: maxLen,
		Board:         board,
		Words:         solver.Sorted(found),
	}
	if err := s.cache.Put(ctx, sol); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("solution cache store")
	}
	log.Debug().Str("board", board).Str("dictionary", name).Int("words", len(sol.Words)).Msg("board solved")
	return sol, nil
}

// writeSolveError maps solve failures onto HTTP statuses.
func (s *Server) writeSolveError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dict.ErrUnknown):
		writeError(w, http.StatusNotFound, "unknown_dictionary")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "search_canceled")
	default:
		log.Error().Err(err).Msg("solve")
		writeError(w, http.StatusInternalServerError, "dictionary_unavailable")
	}
}

func solutionResponse(g *grid.Grid, sol *store.Solution) solveRes {
	words := sol.Words
	if words == nil {
		words = []string{}
	}
	return solveRes{
		Board:         sol.Board,
		Letters:       g.Letters(),
		Columns:       g.Columns(),
		Rows:          g.Rows(),
		Dictionary:    sol.Dictionary,
		MaxWordLength: sol.MaxWordLength,
		Words:         words,
		Count:         len(words),
	}
}

// ---------------------------- DICTIONARIES ---------------------------------

// handleListDictionaries returns the registered dictionary names.
func (s *Server) handleListDictionaries(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(map[string]any{
		"default": s.cfg.DictName,
		"names":   s.dicts.Names(),
	})
}

// containsRes is returned by GET /dictionaries/{name}/contains.
type containsRes struct {
	Dictionary string `json:"dictionary"`
	Word       string `json:"word"`
	Contains   bool   `json:"contains"`
	Prefix     bool   `json:"prefix"`
}

// handleContains answers membership and prefix queries for ?word=.
func (s *Server) handleContains(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	word := normalizeWord(r.URL.Query().Get("word"))
	if word == "" {
		writeError(w, http.StatusBadRequest, "missing_word")
		return
	}
	d, err := s.dicts.Get(name)
	if err != nil {
		s.writeSolveError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(containsRes{
		Dictionary: name,
		Word:       word,
		Contains:   d.Contains(word),
		Prefix:     d.ContainsPrefix(word),
	})
}

// handleReload re-reads a dictionary source and drops its cached solutions.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	d, err := s.dicts.Reload(name)
	if err != nil {
		s.writeSolveError(w, err)
		return
	}
	if err := s.cache.Purge(r.Context(), name); err != nil {
		log.Warn().Err(err).Str("dictionary", name).Msg("purge solutions")
	}
	log.Info().Str("dictionary", name).Int("words", d.Len()).Msg("dictionary reloaded")
	_ = json.NewEncoder(w).Encode(map[string]any{"dictionary": name, "words": d.Len()})
}

// ------------------------------- small util --------------------------------

// writeError sends {"error": msg} with the given status.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// decodeOptional decodes a JSON body into v, treating an empty body as
// all defaults. It writes the error response and returns false on bad JSON.
func decodeOptional(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return false
	}
	return true
}

// normalizeWord matches the dictionary's upper-case form.
func normalizeWord(w string) string {
	return strings.ToUpper(strings.TrimSpace(w))
}

// clientGrid builds a grid from client-supplied tiles, inferring a square
// board when both dimensions are zero. Boards with more cells than the
// largest generated board are rejected. It writes the error response and
// returns false on failure.
func (s *Server) clientGrid(w http.ResponseWriter, letters []string, cols, rows int) (*grid.Grid, bool) {
	if cols == 0 && rows == 0 {
		cols = squareSide(len(letters))
		rows = cols
	}
	maxCells := s.cfg.MaxBoardSize * s.cfg.MaxBoardSize
	if len(letters) > maxCells || cols > maxCells || rows > maxCells {
		writeError(w, http.StatusBadRequest, "board_too_large")
		return nil, false
	}
	g, err := grid.New(letters, cols, rows)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return g, true
}

// squareSide returns the side of a square board with n cells, or 0 when n
// is not a perfect square (grid.New then rejects the board).
func squareSide(n int) int {
	side := int(math.Sqrt(float64(n)))
	if side*side != n {
		return 0
	}
	return side
}
