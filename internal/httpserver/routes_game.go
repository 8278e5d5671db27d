// internal/httpserver/routes_game.go
//
// HTTP routes for game sessions.
//   - POST   /game/new   → start a session on a given or random board,
//                          optionally resuming from an exported guessed mask
//   - POST   /game/guess → submit a word for a session
//   - GET    /game/{id}  → session state (board, counts, guessed words);
//                          ?word= also reports whether that word is on the
//                          board and already guessed
//   - DELETE /game/{id}  → end a session
//
// Sessions live in the bounded in-memory game store; the oldest are evicted
// once it is full.

package httpserver

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/mntnorv/wrdl/internal/game"
	"github.com/mntnorv/wrdl/internal/grid"
	"github.com/mntnorv/wrdl/internal/store"
)

// mountGames registers all /game routes.
func (s *Server) mountGames(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Post("/guess", s.handleGuess)
		r.Get("/{id}", s.handleGetGame)
		r.Delete("/{id}", s.handleDeleteGame)
	})
}

// -----------------------------------------------------------------------------
// /game/new

// newGameReq is the request payload for /game/new.
// Without Letters or Board a random Size×Size board is rolled. Mask is a
// base64 guessed bitmask from an earlier gameRes for the same board.
type newGameReq struct {
	Mask          string   `json:"mask"`
	Size          int      `json:"size"`
	Letters       []string `json:"letters"`
	Board         string   `json:"board"`
	Columns       int      `json:"columns"`
	Rows          int      `json:"rows"`
	Dictionary    string   `json:"dictionary"`
	MaxWordLength int      `json:"maxWordLength"`
}

// gameRes describes a session.
type gameRes struct {
	GameID    string   `json:"gameId"`
	Board     string   `json:"board"`
	Letters   []string `json:"letters"`
	Columns   int      `json:"columns"`
	Rows      int      `json:"rows"`
	WordCount int      `json:"wordCount"`
	Guessed   []string `json:"guessed"`
	// Mask is the base64 packed guessed bitmask.
	Mask  string     `json:"mask"`
	Check *wordCheck `json:"check,omitempty"`
}

// wordCheck answers GET /game/{id}?word=.
type wordCheck struct {
	Word    string `json:"word"`
	OnBoard bool   `json:"onBoard"`
	Guessed bool   `json:"guessed"`
}

// handleNewGame solves the requested board and stores a new session for it.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if !decodeOptional(w, r, &req) {
		return
	}

	var mask []byte
	if req.Mask != "" {
		var err error
		if mask, err = base64.StdEncoding.DecodeString(req.Mask); err != nil {
			writeError(w, http.StatusBadRequest, "bad_mask")
			return
		}
	}

	letters := req.Letters
	if len(letters) == 0 && req.Board != "" {
		var err error
		if letters, err = grid.ParseBoard(req.Board); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	cols, rows := req.Columns, req.Rows
	if len(letters) == 0 {
		size, ok := s.boardSize(req.Size)
		if !ok {
			writeError(w, http.StatusBadRequest, "board_too_large")
			return
		}
		letters = grid.Random(size)
		cols, rows = size, size
	}

	g, ok := s.clientGrid(w, letters, cols, rows)
	if !ok {
		return
	}
	sol, err := s.solve(r.Context(), req.Dictionary, req.MaxWordLength, g)
	if err != nil {
		s.writeSolveError(w, err)
		return
	}

	gm := game.FromWords(g, sol.Words)
	if mask != nil {
		if err := gm.RestoreGuessed(mask); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if err := s.games.Save(r.Context(), gm); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "store_failed")
		return
	}
	log.Debug().Str("gameId", gm.ID).Str("board", gm.Board()).Int("words", gm.WordCount()).Msg("game started")
	_ = json.NewEncoder(w).Encode(gameResponse(gm))
}

// -----------------------------------------------------------------------------
// /game/guess

// guessReq is the request payload for /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Word   string `json:"word"`
}

// handleGuess records a guess against a session.
// Words that are not on the board come back with valid=false.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var p guessReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if p.GameID == "" || strings.TrimSpace(p.Word) == "" {
		writeError(w, http.StatusBadRequest, "invalid")
		return
	}

	gm, ok := s.loadGame(w, r, p.GameID)
	if !ok {
		return
	}
	_ = json.NewEncoder(w).Encode(gm.AddGuessedWord(p.Word))
}

// -----------------------------------------------------------------------------
// /game/{id}

// handleGetGame returns the current state of a session.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	gm, ok := s.loadGame(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	res := gameResponse(gm)
	if word := normalizeWord(r.URL.Query().Get("word")); word != "" {
		res.Check = &wordCheck{
			Word:    word,
			OnBoard: gm.IsWordInGrid(word),
			Guessed: gm.IsGuessed(word),
		}
	}
	_ = json.NewEncoder(w).Encode(res)
}

// handleDeleteGame ends a session. Unknown IDs are not an error.
func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.games.Delete(r.Context(), id); err != nil {
		log.Error().Err(err).Str("gameId", id).Msg("delete game")
		writeError(w, http.StatusInternalServerError, "store_failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// loadGame fetches a session, writing the error response when it fails.
func (s *Server) loadGame(w http.ResponseWriter, r *http.Request, id string) (*game.Game, bool) {
	gm, err := s.games.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "game_not_found")
		return nil, false
	}
	if err != nil {
		log.Error().Err(err).Str("gameId", id).Msg("load game")
		writeError(w, http.StatusInternalServerError, "store_failed")
		return nil, false
	}
	return gm, true
}

func gameResponse(gm *game.Game) gameRes {
	guessed := gm.GuessedWords()
	if guessed == nil {
		guessed = []string{}
	}
	return gameRes{
		GameID:    gm.ID,
		Board:     gm.Board(),
		Letters:   gm.Letters,
		Columns:   gm.Columns,
		Rows:      gm.Rows,
		WordCount: gm.WordCount(),
		Guessed:   guessed,
		Mask:      base64.StdEncoding.EncodeToString(gm.GuessedMask()),
	}
}
