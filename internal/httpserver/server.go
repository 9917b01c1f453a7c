// internal/httpserver/server.go
//
// HTTP server wiring for the guessing game.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/difficulties".
//   - Game endpoints: POST /game/new, POST /game/guess, POST /game/quit.
//
// Notes:
//   - Sessions live in an in-memory store.Store; nothing is persisted.
//   - Guesses are sent as raw text and parsed exactly like console input,
//     so "quit" gives up and malformed input never costs an attempt.
//   - The secret is only returned once a session is finished.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/robalobadob/diceguess/internal/daily"
	"github.com/robalobadob/diceguess/internal/difficulty"
	"github.com/robalobadob/diceguess/internal/game"
	"github.com/robalobadob/diceguess/internal/store"
)

// Options configures a Server.
type Options struct {
	Store     store.Store
	Catalog   *difficulty.Catalog
	Source    game.Source // draws secrets for non-daily games
	DailySalt string
	// GuessRate and GuessBurst bound guess submissions across all clients.
	GuessRate  rate.Limit
	GuessBurst int
}

// Server bundles router, session store, and difficulty catalog.
type Server struct {
	r         *chi.Mux
	store     store.Store
	catalog   *difficulty.Catalog
	source    game.Source
	dailySalt string
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	s := &Server{
		r:         chi.NewRouter(),
		store:     opts.Store,
		catalog:   opts.Catalog,
		source:    opts.Source,
		dailySalt: opts.DailySalt,
	}
	if opts.GuessRate == 0 {
		opts.GuessRate = rate.Inf
	}
	if opts.GuessBurst < 1 {
		opts.GuessBurst = 1
	}
	guessLimiter := rate.NewLimiter(opts.GuessRate, opts.GuessBurst)

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                       // one log line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"diceguess","endpoints":["/health","/difficulties","POST /game/new","POST /game/guess","POST /game/quit"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/difficulties", s.handleDifficulties)

	s.r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.With(limit(guessLimiter)).Post("/guess", s.handleGuess)
		r.Post("/quit", s.handleQuit)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------ CATALOG ------------------------------------

func (s *Server) handleDifficulties(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(s.catalog.Profiles())
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Difficulty string `json:"difficulty"` // catalog name; empty plays the classic 1–100 profile
	Hints      bool   `json:"hints"`
	Daily      bool   `json:"daily"` // secret derived from today's date
}
type newGameRes struct {
	GameID      string `json:"gameId"`
	Difficulty  string `json:"difficulty"`
	Min         int    `json:"min"`
	Max         int    `json:"max"`
	MaxAttempts int    `json:"maxAttempts"`
	Hints       bool   `json:"hints"`
	Daily       bool   `json:"daily"`
}

// handleNewGame resolves the difficulty, draws a secret, and stores the session.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	prof := game.Classic
	if req.Difficulty != "" {
		p, ok := s.catalog.Lookup(req.Difficulty)
		if !ok {
			http.Error(w, `{"error":"unknown_difficulty"}`, http.StatusBadRequest)
			return
		}
		prof = p
	}

	src := s.source
	if req.Daily {
		src = daily.Today(s.dailySalt)
	}
	g, err := game.New(prof, req.Hints, src)
	if err != nil {
		log.Error().Err(err).Str("difficulty", prof.Name).Msg("new game")
		http.Error(w, `{"error":"invalid_profile"}`, http.StatusInternalServerError)
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	log.Debug().Str("gameId", g.ID).Str("difficulty", prof.Name).Bool("daily", req.Daily).Msg("game started")

	_ = json.NewEncoder(w).Encode(newGameRes{
		GameID:      g.ID,
		Difficulty:  prof.Name,
		Min:         prof.Min,
		Max:         prof.Max,
		MaxAttempts: prof.MaxAttempts,
		Hints:       g.HintsEnabled,
		Daily:       req.Daily,
	})
}

// guessReq/Res payloads for POST /game/guess and /game/quit.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Hint         game.Hint    `json:"hint,omitempty"`
	Outcome      game.Outcome `json:"outcome"`
	AttemptsUsed int          `json:"attemptsUsed"`
	Remaining    int          `json:"remaining"`
	Secret       *int         `json:"secret,omitempty"` // only once finished
}

// handleGuess parses the raw guess text and applies it to the stored session.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	var res guessRes
	err := s.store.Update(r.Context(), req.GameID, func(g *game.Session) error {
		if g.Finished() {
			return game.ErrFinished
		}
		in, err := game.ParseGuess(req.Guess, g.Profile.Min, g.Profile.Max)
		if err != nil {
			return err
		}
		if in.Quit {
			if err := g.Quit(); err != nil {
				return err
			}
		} else {
			fb, err := g.Guess(in.Value)
			if err != nil {
				return err
			}
			res.Hint = fb.Hint
		}
		res.fill(g)
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

// handleQuit gives up a session and reveals the secret.
func (s *Server) handleQuit(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	var res guessRes
	err := s.store.Update(r.Context(), req.GameID, func(g *game.Session) error {
		if err := g.Quit(); err != nil {
			return err
		}
		res.fill(g)
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

func (res *guessRes) fill(g *game.Session) {
	res.Outcome = g.Outcome
	res.AttemptsUsed = g.AttemptsUsed
	res.Remaining = g.Remaining()
	if g.Finished() {
		secret := g.Secret
		res.Secret = &secret
	}
}

// writeError maps engine and store errors onto JSON error responses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
	case errors.Is(err, game.ErrInvalidNumber):
		http.Error(w, `{"error":"invalid_input"}`, http.StatusBadRequest)
	case errors.Is(err, game.ErrOutOfRange):
		http.Error(w, `{"error":"out_of_range"}`, http.StatusBadRequest)
	case errors.Is(err, game.ErrFinished):
		http.Error(w, `{"error":"finished"}`, http.StatusConflict)
	default:
		log.Error().Err(err).Msg("game request")
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
	}
}
