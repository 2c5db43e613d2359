// internal/httpserver/server.go
//
// HTTP server wiring for the helper API.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Solver endpoints: POST /solve (stateless), POST /session/new,
//     POST /session/feedback, GET and DELETE /session/{id} (server-held board).
//     Finished sessions are evicted once their result has been returned.
//   - Simulation endpoints: mounted by routes_daily.go.
//
// Notes:
//   - When JWT_SECRET is configured every non-public route requires a bearer
//     token (see auth.go). Without it the API is open.
//   - Solvers are read-only after construction and shared by all requests.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-helper/internal/daily"
	"github.com/robalobadob/wordle/apps/go-helper/internal/game"
	"github.com/robalobadob/wordle/apps/go-helper/internal/solver"
	"github.com/robalobadob/wordle/apps/go-helper/internal/store"
	"github.com/robalobadob/wordle/apps/go-helper/internal/words"
)

// Options configures a Server.
type Options struct {
	Dictionary *words.Dictionary
	Answers    words.Answers
	Strategy   solver.Strategy // default for requests that name none
	Sessions   store.Store
	Results    *daily.Store // nil disables /results and run recording
	JWTSecret  string       // empty disables auth
}

// Server bundles router, solvers, and session store.
type Server struct {
	r       *chi.Mux
	opts    Options
	solvers map[solver.Strategy]*solver.Solver
}

// New constructs a Server, installs middleware, and registers routes.
func New(o Options) *Server {
	if o.Sessions == nil {
		o.Sessions = store.NewMemoryStore()
	}
	if o.Strategy == "" {
		o.Strategy = solver.StrategyRotation
	}
	s := &Server{r: chi.NewRouter(), opts: o, solvers: map[solver.Strategy]*solver.Solver{}}
	for _, st := range []solver.Strategy{solver.StrategyRotation, solver.StrategyScore, solver.StrategyLetters} {
		s.solvers[st] = solver.New(o.Dictionary, st)
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(30 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-helper","endpoints":["/health","POST /solve","POST /session/new","POST /session/feedback","/session/{id}","POST /simulate","/results"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Group(func(r chi.Router) {
		r.Use(s.requireAuth())
		r.Post("/solve", s.handleSolve)
		r.Post("/session/new", s.handleNewSession)
		r.Post("/session/feedback", s.handleFeedback)
		r.Get("/session/{id}", s.handleGetSession)
		r.Delete("/session/{id}", s.handleDeleteSession)
		s.mountDaily(r)

		// Debug: word list counts
		r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]int{
				"dictionary": s.opts.Dictionary.Len(),
				"answers":    len(s.opts.Answers),
			})
		})
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Router exposes the internal router (useful for tests and http.Server).
func (s *Server) Router() chi.Router { return s.r }

// solverFor resolves a request's strategy name.
func (s *Server) solverFor(name string) (*solver.Solver, error) {
	if name == "" {
		return s.solvers[s.opts.Strategy], nil
	}
	st, err := solver.ParseStrategy(name)
	if err != nil {
		return nil, err
	}
	return s.solvers[st], nil
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
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

// writeError writes {"error": code} with status, keeping the JSON content type.
func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}

// ------------------------------ SOLVE --------------------------------------

// historyEntry is one played guess and the marks it received ("00120").
type historyEntry struct {
	Guess    string `json:"guess"`
	Feedback string `json:"feedback"`
}

// solveReq/Res payloads for POST /solve.
type solveReq struct {
	History  []historyEntry `json:"history"`
	Exclude  []string       `json:"exclude"`
	Strategy string         `json:"strategy"`
}
type solveRes struct {
	Guess      string `json:"guess"`
	Round      int    `json:"round"`
	Iterations int    `json:"iterations"`
	Swept      bool   `json:"swept"`
}

// boardFrom validates a client history and builds a board from it.
func boardFrom(history []historyEntry) (*game.Board, error) {
	b := &game.Board{}
	for _, h := range history {
		guess := strings.ToLower(strings.TrimSpace(h.Guess))
		if !words.Valid(guess) {
			return nil, errors.New("invalid_guess")
		}
		fb, err := game.ParseFeedback(h.Feedback)
		if err != nil {
			return nil, errors.New("invalid_feedback")
		}
		if err := b.Add(guess, fb); err != nil {
			return nil, errors.New("duplicate_guess")
		}
	}
	return b, nil
}

func normalizeWords(list []string) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		out = append(out, strings.ToLower(strings.TrimSpace(w)))
	}
	return out
}

// handleSolve suggests the next guess for a client-held history.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	sv, err := s.solverFor(req.Strategy)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_strategy")
		return
	}
	board, err := boardFrom(req.History)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := sv.Suggest(r.Context(), board, normalizeWords(req.Exclude))
	if errors.Is(err, solver.ErrExhausted) {
		writeError(w, http.StatusUnprocessableEntity, "exhausted")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("solve")
		writeError(w, http.StatusInternalServerError, "solve_failed")
		return
	}
	_ = json.NewEncoder(w).Encode(solveRes{
		Guess:      res.Word,
		Round:      board.Len() + 1,
		Iterations: res.Iterations,
		Swept:      res.Swept,
	})
}

// ----------------------------- SESSIONS ------------------------------------

// newSessionReq/Res payloads for POST /session/new.
type newSessionReq struct {
	Strategy string   `json:"strategy"`
	Exclude  []string `json:"exclude"`
	Day      *int     `json:"day"` // excludes answers before this day
}
type sessionRes struct {
	SessionID string         `json:"sessionId,omitempty"`
	State     string         `json:"state"` // "playing" | "won" | "lost"
	Guess     string         `json:"guess,omitempty"`
	Guesses   []string       `json:"guesses"`
	History   []historyEntry `json:"history"`
}

// handleNewSession opens a session and returns its first suggestion.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	var req newSessionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	sv, err := s.solverFor(req.Strategy)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_strategy")
		return
	}
	exclude := normalizeWords(req.Exclude)
	if req.Day != nil {
		exclude = append(exclude, s.opts.Answers.Past(*req.Day)...)
	}

	sess := &store.Session{Game: game.New(""), Strategy: sv.Strategy(), Exclude: exclude}
	if err := s.advance(r.Context(), sv, sess); err != nil {
		log.Error().Err(err).Msg("first suggestion")
		writeError(w, http.StatusInternalServerError, "solve_failed")
		return
	}
	if sess.Game.Finished {
		// nothing to suggest from the start; the session is not kept
		_ = json.NewEncoder(w).Encode(sessionView(sess, false))
		return
	}
	if err := s.opts.Sessions.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	_ = json.NewEncoder(w).Encode(sessionView(sess, true))
}

// feedbackReq payload for POST /session/feedback.
type feedbackReq struct {
	SessionID string `json:"sessionId"`
	Feedback  string `json:"feedback"`
}

// handleFeedback records the marks for the pending guess and suggests the
// next one.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	fb, err := game.ParseFeedback(req.Feedback)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_feedback")
		return
	}

	var view sessionRes
	err = s.opts.Sessions.Update(r.Context(), req.SessionID, func(sess *store.Session) error {
		if sess.Game.Finished || sess.Pending == "" {
			return game.ErrGameFinished
		}
		// work on a copy so a failed or cancelled suggestion leaves the
		// session as it was
		next := *sess
		next.Game = sess.Game.Clone()
		if err := next.Game.Record(sess.Pending, fb); err != nil {
			return err
		}
		next.Pending = ""
		if !next.Game.Finished {
			if err := s.advance(r.Context(), s.solvers[next.Strategy], &next); err != nil {
				return err
			}
		}
		*sess = next
		view = sessionView(sess, false)
		return nil
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
		return
	case errors.Is(err, game.ErrGameFinished):
		writeError(w, http.StatusConflict, "finished")
		return
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		writeError(w, http.StatusServiceUnavailable, "timeout")
		return
	case err != nil:
		log.Error().Err(err).Str("session", req.SessionID).Msg("feedback")
		writeError(w, http.StatusInternalServerError, "solve_failed")
		return
	}
	if view.State != "playing" {
		if err := s.opts.Sessions.Delete(r.Context(), req.SessionID); err != nil {
			log.Warn().Err(err).Str("session", req.SessionID).Msg("evict finished session")
		}
	}
	_ = json.NewEncoder(w).Encode(view)
}

// handleGetSession returns the state of a session in progress.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.opts.Sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load_failed")
		return
	}
	_ = json.NewEncoder(w).Encode(sessionView(sess, true))
}

// handleDeleteSession abandons a session.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.opts.Sessions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// advance stores the next suggestion as pending, or ends the game as lost
// when nothing is left.
func (s *Server) advance(ctx context.Context, sv *solver.Solver, sess *store.Session) error {
	res, err := sv.Suggest(ctx, &sess.Game.Board, sess.Exclude)
	if errors.Is(err, solver.ErrExhausted) {
		sess.Game.Lose()
		sess.Pending = ""
		return nil
	}
	if err != nil {
		return err
	}
	sess.Pending = res.Word
	return nil
}

func sessionView(sess *store.Session, withID bool) sessionRes {
	v := sessionRes{
		State:   sess.Game.State(),
		Guess:   sess.Pending,
		Guesses: append([]string{}, sess.Game.Guesses...),
		History: []historyEntry{},
	}
	for _, g := range sess.Game.Guesses {
		if fb, ok := sess.Game.Board.Lookup(g); ok {
			v.History = append(v.History, historyEntry{Guess: g, Feedback: fb.String()})
		}
	}
	if withID {
		v.SessionID = sess.ID()
	}
	return v
}
