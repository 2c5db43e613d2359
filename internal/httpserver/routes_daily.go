// internal/httpserver/routes_daily.go
//
// HTTP routes for simulating past daily puzzles.
//   - POST /simulate → play a past day against its known answer
//   - GET  /results  → recent simulated runs and their summary
//
// Runs are recorded in the results database when one is configured;
// /results answers 503 without it.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-helper/internal/daily"
	"github.com/robalobadob/wordle/apps/go-helper/internal/player"
	"github.com/robalobadob/wordle/apps/go-helper/internal/words"
)

// mountDaily registers the simulation routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Post("/simulate", s.handleSimulate)
	r.Get("/results", s.handleResults)
}

// simulateReq/Res payloads for POST /simulate.
type simulateReq struct {
	Day      *int   `json:"day"`
	Strategy string `json:"strategy"`
}
type simulateRes struct {
	Day     int      `json:"day"`
	Date    string   `json:"date"`
	Answer  string   `json:"answer"`
	Guesses int      `json:"guesses"`
	Solved  bool     `json:"solved"`
	Path    []string `json:"path"`
}

// handleSimulate plays one day with the requested strategy.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.Day == nil {
		writeError(w, http.StatusBadRequest, "missing_day")
		return
	}
	sv, err := s.solverFor(req.Strategy)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_strategy")
		return
	}

	b := &player.Batch{Solver: sv, Answers: s.opts.Answers}
	if s.opts.Results != nil {
		b.Recorder = s.opts.Results
	}
	run, err := b.RunDay(r.Context(), *req.Day)
	if errors.Is(err, words.ErrDayOutOfRange) {
		writeError(w, http.StatusBadRequest, "day_out_of_range")
		return
	}
	if err != nil {
		log.Error().Err(err).Int("day", *req.Day).Msg("simulate")
		writeError(w, http.StatusInternalServerError, "simulate_failed")
		return
	}
	log.Info().
		Str("subject", Subject(r.Context())).
		Int("day", run.Day).
		Int("guesses", run.Count()).
		Bool("solved", run.Solved).
		Msg("simulated")

	_ = json.NewEncoder(w).Encode(simulateRes{
		Day:     run.Day,
		Date:    run.Date,
		Answer:  run.Answer,
		Guesses: run.Count(),
		Solved:  run.Solved,
		Path:    run.Guesses,
	})
}

// resultsRes payload for GET /results.
type resultsRes struct {
	Runs    []daily.Run   `json:"runs"`
	Summary daily.Summary `json:"summary"`
}

// handleResults returns the newest runs (?limit=, default 20) and the
// summary over every stored run.
func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	if s.opts.Results == nil {
		writeError(w, http.StatusServiceUnavailable, "results_disabled")
		return
	}
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "invalid_limit")
			return
		}
		limit = n
	}
	runs, err := s.opts.Results.Recent(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("recent runs")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	sum, err := s.opts.Results.Summary(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("summary")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	_ = json.NewEncoder(w).Encode(resultsRes{Runs: runs, Summary: sum})
}
