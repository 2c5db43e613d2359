// internal/daily/store.go
//
// SQLite persistence for simulated runs.

package daily

import (
	"context"
	"database/sql"
	"embed"
	"strings"
	"time"
)

// Migrations holds the schema for the results store, applied in file order.
//
//go:embed sql/*.sql
var Migrations embed.FS

// MaxGuesses is the number of guesses a real game allows. Runs that took
// longer are counted as failures in summaries.
const MaxGuesses = 6

// Run is the outcome of one simulated day.
type Run struct {
	ID        int64     `json:"id" yaml:"-"`
	Day       int       `json:"day" yaml:"day"`
	Date      string    `json:"date" yaml:"date"`
	Answer    string    `json:"answer" yaml:"answer"`
	Strategy  string    `json:"strategy" yaml:"strategy"`
	Guesses   []string  `json:"path" yaml:"path,flow"`
	Solved    bool      `json:"solved" yaml:"solved"`
	CreatedAt time.Time `json:"createdAt" yaml:"-"`
}

// Count is the number of guesses played.
func (r Run) Count() int { return len(r.Guesses) }

// counted reports whether r contributes to the average.
func (r Run) counted() bool { return r.Solved && r.Count() <= MaxGuesses }

// Summary aggregates runs: the average guess count over games solved within
// MaxGuesses, and how many were not.
type Summary struct {
	Runs           int     `json:"runs" yaml:"runs"`
	Solved         int     `json:"solved" yaml:"solved"`
	Failed         int     `json:"failed" yaml:"failed"`
	AverageGuesses float64 `json:"averageGuesses" yaml:"average_guesses"`
}

// Summarize computes a Summary from in-memory runs.
func Summarize(runs []Run) Summary {
	var s Summary
	total := 0
	for _, r := range runs {
		s.Runs++
		if r.counted() {
			s.Solved++
			total += r.Count()
		} else {
			s.Failed++
		}
	}
	if s.Solved > 0 {
		s.AverageGuesses = float64(total) / float64(s.Solved)
	}
	return s
}

// Store persists runs in the runs table.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Insert stores r and returns its row id. A zero CreatedAt is set to now.
func (s *Store) Insert(ctx context.Context, r Run) (int64, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	if r.Date == "" {
		r.Date = DateKey(DateOf(r.Day))
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs(day, date, answer, strategy, guesses, path, solved, created_at)
		VALUES(?,?,?,?,?,?,?,?)`,
		r.Day, r.Date, r.Answer, r.Strategy, r.Count(), strings.Join(r.Guesses, " "),
		r.Solved, r.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Recent returns up to limit runs, newest first. limit <= 0 selects 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, day, date, answer, strategy, path, solved, created_at
		FROM runs
		ORDER BY id DESC
		LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Run, 0, limit)
	for rows.Next() {
		var (
			r       Run
			path    string
			created string
		)
		if err := rows.Scan(&r.ID, &r.Day, &r.Date, &r.Answer, &r.Strategy, &path, &r.Solved, &created); err != nil {
			return nil, err
		}
		r.Guesses = strings.Fields(path)
		r.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Summary aggregates every stored run the same way Summarize does.
func (s *Store) Summary(ctx context.Context) (Summary, error) {
	var sum Summary
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1),
			COALESCE(SUM(CASE WHEN solved = 1 AND guesses <= ? THEN 1 ELSE 0 END), 0),
			COALESCE(AVG(CASE WHEN solved = 1 AND guesses <= ? THEN guesses END), 0.0)
		FROM runs`, MaxGuesses, MaxGuesses,
	).Scan(&sum.Runs, &sum.Solved, &sum.AverageGuesses)
	if err != nil {
		return Summary{}, err
	}
	sum.Failed = sum.Runs - sum.Solved
	return sum, nil
}
