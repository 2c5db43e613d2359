// internal/player/batch.go
//
// Automated runs over one day or every day of the answers list.
// Responsibilities:
//   - RunDay: play a day against its known answer, excluding earlier answers.
//   - RunAll: every day in order, with a progress bar and optional recording.

package player

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/wordle/apps/go-helper/internal/daily"
	"github.com/robalobadob/wordle/apps/go-helper/internal/game"
	"github.com/robalobadob/wordle/apps/go-helper/internal/solver"
	"github.com/robalobadob/wordle/apps/go-helper/internal/words"
)

// Recorder persists simulated runs. *daily.Store implements it.
type Recorder interface {
	Insert(ctx context.Context, r daily.Run) (int64, error)
}

// Batch simulates past days against their known answers.
type Batch struct {
	Solver  *solver.Solver
	Answers words.Answers

	// Out receives one result line per day from RunAll. May be nil.
	Out io.Writer
	// Progress receives the progress bar drawn by RunAll. May be nil.
	Progress io.Writer
	// Recorder, when set, stores every run. Failures are logged, not returned.
	Recorder Recorder
}

// RunDay plays day with the answers before it excluded.
func (b *Batch) RunDay(ctx context.Context, day int) (daily.Run, error) {
	answer, err := b.Answers.For(day)
	if err != nil {
		return daily.Run{}, err
	}
	g := game.New(answer)
	o, err := Play(ctx, b.Solver, g, AnswerSource{Answer: answer}, b.Answers.Past(day))
	if err != nil {
		return daily.Run{}, fmt.Errorf("day %d: %w", day, err)
	}
	run := daily.Run{
		Day:       day,
		Date:      daily.DateKey(daily.DateOf(day)),
		Answer:    answer,
		Strategy:  string(b.Solver.Strategy()),
		Guesses:   o.Guesses,
		Solved:    o.Won,
		CreatedAt: time.Now().UTC(),
	}
	if b.Recorder != nil {
		if _, err := b.Recorder.Insert(ctx, run); err != nil {
			log.Warn().Err(err).Int("day", day).Msg("record run")
		}
	}
	return run, nil
}

// RunAll plays every day in order. It stops early only when ctx is done,
// returning the runs completed so far.
func (b *Batch) RunAll(ctx context.Context) ([]daily.Run, error) {
	progress := b.Progress
	if progress == nil {
		progress = io.Discard
	}
	bar := progressbar.NewOptions(len(b.Answers),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("simulating"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	runs := make([]daily.Run, 0, len(b.Answers))
	for day := range b.Answers {
		run, err := b.RunDay(ctx, day)
		if err != nil {
			return runs, err
		}
		runs = append(runs, run)
		if b.Out != nil {
			if err := Report(b.Out, day, Outcome{Guesses: run.Guesses, Won: run.Solved}); err != nil {
				return runs, err
			}
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	log.Info().Int("days", len(runs)).Str("strategy", string(b.Solver.Strategy())).Msg("batch finished")
	return runs, nil
}
