// internal/player/play.go
//
// Drivers that play a game with the solver.
// Responsibilities:
//   - Play: suggest → feedback → record, until the answer is found or the
//     solver has nothing left to suggest.
//   - Feedback sources: a known answer (automated) or a player at a prompt.
//
// Notes:
//   - Running out of suggestions is a lost game, not an error.

package player

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-helper/internal/game"
	"github.com/robalobadob/wordle/apps/go-helper/internal/solver"
)

// FeedbackSource supplies the feedback for a played guess.
type FeedbackSource interface {
	Feedback(ctx context.Context, guess string) (game.Feedback, error)
}

// AnswerSource scores guesses against a known answer.
type AnswerSource struct {
	Answer string
}

func (a AnswerSource) Feedback(_ context.Context, guess string) (game.Feedback, error) {
	return game.Evaluate(a.Answer, guess), nil
}

// Outcome summarises a finished game.
type Outcome struct {
	Guesses []string
	Won     bool
}

// Play runs g to completion. exclude lists past answers the solver must not
// suggest. The returned Outcome is valid even when err is non-nil and holds
// the guesses played so far.
func Play(ctx context.Context, s *solver.Solver, g *game.Game, src FeedbackSource, exclude []string) (Outcome, error) {
	for !g.Finished {
		if err := ctx.Err(); err != nil {
			return outcome(g), err
		}
		res, err := s.Suggest(ctx, &g.Board, exclude)
		if errors.Is(err, solver.ErrExhausted) {
			log.Debug().Str("game", g.ID).Strs("guesses", g.Guesses).Msg("no guess left")
			g.Lose()
			break
		}
		if err != nil {
			return outcome(g), err
		}
		fb, err := src.Feedback(ctx, res.Word)
		if err != nil {
			return outcome(g), fmt.Errorf("feedback for %q: %w", res.Word, err)
		}
		if err := g.Record(res.Word, fb); err != nil {
			return outcome(g), err
		}
	}
	return outcome(g), nil
}

func outcome(g *game.Game) Outcome {
	guesses := make([]string, len(g.Guesses))
	copy(guesses, g.Guesses)
	return Outcome{Guesses: guesses, Won: g.Won}
}

// Report writes the one-line result of an automated day: "day,guesses" when
// solved, otherwise the guesses that were tried.
func Report(w io.Writer, day int, o Outcome) error {
	var err error
	if o.Won {
		_, err = fmt.Fprintf(w, "%d,%d\n", day, len(o.Guesses))
	} else {
		_, err = fmt.Fprintf(w, "failed to guess word %q\n", o.Guesses)
	}
	return err
}
