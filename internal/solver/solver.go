// internal/solver/solver.go
//
// Solver entry point: strategy selection and one suggestion per round.

package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-helper/internal/game"
	"github.com/robalobadob/wordle/apps/go-helper/internal/words"
)

// Strategy selects how a round picks its word.
type Strategy string

const (
	// StrategyRotation uses the rotation engine (Search).
	StrategyRotation Strategy = "rotation"
	// StrategyScore uses whole-word scoring with the board's required letters.
	StrategyScore Strategy = "score"
	// StrategyLetters uses whole-word scoring, requiring the five most
	// frequent letters not yet covered by earlier rounds.
	StrategyLetters Strategy = "letters"
)

// ParseStrategy validates a strategy name. Empty selects rotation.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategyRotation:
		return StrategyRotation, nil
	case StrategyScore, StrategyLetters:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("solver: unknown strategy %q", s)
}

// Solver suggests guesses from a fixed dictionary.
type Solver struct {
	dict     *words.Dictionary
	strategy Strategy
}

// New returns a Solver over dict.
func New(dict *words.Dictionary, strategy Strategy) *Solver {
	if strategy == "" {
		strategy = StrategyRotation
	}
	return &Solver{dict: dict, strategy: strategy}
}

// Strategy returns the configured strategy.
func (s *Solver) Strategy() Strategy { return s.strategy }

// Suggest runs one round for board. exclude lists past answers that must not
// be suggested. It returns ErrExhausted when nothing valid is left, and
// ctx.Err() when ctx ends first.
func (s *Solver) Suggest(ctx context.Context, board *game.Board, exclude []string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if board == nil {
		board = &game.Board{}
	}
	c := Extract(board)
	req := Request{
		Dictionary:  s.dict,
		Lists:       RankAll(Frequencies(s.dict, c)),
		Constraints: c,
		Board:       board,
		Exclude:     exclude,
	}

	var (
		res Result
		err error
	)
	switch s.strategy {
	case StrategyScore:
		res.Word, err = Score(req, ScoreOptions{})
	case StrategyLetters:
		opts := ScoreOptions{}
		if letters, lerr := SuggestLetters(s.dict, board.Len()); lerr == nil {
			opts.Letters = letters
		}
		res.Word, err = Score(req, opts)
		if errors.Is(err, ErrExhausted) && len(opts.Letters) > 0 {
			res.Word, err = Score(req, ScoreOptions{})
		}
	default:
		res, err = SearchContext(ctx, req)
	}

	log.Debug().
		Str("strategy", string(s.strategy)).
		Int("round", board.Len()+1).
		Str("required", string(c.Required)).
		Strs("ranked", rankedLetters(req.Lists)).
		Str("guess", res.Word).
		Int("iterations", res.Iterations).
		Bool("swept", res.Swept).
		Err(err).
		Msg("suggest")
	return res, err
}

func rankedLetters(lists Lists) []string {
	out := make([]string, len(lists))
	for i, l := range lists {
		out[i] = l.Letters()
	}
	return out
}
