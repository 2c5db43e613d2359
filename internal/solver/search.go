// internal/solver/search.go
//
// Rotation engine and the candidate validator.
// Notes:
//   - Rotation is capped at Π len(list) and falls back to a dictionary sweep.
//   - Long searches honour context cancellation.

package solver

import (
	"context"
	"errors"
	"math"

	"github.com/robalobadob/wordle/apps/go-helper/internal/game"
	"github.com/robalobadob/wordle/apps/go-helper/internal/words"
)

// ErrExhausted is returned when no valid guess is left.
var ErrExhausted = errors.New("solver: no guess available")

// Request is the input of Search and Score.
type Request struct {
	Dictionary  *words.Dictionary
	Lists       Lists
	Constraints Constraints
	Board       *game.Board
	// Exclude lists past answers that must not be suggested.
	Exclude []string
}

// Result describes a found guess.
type Result struct {
	Word string
	// Iterations counts rotations performed before the word was found.
	Iterations int
	// Swept is set when rotation ran out and the dictionary sweep found Word.
	Swept bool
}

// Search assembles candidates from the best-ranked letter at each position
// and rotates one position at a time until a valid word appears.
//
// The position rotated is the one whose current entry has the smallest
// distance, lowest index first. After rotating position m, every other
// position that has moved at least as often as m goes back to its best letter.
// The movement counters keep two positions from pushing each other back to
// their optimum forever.
//
// Rotation stops when a position runs off its list or after Π len(list)
// rotations. A sweep of the dictionary then returns the valid word with the
// lowest summed distance, so a valid word is always found if one exists.
func Search(req Request) (Result, error) {
	return SearchContext(context.Background(), req)
}

// ctxCheckEvery is how many rotations run between context checks.
const ctxCheckEvery = 1024

// SearchContext is Search with cancellation. It returns ctx.Err() if ctx is
// done before a word is found.
func SearchContext(ctx context.Context, req Request) (Result, error) {
	v := newValidator(req)
	limit := rotationLimit(req.Lists)

	var (
		grab     [words.Length]int
		movement [words.Length]int
		cand     [words.Length]byte
		res      Result
	)
	for res.Iterations < limit {
		if res.Iterations%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		if !inRange(req.Lists, grab) {
			break
		}
		for i := range cand {
			cand[i] = req.Lists[i][grab[i]].Letter
		}
		if v.valid(string(cand[:])) {
			res.Word = string(cand[:])
			return res, nil
		}

		m := 0
		for i := 1; i < words.Length; i++ {
			if req.Lists[i][grab[i]].Distance < req.Lists[m][grab[m]].Distance {
				m = i
			}
		}
		grab[m]++
		movement[m]++
		for j := range grab {
			if j != m && movement[j] >= movement[m] {
				grab[j] = 0
			}
		}
		res.Iterations++
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	w, ok := sweep(req, v)
	if !ok {
		return res, ErrExhausted
	}
	res.Word, res.Swept = w, true
	return res, nil
}

func inRange(lists Lists, grab [words.Length]int) bool {
	for i := range grab {
		if grab[i] >= len(lists[i]) {
			return false
		}
	}
	return true
}

// rotationLimit is the product of the list lengths, saturating at MaxInt.
func rotationLimit(lists Lists) int {
	n := 1
	for _, l := range lists {
		if len(l) == 0 {
			return 0
		}
		if n > math.MaxInt/len(l) {
			return math.MaxInt
		}
		n *= len(l)
	}
	return n
}

// sweep scans the dictionary in order and keeps the valid word with the
// lowest distance sum; ties go to the earlier word.
func sweep(req Request, v *validator) (string, bool) {
	best, bestScore := "", 0
	for _, w := range req.Dictionary.Sorted() {
		if !v.valid(w) {
			continue
		}
		s := wordDistance(req.Lists, w)
		if best == "" || s < bestScore {
			best, bestScore = w, s
		}
	}
	return best, best != ""
}

// validator decides whether a candidate may be suggested.
type validator struct {
	dict     *words.Dictionary
	c        Constraints
	board    *game.Board
	excluded map[string]struct{}
}

func newValidator(req Request) *validator {
	ex := make(map[string]struct{}, len(req.Exclude))
	for _, w := range req.Exclude {
		ex[w] = struct{}{}
	}
	return &validator{dict: req.Dictionary, c: req.Constraints, board: req.Board, excluded: ex}
}

func (v *validator) valid(w string) bool {
	if !v.dict.Contains(w) {
		return false
	}
	if _, ok := v.excluded[w]; ok {
		return false
	}
	return v.c.Allows(w) && !v.board.Has(w)
}
