// internal/solver/scorer.go
//
// Whole-word scoring and the per-round letter suggestion.

package solver

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/robalobadob/wordle/apps/go-helper/internal/words"
)

// ScoreOptions tunes Score.
type ScoreOptions struct {
	// Letters, when set, replaces the board's required letters.
	Letters []byte
}

type scored struct {
	word  string
	score int
}

// Score ranks every dictionary word by the sum of its letters' distances and
// returns the lowest that contains every required letter. On the first guess
// words with a repeated letter are skipped. A letter missing from a position's
// list costs nothing.
func Score(req Request, opts ScoreOptions) (string, error) {
	required := req.Constraints.Required
	if len(opts.Letters) > 0 {
		required = opts.Letters
	}
	firstGuess := req.Board.Len() == 0

	ranked := lo.FilterMap(req.Dictionary.Sorted(), func(w string, _ int) (scored, bool) {
		return scored{word: w, score: wordDistance(req.Lists, w)}, w != ""
	})
	sort.SliceStable(ranked, func(a, b int) bool { return ranked[a].score < ranked[b].score })

	for _, s := range ranked {
		if !containsAll(s.word, required) {
			continue
		}
		if firstGuess && hasRepeat(s.word) {
			continue
		}
		if req.Board.Has(s.word) {
			continue
		}
		return s.word, nil
	}
	return "", ErrExhausted
}

// wordDistance sums the distance of each letter at its position.
func wordDistance(lists Lists, w string) int {
	total := 0
	for i := 0; i < words.Length; i++ {
		total += lists[i].DistanceOf(w[i])
	}
	return total
}

func hasRepeat(w string) bool {
	var seen [26]bool
	for i := 0; i < len(w); i++ {
		if seen[w[i]-'a'] {
			return true
		}
		seen[w[i]-'a'] = true
	}
	return false
}

// SuggestLetters returns the five letters ranked round*5 through round*5+4 by
// how often they occur anywhere in the dictionary. Equal counts are ordered
// by letter.
func SuggestLetters(dict *words.Dictionary, round int) ([]byte, error) {
	var counts [26]int
	for _, w := range dict.Sorted() {
		for i := 0; i < len(w); i++ {
			counts[w[i]-'a']++
		}
	}
	letters := lo.Filter(lo.Range(26), func(l int, _ int) bool { return counts[l] > 0 })
	sort.SliceStable(letters, func(a, b int) bool { return counts[letters[a]] > counts[letters[b]] })

	start := round * words.Length
	if round < 0 || start+words.Length > len(letters) {
		return nil, fmt.Errorf("solver: round %d needs letters %d..%d, dictionary has %d distinct", round, start, start+words.Length-1, len(letters))
	}
	return lo.Map(letters[start:start+words.Length], func(l int, _ int) byte { return byte('a' + l) }), nil
}
