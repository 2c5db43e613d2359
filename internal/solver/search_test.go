package solver

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/robalobadob/wordle/apps/go-helper/internal/game"
	"github.com/robalobadob/wordle/apps/go-helper/internal/words"
)

func request(dict *words.Dictionary, b *game.Board, exclude ...string) Request {
	c := Extract(b)
	return Request{
		Dictionary:  dict,
		Lists:       RankAll(Frequencies(dict, c)),
		Constraints: c,
		Board:       b,
		Exclude:     exclude,
	}
}

func TestSearchFirstGuessFixture(t *testing.T) {
	is := is.New(t)
	dict := words.NewDictionary([]string{"crane", "slate", "trace"})

	// "crace" and "srace" are rejected before position 0 reaches t.
	res, err := Search(request(dict, &game.Board{}))
	is.NoErr(err)
	is.Equal(res.Word, "trace")
	is.Equal(res.Iterations, 2)
	is.True(!res.Swept)
}

func TestSearchSkipsExcludedAnswers(t *testing.T) {
	is := is.New(t)
	dict := words.NewDictionary([]string{"crane", "slate", "trace"})

	// Rotating position 3 resets position 0, which moved more often.
	res, err := Search(request(dict, &game.Board{}, "trace"))
	is.NoErr(err)
	is.Equal(res.Word, "crane")
	is.Equal(res.Iterations, 3)
}

func TestSearchSkipsGuessedWords(t *testing.T) {
	is := is.New(t)
	dict := words.NewDictionary([]string{"crane", "slate", "trace"})
	res, err := Search(request(dict, boardOf(t, "trace", "02212")))
	is.NoErr(err)
	is.Equal(res.Word, "crane")
}

func TestSearchNeverUsesAbsentLetters(t *testing.T) {
	is := is.New(t)
	dict, err := words.LoadDictionary("")
	is.NoErr(err)
	b := boardOf(t, "slate", "00000")
	req := request(dict, b)

	for i := 0; i < words.Length; i++ {
		for _, l := range []byte("slate") {
			is.Equal(Frequencies(dict, req.Constraints).Count(i, l), 0)
		}
	}

	res, err := Search(req)
	is.NoErr(err)
	is.Equal(res.Word, "wound")
	is.True(!strings.ContainsAny(res.Word, "slate"))
}

func TestSearchImpossibleRequiredExhausts(t *testing.T) {
	is := is.New(t)
	dict := words.NewDictionary([]string{"crane", "slate", "trace"})
	req := request(dict, &game.Board{})
	req.Constraints.Required = []byte("qz")

	res, err := Search(req)
	is.True(errors.Is(err, ErrExhausted))
	is.Equal(res.Word, "")
}

func TestSearchEveryLetterAbsentExhausts(t *testing.T) {
	is := is.New(t)
	dict := words.NewDictionary([]string{"crane", "slate", "trace"})
	_, err := Search(request(dict, boardOf(t, "crane", "00000")))
	is.True(errors.Is(err, ErrExhausted))
}

func TestSearchEmptyDictionary(t *testing.T) {
	is := is.New(t)
	_, err := Search(request(words.NewDictionary(nil), &game.Board{}))
	is.True(errors.Is(err, ErrExhausted))
}

func TestRotationLimit(t *testing.T) {
	is := is.New(t)
	var lists Lists
	for i := range lists {
		lists[i] = make(DistanceList, i+1)
	}
	is.Equal(rotationLimit(lists), 1*2*3*4*5)

	for i := range lists {
		lists[i] = make(DistanceList, 1<<13)
	}
	is.Equal(rotationLimit(lists), math.MaxInt) // saturates
}

// randomGame builds a dictionary over a small alphabet and a board of up to
// three guesses scored against one of its words.
func randomGame(rng *rand.Rand) (*words.Dictionary, *game.Board, []string) {
	var list []string
	for n := 1 + rng.Intn(30); n > 0; n-- {
		list = append(list, randomWord(rng, "abcdef"))
	}
	dict := words.NewDictionary(list)
	all := dict.Sorted()
	answer := all[rng.Intn(len(all))]

	b := &game.Board{}
	for g := rng.Intn(4); g > 0; g-- {
		guess := all[rng.Intn(len(all))]
		_ = b.Add(guess, game.Evaluate(answer, guess))
	}
	var exclude []string
	for n := rng.Intn(3); n > 0; n-- {
		exclude = append(exclude, all[rng.Intn(len(all))])
	}
	return dict, b, exclude
}

func TestSearchTerminatesWithinProductOfListLengths(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 1000; trial++ {
		dict, b, exclude := randomGame(rng)
		req := request(dict, b, exclude...)
		res, _ := Search(req)
		if limit := rotationLimit(req.Lists); res.Iterations > limit {
			t.Fatalf("trial %d: %d rotations, limit %d", trial, res.Iterations, limit)
		}
	}
}

func TestSearchFindsAValidWordWhenOneExists(t *testing.T) {
	rng := rand.New(rand.NewSource(1234))
	for trial := 0; trial < 1000; trial++ {
		dict, b, exclude := randomGame(rng)
		req := request(dict, b, exclude...)
		v := newValidator(req)

		exists := false
		for _, w := range dict.Sorted() {
			if v.valid(w) {
				exists = true
				break
			}
		}

		res, err := Search(req)
		switch {
		case exists && err != nil:
			t.Fatalf("trial %d: valid word exists but search returned %v", trial, err)
		case !exists && !errors.Is(err, ErrExhausted):
			t.Fatalf("trial %d: no valid word but search returned %q", trial, res.Word)
		case exists && !v.valid(res.Word):
			t.Fatalf("trial %d: search returned invalid %q", trial, res.Word)
		}
	}
}
