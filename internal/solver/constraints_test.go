package solver

import (
	"math/rand"
	"testing"

	"github.com/matryer/is"

	"github.com/robalobadob/wordle/apps/go-helper/internal/game"
)

func boardOf(t *testing.T, pairs ...string) *game.Board {
	t.Helper()
	b := &game.Board{}
	for i := 0; i+1 < len(pairs); i += 2 {
		fb, err := game.ParseFeedback(pairs[i+1])
		if err != nil {
			t.Fatal(err)
		}
		if err := b.Add(pairs[i], fb); err != nil {
			t.Fatal(err)
		}
	}
	return b
}

func TestExtractMarks(t *testing.T) {
	is := is.New(t)
	c := Extract(boardOf(t, "crane", "02100"))

	is.Equal(c.Excluded['c'], Everywhere)
	is.Equal(c.Excluded['n'], Everywhere)
	is.Equal(c.Excluded['e'], Everywhere)
	is.Equal(c.Excluded['a'], at(2))
	is.Equal(c.Forced['r'], at(1))
	is.Equal(string(c.Required), "a")

	is.True(c.ExcludedAt('c', 4))
	is.True(c.ExcludedAt('a', 2))
	is.True(!c.ExcludedAt('a', 0))
	is.True(c.ForcedAt('r', 1))
	is.True(!c.ForcedAt('r', 0))
}

func TestExtractEmptyBoard(t *testing.T) {
	is := is.New(t)
	c := Extract(&game.Board{})
	is.Equal(len(c.Excluded), 0)
	is.Equal(len(c.Forced), 0)
	is.Equal(len(c.Required), 0)
	is.True(c.Allows("crane"))

	c = Extract(nil)
	is.Equal(len(c.Required), 0)
}

func TestExtractAbsentCopyOfForcedLetter(t *testing.T) {
	is := is.New(t)
	// One e is correct, the other two copies were reported absent.
	c := Extract(boardOf(t, "eerie", "02000"))

	is.Equal(c.Forced['e'], at(1))
	is.Equal(c.Excluded['e'], at(0)|at(4))
	is.True(c.Excluded['e']&Everywhere == 0)
	is.Equal(c.Excluded['r'], Everywhere)
}

func TestExtractRequiredUntilPinned(t *testing.T) {
	is := is.New(t)
	c := Extract(boardOf(t, "slate", "10000"))
	is.Equal(string(c.Required), "s")

	c = Extract(boardOf(t, "slate", "10000", "sissy", "20000"))
	is.Equal(len(c.Required), 0)
	is.Equal(c.Forced['s'], at(0))
	// s was absent in "sissy" at 2 and 3 but is forced, so only those
	// positions are excluded along with the present mark at 0.
	is.Equal(c.Excluded['s'], at(0)|at(2)|at(3))
}

func TestExtractRequiredDeduplicated(t *testing.T) {
	is := is.New(t)
	c := Extract(boardOf(t, "trace", "01100", "rates", "10000"))
	is.Equal(string(c.Required), "ra")
}

func TestExtractIdempotent(t *testing.T) {
	is := is.New(t)
	b := boardOf(t, "crane", "02100", "slate", "00200", "eerie", "02000")
	is.Equal(Extract(b), Extract(b))
}

func TestConstraintsAllows(t *testing.T) {
	is := is.New(t)
	c := Extract(boardOf(t, "crane", "02100"))
	is.True(!c.Allows("crane")) // c excluded
	is.True(!c.Allows("brand")) // a at its excluded slot, n excluded
	is.True(!c.Allows("tribe")) // missing a, has e
	is.True(!c.Allows("ratio")) // r not at 1
	is.True(c.Allows("triad"))
}

func TestExtractInvariantsRandomBoards(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 500; trial++ {
		b := &game.Board{}
		for g := 0; g < 1+rng.Intn(4); g++ {
			w := randomWord(rng, "abcdefg")
			var fb game.Feedback
			for i := range fb {
				fb[i] = game.Mark(rng.Intn(3))
			}
			_ = b.Add(w, fb)
		}
		c := Extract(b)
		for l, p := range c.Excluded {
			if p&Everywhere != 0 && c.Forced[l] != 0 {
				t.Fatalf("trial %d: %q excluded everywhere and forced", trial, l)
			}
		}
		for _, e := range b.Entries() {
			for i, m := range e.Feedback {
				if m == game.MarkCorrect && !c.ForcedAt(e.Guess[i], i) {
					t.Fatalf("trial %d: correct %q at %d not forced", trial, e.Guess[i], i)
				}
			}
		}
		for _, l := range c.Required {
			if c.Forced[l] != 0 {
				t.Fatalf("trial %d: required %q is already forced", trial, l)
			}
		}
	}
}

func randomWord(rng *rand.Rand, alphabet string) string {
	b := make([]byte, 5)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}
