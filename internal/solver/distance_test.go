package solver

import (
	"math/rand"
	"testing"

	"github.com/matryer/is"

	"github.com/robalobadob/wordle/apps/go-helper/internal/words"
)

func distances(d DistanceList) []int {
	out := make([]int, len(d))
	for i, r := range d {
		out[i] = r.Distance
	}
	return out
}

const U = Unselectable

func TestFrequenciesCounts(t *testing.T) {
	is := is.New(t)
	dict := words.NewDictionary([]string{"crane", "slate", "trace"})
	tab := Frequencies(dict, Extract(nil))

	is.Equal(tab.Count(0, 'c'), 1)
	is.Equal(tab.Count(0, 's'), 1)
	is.Equal(tab.Count(1, 'r'), 2)
	is.Equal(tab.Count(2, 'a'), 3)
	is.Equal(tab.Count(4, 'e'), 3)
	is.Equal(tab.Count(4, 'c'), 0)

	seen := 0
	for _, s := range tab.Seen {
		if s {
			seen++
		}
	}
	is.Equal(seen, 8) // a c e l n r s t
}

func TestFrequenciesOverrides(t *testing.T) {
	is := is.New(t)
	dict := words.NewDictionary([]string{"crane", "slate", "trace", "crate"})
	// a correct at 2, c present at 0, t absent.
	c := Extract(boardOf(t, "chart", "10200"))
	tab := Frequencies(dict, c)

	is.Equal(tab.Count(2, 'a'), ForcedCount)
	is.Equal(tab.Count(0, 'c'), 0)
	is.Equal(tab.Count(3, 'c'), 1) // trace
	for i := 0; i < words.Length; i++ {
		is.Equal(tab.Count(i, 't'), 0)
	}
	is.True(tab.Seen['t'-'a'])
}

func TestRankPositionFixture(t *testing.T) {
	is := is.New(t)
	dict := words.NewDictionary([]string{"crane", "slate", "trace"})
	lists := RankAll(Frequencies(dict, Extract(nil)))

	is.Equal(lists[0].Letters(), "cstaelnr")
	is.Equal(distances(lists[0]), []int{0, 0, 1, U, U, U, U, U, U})
	is.Equal(lists[1].Letters(), "rlacenst")
	is.Equal(distances(lists[1]), []int{1, 2, U, U, U, U, U, U, U})
	is.Equal(lists[2].Letters(), "acelnrst")
	is.Equal(distances(lists[2]), []int{3, U, U, U, U, U, U, U, U})
	is.Equal(lists[3].Letters(), "cntaelrs")
	is.Equal(lists[4].Letters(), "eaclnrst")

	last := lists[0][len(lists[0])-1]
	is.Equal(last.Letter, byte(Terminator))
	is.Equal(last.Distance, U)
}

func TestRankPositionEmptyDictionary(t *testing.T) {
	is := is.New(t)
	lists := RankAll(Frequencies(words.NewDictionary(nil), Extract(nil)))
	for _, l := range lists {
		is.Equal(len(l), 1)
		is.Equal(l[0].Distance, U)
	}
}

func TestRankPositionForcedLetterFirst(t *testing.T) {
	is := is.New(t)
	dict := words.NewDictionary([]string{"crane", "slate", "trace", "ulcer"})
	c := Extract(boardOf(t, "ulcer", "20000"))
	lists := RankAll(Frequencies(dict, c))
	is.Equal(lists[0][0].Letter, byte('u'))
	is.Equal(lists[0][0].Count, ForcedCount)
}

func TestRankPositionProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 200; trial++ {
		var list []string
		for n := rng.Intn(40); n >= 0; n-- {
			list = append(list, randomWord(rng, "abcdefghij"))
		}
		dict := words.NewDictionary(list)
		tab := Frequencies(dict, Extract(nil))
		for i, d := range RankAll(tab) {
			distinct := 0
			for l := 0; l < 26; l++ {
				if tab.Counts[i][l] > 0 {
					distinct++
				}
			}
			if len(d) < distinct+1 {
				t.Fatalf("trial %d pos %d: %d entries for %d letters", trial, i, len(d), distinct)
			}
			for k := range d {
				if k > 0 && d[k].Count > d[k-1].Count {
					t.Fatalf("trial %d pos %d: counts not descending at %d", trial, i, k)
				}
				if (k == len(d)-1 || d[k].Count == 0) && d[k].Distance != U {
					t.Fatalf("trial %d pos %d: entry %d should be unselectable", trial, i, k)
				}
				if d[k].Count > 0 && k < len(d)-1 && d[k].Distance != d[0].Count-d[k+1].Count {
					t.Fatalf("trial %d pos %d: entry %d distance %d", trial, i, k, d[k].Distance)
				}
			}
		}
	}
}
