// internal/solver/frequency.go
//
// Letter frequency table over the dictionary, with forced letters pinned.

package solver

import "github.com/robalobadob/wordle/apps/go-helper/internal/words"

// ForcedCount is the count pinned on a forced letter so it always ranks
// first at its position.
const ForcedCount = 200000

// Table holds per-position letter counts over a dictionary. A letter seen at
// any position of any word is listed at every position, with 0 where it never
// legally occurs.
type Table struct {
	Counts [words.Length][26]int
	Seen   [26]bool
}

// Frequencies counts letters per position across the dictionary with the
// constraint overrides applied. Excluded letters contribute nothing at the
// positions they are excluded from; forced letters are pinned to ForcedCount.
func Frequencies(dict *words.Dictionary, c Constraints) *Table {
	t := &Table{}
	for _, w := range dict.Sorted() {
		for i := 0; i < words.Length; i++ {
			l := w[i]
			t.Seen[l-'a'] = true
			switch {
			case c.ForcedAt(l, i):
				t.Counts[i][l-'a'] = ForcedCount
			case c.ExcludedAt(l, i):
			default:
				t.Counts[i][l-'a']++
			}
		}
	}
	return t
}

// Count returns the count for letter l at position i.
func (t *Table) Count(i int, l byte) int {
	return t.Counts[i][l-'a']
}
