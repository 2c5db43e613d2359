// internal/solver/constraints.go
//
// Constraint extraction: folds a board into excluded/forced positions and
// the ordered required letters.

// Package solver picks the next guess from a dictionary and the feedback
// gathered so far.
//
// A round runs Extract → Frequencies → RankAll and then either Search (the
// rotation engine) or Score (whole-word scoring).
package solver

import (
	"github.com/samber/lo"

	"github.com/robalobadob/wordle/apps/go-helper/internal/game"
	"github.com/robalobadob/wordle/apps/go-helper/internal/words"
)

// Positions is a bit set of word positions. Bit i is position i.
type Positions uint8

// Everywhere marks a letter that must not appear at any position.
const Everywhere Positions = 1 << 7

func at(i int) Positions { return 1 << uint(i) }

// Has reports whether position i is in the set, either directly or through
// Everywhere.
func (p Positions) Has(i int) bool { return p&Everywhere != 0 || p&at(i) != 0 }

// Constraints are derived from a board every round.
type Constraints struct {
	// Excluded maps a letter to the positions it must not occupy.
	Excluded map[byte]Positions
	// Forced maps a letter to the positions where it is confirmed.
	Forced map[byte]Positions
	// Required holds letters known to be in the answer but not yet pinned to
	// a position, in first-seen order.
	Required []byte
}

// Extract folds a board's history into constraint sets.
//
//   - absent  → letter excluded everywhere
//   - present → letter excluded at that position and required
//   - correct → letter forced at that position
//
// A letter that is forced or required never keeps the Everywhere flag: its
// absent marks only exclude the positions they were seen at. Real feedback
// marks a surplus copy of a letter absent while another copy is correct.
func Extract(board *game.Board) Constraints {
	c := Constraints{
		Excluded: make(map[byte]Positions),
		Forced:   make(map[byte]Positions),
	}
	absentAt := make(map[byte]Positions)
	var present []byte
	for _, e := range board.Entries() {
		for i := 0; i < words.Length; i++ {
			l := e.Guess[i]
			switch e.Feedback[i] {
			case game.MarkAbsent:
				c.Excluded[l] |= Everywhere
				absentAt[l] |= at(i)
			case game.MarkPresent:
				c.Excluded[l] |= at(i)
				present = append(present, l)
			case game.MarkCorrect:
				c.Forced[l] |= at(i)
			}
		}
	}
	present = lo.Uniq(present)
	for l, p := range c.Excluded {
		if p&Everywhere == 0 {
			continue
		}
		if c.Forced[l] != 0 || lo.Contains(present, l) {
			c.Excluded[l] = (p &^ Everywhere) | absentAt[l]
		}
	}
	c.Required = lo.Filter(present, func(l byte, _ int) bool { return c.Forced[l] == 0 })
	return c
}

// ExcludedAt reports whether letter l may not occupy position i.
func (c Constraints) ExcludedAt(l byte, i int) bool {
	return c.Excluded[l].Has(i)
}

// ForcedAt reports whether letter l is confirmed at position i.
func (c Constraints) ForcedAt(l byte, i int) bool {
	return c.Forced[l]&at(i) != 0
}

// Allows reports whether w respects every excluded and forced position and
// contains every required letter.
func (c Constraints) Allows(w string) bool {
	for i := 0; i < words.Length; i++ {
		if c.ExcludedAt(w[i], i) {
			return false
		}
	}
	for l, p := range c.Forced {
		for i := 0; i < words.Length; i++ {
			if p&at(i) != 0 && w[i] != l {
				return false
			}
		}
	}
	return containsAll(w, c.Required)
}

func containsAll(w string, letters []byte) bool {
	for _, l := range letters {
		if !containsByte(w, l) {
			return false
		}
	}
	return true
}

func containsByte(w string, l byte) bool {
	for i := 0; i < len(w); i++ {
		if w[i] == l {
			return true
		}
	}
	return false
}
