// internal/game/types.go
//
// Core type definitions for a helper game.
// Defines:
//   - Mark: per-letter feedback code (absent/present/correct).
//   - Feedback: one Mark per position of a guess.
//   - Board: append-only history of guesses and their feedback.
//   - Game: state for a single solved or in-progress game.

package game

import (
	"errors"
	"strings"

	"github.com/robalobadob/wordle/apps/go-helper/internal/words"
)

// Mark represents the evaluation result for a single letter in a guess.
// The numeric values are the codes typed by the player:
//   - 0 absent:  letter does not occur in the answer.
//   - 1 present: letter occurs in the answer at another position.
//   - 2 correct: letter is in the correct position.
type Mark uint8

const (
	MarkAbsent Mark = iota
	MarkPresent
	MarkCorrect
)

func (m Mark) String() string {
	switch m {
	case MarkAbsent:
		return "absent"
	case MarkPresent:
		return "present"
	case MarkCorrect:
		return "correct"
	}
	return "invalid"
}

// Feedback is the per-position result for one guess.
type Feedback [words.Length]Mark

// Solved reports whether every position is correct.
func (f Feedback) Solved() bool {
	for _, m := range f {
		if m != MarkCorrect {
			return false
		}
	}
	return true
}

// String renders the feedback as digits, e.g. "00120".
func (f Feedback) String() string {
	var b strings.Builder
	for _, m := range f {
		b.WriteByte('0' + byte(m))
	}
	return b.String()
}

// Entry is a single guess and the feedback it received.
type Entry struct {
	Guess    string
	Feedback Feedback
}

// ErrAlreadyGuessed is returned when a word is added to a board twice.
var ErrAlreadyGuessed = errors.New("game: word already guessed")

// Board is the append-only record of every guess made in a game. The zero
// value is an empty board ready to use.
type Board struct {
	entries []Entry
	index   map[string]int
}

// Add appends a guess. Entries are never replaced.
func (b *Board) Add(guess string, fb Feedback) error {
	if b.index == nil {
		b.index = make(map[string]int)
	}
	if _, ok := b.index[guess]; ok {
		return ErrAlreadyGuessed
	}
	b.index[guess] = len(b.entries)
	b.entries = append(b.entries, Entry{Guess: guess, Feedback: fb})
	return nil
}

// Entries returns the history in insertion order. A nil board is empty.
func (b *Board) Entries() []Entry {
	if b == nil {
		return nil
	}
	return b.entries
}

// Len returns the number of guesses recorded.
func (b *Board) Len() int { return len(b.Entries()) }

// Has reports whether w was already guessed.
func (b *Board) Has(w string) bool {
	if b == nil {
		return false
	}
	_, ok := b.index[w]
	return ok
}

// Lookup returns the feedback recorded for w.
func (b *Board) Lookup(w string) (Feedback, bool) {
	if b == nil {
		return Feedback{}, false
	}
	i, ok := b.index[w]
	if !ok {
		return Feedback{}, false
	}
	return b.entries[i].Feedback, true
}

// Game holds the state of a single helper game.
type Game struct {
	ID       string   // Unique game identifier (random hex string).
	Answer   string   // Known answer for simulated play; empty when interactive.
	Guesses  []string // Every suggestion played, in order.
	Board    Board    // Guesses with their feedback.
	Finished bool     // True once the game is over (won or lost).
	Won      bool     // True if the answer was found.
}
