// internal/game/engine.go
//
// Game engine for a single helper session.
// Responsibilities:
//   - Create games, optionally with a known answer for simulated play.
//   - Evaluate guesses against a known answer.
//   - Parse feedback typed by a player ("00120").
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Evaluate uses a naive membership check; see its doc comment.
//   - randomID() is a compact hex identifier for correlating sessions.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/go-helper/internal/words"
)

var (
	// ErrInvalidFeedback is returned for feedback lines that are not exactly
	// words.Length digits in 0..2.
	ErrInvalidFeedback = errors.New("game: invalid feedback")

	// ErrGameFinished is returned when recording into a finished game.
	ErrGameFinished = errors.New("game: game finished")
)

// New constructs a new game. answer may be empty for interactive play.
func New(answer string) *Game {
	return &Game{
		ID:      randomID(),
		Answer:  strings.ToLower(answer),
		Guesses: []string{},
	}
}

// Record applies feedback for a played guess.
//
// State transitions:
//   - All positions correct → Finished = true, Won = true.
func (g *Game) Record(guess string, fb Feedback) error {
	if g.Finished {
		return ErrGameFinished
	}
	if err := g.Board.Add(guess, fb); err != nil {
		return err
	}
	g.Guesses = append(g.Guesses, guess)
	if fb.Solved() {
		g.Finished, g.Won = true, true
	}
	return nil
}

// Clone returns a deep copy of g.
func (g *Game) Clone() *Game {
	c := *g
	c.Guesses = append([]string{}, g.Guesses...)
	c.Board = Board{}
	for _, e := range g.Board.Entries() {
		_ = c.Board.Add(e.Guess, e.Feedback)
	}
	return &c
}

// Lose ends the game without a win, e.g. when no guess is left to suggest.
func (g *Game) Lose() {
	g.Finished = true
	g.Won = false
}

// State reports a coarse string representation of the current game state.
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// Evaluate scores guess against answer.
//
// Per position: correct if the letters match, else present if the answer
// contains the letter anywhere, else absent. Repeated letters are not
// capped by the answer's letter counts, so a guess with two copies of a
// letter that occurs once in the answer can get present twice.
func Evaluate(answer, guess string) Feedback {
	if len(answer) != words.Length || len(guess) != words.Length {
		panic(fmt.Sprintf("game: evaluate %q against %q: want %d letters", guess, answer, words.Length))
	}
	var fb Feedback
	for i := 0; i < words.Length; i++ {
		switch {
		case guess[i] == answer[i]:
			fb[i] = MarkCorrect
		case strings.IndexByte(answer, guess[i]) >= 0:
			fb[i] = MarkPresent
		default:
			fb[i] = MarkAbsent
		}
	}
	return fb
}

// ParseFeedback parses a line like "00120". The trailing line terminator and
// surrounding spaces are ignored.
func ParseFeedback(line string) (Feedback, error) {
	var fb Feedback
	s := strings.TrimSpace(line)
	if len(s) != words.Length {
		return fb, fmt.Errorf("%w: %q has %d characters, want %d", ErrInvalidFeedback, s, len(s), words.Length)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '2' {
			return fb, fmt.Errorf("%w: %q position %d is %q, want 0, 1 or 2", ErrInvalidFeedback, s, i, c)
		}
		fb[i] = Mark(c - '0')
	}
	return fb, nil
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
