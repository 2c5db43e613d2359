// internal/words/answers.go
//
// Past answer list. Line index is the day ordinal, so the list keeps file
// order and duplicates.

package words

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/go-helper/assets"
)

var (
	// ErrDayOutOfRange is returned when a day ordinal has no answer.
	ErrDayOutOfRange = errors.New("words: day out of range")
	// ErrMalformedAnswer is returned for an answers line that is not a word.
	ErrMalformedAnswer = errors.New("words: malformed answer")
)

// Answers is the ordered list of answers, one per day.
type Answers []string

// LoadAnswers reads an answers file. An empty path or "-" selects the
// embedded default list. Every line must hold a word; only trailing blank
// lines are ignored.
func LoadAnswers(path string) (Answers, error) {
	if path == "" || path == "-" {
		list, err := assets.AnswersList()
		if err != nil {
			return nil, fmt.Errorf("words: embedded answers: %w", err)
		}
		return ParseAnswers(list, "embedded answers")
	}
	list, err := readWordFile(path)
	if err != nil {
		return nil, fmt.Errorf("words: read answers %s: %w", path, err)
	}
	return ParseAnswers(list, path)
}

// ParseAnswers keeps lines in position, so line i (from 0) is the answer for
// day i. A malformed line fails the whole list instead of shifting later days.
func ParseAnswers(lines []string, source string) (Answers, error) {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	out := make(Answers, len(lines))
	for i, line := range lines {
		w := strings.ToLower(strings.TrimSpace(line))
		if !Valid(w) {
			return nil, fmt.Errorf("%w: %s line %d: %q", ErrMalformedAnswer, source, i+1, line)
		}
		out[i] = w
	}
	return out, nil
}

// For returns the answer for day.
func (a Answers) For(day int) (string, error) {
	if day < 0 || day >= len(a) {
		return "", fmt.Errorf("%w: %d (have %d)", ErrDayOutOfRange, day, len(a))
	}
	return a[day], nil
}

// Past returns a copy of the answers strictly before day. The answer for day
// itself and anything after it are never included.
func (a Answers) Past(day int) []string {
	if day <= 0 {
		return nil
	}
	if day > len(a) {
		day = len(a)
	}
	out := make([]string, day)
	copy(out, a[:day])
	return out
}
