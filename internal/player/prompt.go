// internal/player/prompt.go
//
// Terminal feedback source for interactive play (readline).

package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/robalobadob/wordle/apps/go-helper/internal/game"
)

// ErrAborted is returned when the player leaves the prompt (Ctrl-C or EOF).
var ErrAborted = errors.New("player: aborted")

// LineReader is the part of a readline instance the prompt uses.
type LineReader interface {
	Readline() (string, error)
}

// Prompt asks a player for the feedback the real game showed.
type Prompt struct {
	lines  LineReader
	out    io.Writer
	closer io.Closer
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// NewPrompt opens an interactive readline prompt on the terminal.
func NewPrompt() (*Prompt, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "\033[32mfeedback>\033[0m ",
		HistoryFile: "/tmp/wordlehelper.tmp",
		EOFPrompt:   "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	return &Prompt{lines: l, out: l.Stdout(), closer: l}, nil
}

// NewLinePrompt builds a prompt over any line reader, writing suggestions
// to out.
func NewLinePrompt(lines LineReader, out io.Writer) *Prompt {
	return &Prompt{lines: lines, out: out}
}

// Feedback shows guess and reads one line of marks, e.g. "00120". Blank
// lines are ignored.
func (p *Prompt) Feedback(ctx context.Context, guess string) (game.Feedback, error) {
	fmt.Fprintf(p.out, "guess '%s'\n", guess)
	for {
		if err := ctx.Err(); err != nil {
			return game.Feedback{}, err
		}
		line, err := p.lines.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return game.Feedback{}, ErrAborted
			}
			continue
		} else if err == io.EOF {
			return game.Feedback{}, ErrAborted
		} else if err != nil {
			return game.Feedback{}, err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		return game.ParseFeedback(line)
	}
}

// Close releases the terminal.
func (p *Prompt) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}
