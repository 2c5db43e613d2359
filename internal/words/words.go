// internal/words/words.go
//
// Word list management for the solver.
//
// Responsibilities:
//   - Load the guess dictionary from a file or fall back to the embedded default.
//   - Normalise lines to lowercase 5-letter words; anything else is dropped.
//   - Provide set membership and a deterministic sorted view.
//
// Word Lists:
//   - "dictionary": every word the solver may suggest.
//   - "answers":    past answers in day order (see answers.go).
//
// Environment variables (read by internal/config, passed in as paths):
//   WORDS_DICTIONARY_FILE=/path/to/dictionary.txt
//   WORDS_ANSWERS_FILE=/path/to/answers.txt

package words

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/robalobadob/wordle/apps/go-helper/assets"
)

// Length is the fixed number of letters in a word.
const Length = 5

// Dictionary is an immutable set of unique words.
type Dictionary struct {
	set    map[string]struct{}
	sorted []string
}

// NewDictionary builds a Dictionary from raw words. Duplicates collapse and
// words of the wrong shape are dropped.
func NewDictionary(list []string) *Dictionary {
	set := toSet(normalize(list))
	return &Dictionary{set: set, sorted: sortedKeys(set)}
}

// LoadDictionary reads a dictionary file. An empty path or "-" selects the
// embedded default list.
func LoadDictionary(path string) (*Dictionary, error) {
	if path == "" || path == "-" {
		list, err := assets.DictionaryList()
		if err != nil {
			return nil, fmt.Errorf("words: embedded dictionary: %w", err)
		}
		return NewDictionary(list), nil
	}
	list, err := readWordFile(path)
	if err != nil {
		return nil, fmt.Errorf("words: read dictionary %s: %w", path, err)
	}
	d := NewDictionary(list)
	if d.Len() == 0 {
		return nil, fmt.Errorf("words: dictionary %s has no %d-letter words", path, Length)
	}
	return d, nil
}

// Contains reports whether w is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[w]
	return ok
}

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.set) }

// Sorted returns the words in lexicographic order. The slice is shared and
// must not be modified.
func (d *Dictionary) Sorted() []string { return d.sorted }

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// normalize lowercases and trims each line, keeping valid words in order.
func normalize(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		w := strings.TrimSpace(strings.ToLower(line))
		if Valid(w) {
			out = append(out, w)
		}
	}
	return out
}

func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

func sortedKeys(m map[string]struct{}) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}

// Valid reports whether w is exactly Length lowercase ASCII letters.
func Valid(w string) bool {
	if len(w) != Length {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}
