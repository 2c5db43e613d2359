// Package assets embeds the default word lists so the helper runs without
// any files configured.
package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed dictionary.txt answers.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// AnswersList returns the embedded past answers in day order.
func AnswersList() ([]string, error) {
	return readLines("answers.txt")
}

// DictionaryList returns the embedded guess dictionary.
func DictionaryList() ([]string, error) {
	return readLines("dictionary.txt")
}
