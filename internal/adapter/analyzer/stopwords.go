package analyzer

import (
	"fmt"
	"os"
	"strings"

	"github.com/kljensen/snowball/english"
)

// Stoplist reports whether a lower-cased word is a stopword.
type Stoplist func(word string) bool

// DefaultStoplist is the snowball English stopword list.
func DefaultStoplist() Stoplist {
	return english.IsStopWord
}

// NewStoplist builds a Stoplist from explicit words. Words are lower-cased.
func NewStoplist(words []string) Stoplist {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return func(word string) bool {
		_, ok := set[word]
		return ok
	}
}

// Union matches a word if any of the lists matches it.
func Union(lists ...Stoplist) Stoplist {
	return func(word string) bool {
		for _, l := range lists {
			if l != nil && l(word) {
				return true
			}
		}
		return false
	}
}

// LoadStoplist reads a stopword file with one or more whitespace separated
// words per line. Lines starting with '#' are skipped.
func LoadStoplist(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stoplist: %w", err)
	}

	var words []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.Fields(line)...)
	}
	return words, nil
}
