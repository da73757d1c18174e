package analyzer

import (
	"strings"
	"unicode"
)

// Tokenizer splits raw document text into word and punctuation tokens.
type Tokenizer struct {
	keepPunct bool
}

// NewTokenizer creates a new Tokenizer. When keepPunctuation is false only
// word tokens are returned.
func NewTokenizer(keepPunctuation bool) *Tokenizer {
	return &Tokenizer{keepPunct: keepPunctuation}
}

// Tokenize splits text into tokens, preserving case and order.
//
// Letters and digits form words; an apostrophe or hyphen between two word
// runes stays inside the word ("didn't", "well-known"). Any other non-space
// rune is a punctuation token, and a run of the same rune is kept as one
// token so that "--" and "''" survive as delimiters.
func (t *Tokenizer) Tokenize(text string) []string {
	runes := []rune(text)
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case isWordRune(r):
			current.WriteRune(r)
		case isJoiner(r) && current.Len() > 0 && i+1 < len(runes) && isWordRune(runes[i+1]):
			current.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			j := i
			for j+1 < len(runes) && runes[j+1] == r {
				j++
			}
			if t.keepPunct {
				tokens = append(tokens, string(runes[i:j+1]))
			}
			i = j
		}
	}
	flush()

	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isJoiner(r rune) bool {
	return r == '\'' || r == '-'
}
