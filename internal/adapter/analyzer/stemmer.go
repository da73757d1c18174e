package analyzer

import (
	"fmt"

	"github.com/kljensen/snowball"
)

// StemmerFunc adapts an ordinary function to the port.Stemmer interface.
type StemmerFunc func(word string) string

func (f StemmerFunc) Stem(word string) string {
	return f(word)
}

// IdentityStemmer returns every word unchanged.
var IdentityStemmer = StemmerFunc(func(word string) string { return word })

// SnowballStemmer stems words with the snowball algorithm of one language.
type SnowballStemmer struct {
	language string
}

// NewSnowballStemmer creates a stemmer for language ("english", "french", ...).
func NewSnowballStemmer(language string) (*SnowballStemmer, error) {
	if _, err := snowball.Stem("test", language, true); err != nil {
		return nil, fmt.Errorf("unsupported stemmer language %q: %w", language, err)
	}
	return &SnowballStemmer{language: language}, nil
}

// Stem returns the stem of word. Stopwords are stemmed as well, so the
// output always has one stem per input word.
func (s *SnowballStemmer) Stem(word string) string {
	stemmed, err := snowball.Stem(word, s.language, true)
	if err != nil {
		return word
	}
	return stemmed
}

// NewStemmer returns the snowball stemmer for language, or the identity
// stemmer when stemming is disabled.
func NewStemmer(stemming bool, language string) (StemmerFunc, error) {
	if !stemming {
		return IdentityStemmer, nil
	}
	s, err := NewSnowballStemmer(language)
	if err != nil {
		return nil, err
	}
	return s.Stem, nil
}
