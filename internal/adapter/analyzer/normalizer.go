package analyzer

import (
	"strings"

	"textfeat/internal/port"
)

// punctuation holds the ASCII punctuation characters. A token is treated as
// punctuation when it is a substring of this string.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// delimiters are multi-character quote and dash markers found in tokenized
// corpora.
var delimiters = map[string]struct{}{
	"''": {},
	"``": {},
	"--": {},
}

// Normalizer lower-cases word lists, removes stopwords, punctuation and
// delimiters, and stems what remains.
type Normalizer struct {
	stoplist Stoplist
	stemmer  port.Stemmer
}

// NewNormalizer creates a Normalizer. A nil stoplist selects the snowball
// English stopwords and a nil stemmer the snowball English stemmer.
func NewNormalizer(stoplist []string, stemmer port.Stemmer) *Normalizer {
	stop := DefaultStoplist()
	if stoplist != nil {
		stop = NewStoplist(stoplist)
	}
	if stemmer == nil {
		stemmer = &SnowballStemmer{language: "english"}
	}
	return &Normalizer{stoplist: stop, stemmer: stemmer}
}

// NewNormalizerWithStoplist creates a Normalizer from a prepared Stoplist.
func NewNormalizerWithStoplist(stoplist Stoplist, stemmer port.Stemmer) *Normalizer {
	if stoplist == nil {
		stoplist = DefaultStoplist()
	}
	if stemmer == nil {
		stemmer = &SnowballStemmer{language: "english"}
	}
	return &Normalizer{stoplist: stoplist, stemmer: stemmer}
}

// Normalize returns the filtered words (lower-cased, without stopwords,
// punctuation and delimiters) and their stems. Both slices have the same
// length and order.
func (n *Normalizer) Normalize(words []string) (filtered, stemmed []string) {
	filtered = make([]string, 0, len(words))
	for _, word := range words {
		word = strings.ToLower(word)
		if n.stoplist(word) || isPunctuation(word) || isDelimiter(word) {
			continue
		}
		filtered = append(filtered, word)
	}

	stemmed = make([]string, len(filtered))
	for i, word := range filtered {
		stemmed[i] = n.stemmer.Stem(word)
	}

	return filtered, stemmed
}

func isPunctuation(word string) bool {
	return strings.Contains(punctuation, word)
}

func isDelimiter(word string) bool {
	_, ok := delimiters[word]
	return ok
}
