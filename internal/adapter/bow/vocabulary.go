package bow

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateTerm = errors.New("duplicate vocabulary term")
	ErrEmptyTerm     = errors.New("empty vocabulary term")
)

// Vocabulary is an ordered, duplicate-free list of terms. The position of a
// term is its column in every bag-of-words matrix built from it.
type Vocabulary struct {
	terms  []string
	lookup map[string]int
}

// NewVocabulary creates a Vocabulary from terms. The slice is copied.
func NewVocabulary(terms []string) (*Vocabulary, error) {
	v := &Vocabulary{
		terms:  make([]string, len(terms)),
		lookup: make(map[string]int, len(terms)),
	}
	for i, term := range terms {
		if term == "" {
			return nil, fmt.Errorf("%w at position %d", ErrEmptyTerm, i)
		}
		if prev, exists := v.lookup[term]; exists {
			return nil, fmt.Errorf("%w %q at positions %d and %d", ErrDuplicateTerm, term, prev, i)
		}
		v.terms[i] = term
		v.lookup[term] = i
	}
	return v, nil
}

// Index returns the column of term.
func (v *Vocabulary) Index(term string) (int, bool) {
	i, ok := v.lookup[term]
	return i, ok
}

// Term returns the term of column i.
func (v *Vocabulary) Term(i int) string {
	return v.terms[i]
}

func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// Terms returns a copy of the terms in column order.
func (v *Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}
