package domain

import (
	"sort"
	"time"
)

// Document is one file of the categorized corpus.
type Document struct {
	ID       string
	Category string
	Path     string
	ModTime  time.Time
	Words    []string
}

// Corpus maps a category label to its documents, each an ordered word list.
type Corpus map[string][][]string

// Categories returns the category labels in sorted order. Every component
// that concatenates categories iterates them in this order.
func (c Corpus) Categories() []string {
	cats := make([]string, 0, len(c))
	for cat := range c {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}

// NumDocuments returns the number of documents across all categories.
func (c Corpus) NumDocuments() int {
	n := 0
	for _, docs := range c {
		n += len(docs)
	}
	return n
}

// Words flattens the documents of the given categories (all when none are
// given) into a single word sequence.
func (c Corpus) Words(categories ...string) []string {
	if len(categories) == 0 {
		categories = c.Categories()
	}
	var words []string
	for _, cat := range categories {
		for _, doc := range c[cat] {
			words = append(words, doc...)
		}
	}
	return words
}

type WeightingKind string

const (
	WeightingAbsolute WeightingKind = "absolute"
	WeightingRelative WeightingKind = "relative"
	WeightingTFIDF    WeightingKind = "tf-idf"
)

func (k WeightingKind) String() string {
	return string(k)
}

type Stats struct {
	TotalDocs       int `json:"total_docs"`
	TotalWords      int `json:"total_words"`
	TotalCategories int `json:"total_categories"`
}

// WordCount is a word together with its number of occurrences.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// CategoryFeatures summarizes the weighted representation of one category.
type CategoryFeatures struct {
	Category  string      `json:"category"`
	Documents int         `json:"documents"`
	Columns   int         `json:"columns"`
	TopTerms  []TermScore `json:"top_terms,omitempty"`
}

type TermScore struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}
