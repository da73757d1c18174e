package weighting

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"textfeat/internal/adapter/bow"
	"textfeat/internal/domain"
)

// TFIDF weights relative term frequencies by the inverse document frequency
// of each term, ln(N / df). The document frequencies are computed once, at
// construction, from a fixed vocabulary and corpus.
type TFIDF struct {
	numDocs int
	docFreq []int
	weights []float64
}

// NewTFIDF fits the document frequencies of vocab's terms on corpus. All
// categories are stacked in sorted label order. Terms that occur in no
// document get weight 0.
func NewTFIDF(vocab *bow.Vocabulary, corpus domain.Corpus) *TFIDF {
	counts := bow.New(vocab, nil).CategoryBoW(corpus)
	stacked, _ := bow.Stack(counts, corpus.Categories())

	t := &TFIDF{
		docFreq: make([]int, vocab.Len()),
		weights: make([]float64, vocab.Len()),
	}
	if stacked.IsEmpty() {
		return t
	}

	rows, cols := stacked.Dims()
	t.numDocs = rows
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			if stacked.At(i, j) > 0 {
				t.docFreq[j]++
			}
		}
		if t.docFreq[j] > 0 {
			t.weights[j] = math.Log(float64(t.numDocs) / float64(t.docFreq[j]))
		}
	}
	return t
}

// Weighting applies relative weighting and scales column j by the inverse
// document frequency of term j. m must have one column per vocabulary term.
func (t *TFIDF) Weighting(m *mat.Dense) *mat.Dense {
	out := relative(m)
	if out.IsEmpty() {
		return out
	}

	rows, cols := out.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, out.At(i, j)*t.weights[j])
		}
	}
	return out
}

func (t *TFIDF) Kind() domain.WeightingKind {
	return domain.WeightingTFIDF
}

func (t *TFIDF) String() string {
	return string(domain.WeightingTFIDF)
}

// DocumentCount is the number of documents the weights were fitted on.
func (t *TFIDF) DocumentCount() int {
	return t.numDocs
}

// DocumentFrequencies returns, per vocabulary term, the number of documents
// containing it.
func (t *TFIDF) DocumentFrequencies() []int {
	out := make([]int, len(t.docFreq))
	copy(out, t.docFreq)
	return out
}

// Weights returns the inverse document frequency of every vocabulary term.
func (t *TFIDF) Weights() []float64 {
	out := make([]float64, len(t.weights))
	copy(out, t.weights)
	return out
}
