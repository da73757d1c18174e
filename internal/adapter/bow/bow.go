package bow

import (
	"gonum.org/v1/gonum/mat"
	"textfeat/internal/domain"
	"textfeat/internal/port"
)

// BagOfWords builds bag-of-words matrices over a fixed vocabulary.
type BagOfWords struct {
	vocab     *Vocabulary
	weighting port.TermWeighting
}

// New creates a BagOfWords. A nil weighting leaves the counts absolute.
func New(vocab *Vocabulary, weighting port.TermWeighting) *BagOfWords {
	return &BagOfWords{
		vocab:     vocab,
		weighting: weighting,
	}
}

func (b *BagOfWords) Vocabulary() *Vocabulary {
	return b.vocab
}

// Weighting returns the configured weighting kind.
func (b *BagOfWords) Weighting() domain.WeightingKind {
	if b.weighting == nil {
		return domain.WeightingAbsolute
	}
	return b.weighting.Kind()
}

// CategoryBoW builds one (documents x vocabulary) matrix per category. Row i
// of a category matrix represents document i of that category; words outside
// the vocabulary are ignored. A category without documents maps to an empty
// matrix.
func (b *BagOfWords) CategoryBoW(corpus domain.Corpus) map[string]*mat.Dense {
	result := make(map[string]*mat.Dense, len(corpus))
	for category, docs := range corpus {
		result[category] = b.weight(b.counts(docs))
	}
	return result
}

// DocumentBoW builds the (1 x vocabulary) matrix of a single document.
func (b *BagOfWords) DocumentBoW(words []string) *mat.Dense {
	return b.weight(b.counts([][]string{words}))
}

func (b *BagOfWords) counts(docs [][]string) *mat.Dense {
	if len(docs) == 0 || b.vocab.Len() == 0 {
		return &mat.Dense{}
	}

	m := mat.NewDense(len(docs), b.vocab.Len(), nil)
	for row, doc := range docs {
		for _, word := range doc {
			if col, ok := b.vocab.Index(word); ok {
				m.Set(row, col, m.At(row, col)+1)
			}
		}
	}
	return m
}

func (b *BagOfWords) weight(m *mat.Dense) *mat.Dense {
	if b.weighting == nil || m.IsEmpty() {
		return m
	}
	return b.weighting.Weighting(m)
}

// Stack concatenates the matrices of categories vertically, in the given
// order, skipping empty matrices. It returns the stacked matrix and the
// category of every row. The result is empty when no category has rows.
func Stack(matrices map[string]*mat.Dense, categories []string) (*mat.Dense, []string) {
	var rows, cols int
	for _, cat := range categories {
		m, ok := matrices[cat]
		if !ok || m.IsEmpty() {
			continue
		}
		r, c := m.Dims()
		rows += r
		cols = c
	}
	if rows == 0 {
		return &mat.Dense{}, nil
	}

	stacked := mat.NewDense(rows, cols, nil)
	labels := make([]string, 0, rows)
	offset := 0
	for _, cat := range categories {
		m, ok := matrices[cat]
		if !ok || m.IsEmpty() {
			continue
		}
		r, _ := m.Dims()
		stacked.Slice(offset, offset+r, 0, cols).(*mat.Dense).Copy(m)
		for i := 0; i < r; i++ {
			labels = append(labels, cat)
		}
		offset += r
	}
	return stacked, labels
}
