package weighting

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
	"textfeat/internal/adapter/bow"
	"textfeat/internal/domain"
	"textfeat/internal/port"
)

// Absolute keeps raw term counts.
type Absolute struct{}

func (Absolute) Weighting(m *mat.Dense) *mat.Dense {
	return m
}

func (Absolute) Kind() domain.WeightingKind {
	return domain.WeightingAbsolute
}

func (Absolute) String() string {
	return string(domain.WeightingAbsolute)
}

// Relative divides every row by its sum, turning counts into relative term
// frequencies per document. Rows summing to zero stay zero.
type Relative struct{}

func (Relative) Weighting(m *mat.Dense) *mat.Dense {
	return relative(m)
}

func (Relative) Kind() domain.WeightingKind {
	return domain.WeightingRelative
}

func (Relative) String() string {
	return string(domain.WeightingRelative)
}

func relative(m *mat.Dense) *mat.Dense {
	if m.IsEmpty() {
		return &mat.Dense{}
	}

	rows, cols := m.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		sum := mat.Sum(m.RowView(i))
		if sum == 0 {
			continue
		}
		for j := 0; j < cols; j++ {
			out.Set(i, j, m.At(i, j)/sum)
		}
	}
	return out
}

// Parse builds the weighting named by kind. TF-IDF is fitted on vocab and
// corpus; the other kinds ignore them.
func Parse(kind string, vocab *bow.Vocabulary, corpus domain.Corpus) (port.TermWeighting, error) {
	switch domain.WeightingKind(strings.ToLower(strings.TrimSpace(kind))) {
	case domain.WeightingAbsolute, "":
		return Absolute{}, nil
	case domain.WeightingRelative:
		return Relative{}, nil
	case domain.WeightingTFIDF, "tfidf":
		return NewTFIDF(vocab, corpus), nil
	default:
		return nil, fmt.Errorf("unsupported term weighting: %s", kind)
	}
}
