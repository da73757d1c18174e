package port

import (
	"gonum.org/v1/gonum/mat"
	"textfeat/internal/domain"
)

// TermWeighting transforms a bag-of-words count matrix into a weighted
// matrix of the same shape.
type TermWeighting interface {
	Weighting(m *mat.Dense) *mat.Dense

	// Kind names the weighting scheme for diagnostics.
	Kind() domain.WeightingKind
}
