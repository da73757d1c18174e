package topic

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrNotFitted         = errors.New("topic space not fitted: call Estimate first")
	ErrInvalidTopicDim   = errors.New("invalid topic dimension")
	ErrFactorization     = errors.New("singular value decomposition failed")
	ErrSingular          = errors.New("singular value block is not invertible")
	ErrDimensionMismatch = errors.New("feature dimension mismatch")
)

// singularTol is the smallest singular value, relative to the largest one,
// that is still inverted.
const singularTol = 1e-12

// TopicSpace estimates a low-dimensional topic space from a document-term
// matrix with a truncated SVD and projects documents into it.
//
// A TopicSpace starts unfitted; Estimate fits it and every later Estimate
// replaces the fitted state.
type TopicSpace struct {
	dim int

	fitted bool
	basis  *mat.Dense     // terms x dim, left singular vectors of the term-document matrix
	sigma  *mat.DiagDense // dim x dim
	sInv   *mat.DiagDense // dim x dim
}

// New creates an unfitted TopicSpace with dim topics.
func New(dim int) *TopicSpace {
	return &TopicSpace{dim: dim}
}

func (s *TopicSpace) Dim() int {
	return s.dim
}

func (s *TopicSpace) Fitted() bool {
	return s.fitted
}

// Estimate factorizes the transpose of train (documents x terms) and keeps
// the first Dim left singular vectors together with the inverse of the
// matching singular values. Dim must not exceed min(documents, terms).
// labels are not used.
func (s *TopicSpace) Estimate(train *mat.Dense, labels []string) error {
	if train == nil || train.IsEmpty() {
		return fmt.Errorf("%w: empty training data", ErrInvalidTopicDim)
	}
	docs, terms := train.Dims()
	if s.dim <= 0 || s.dim > min(docs, terms) {
		return fmt.Errorf("%w: %d topics for %d documents and %d terms", ErrInvalidTopicDim, s.dim, docs, terms)
	}

	var svd mat.SVD
	if !svd.Factorize(train.T(), mat.SVDThin) {
		return ErrFactorization
	}

	values := svd.Values(nil)
	if values[s.dim-1] <= values[0]*singularTol {
		return fmt.Errorf("%w: singular value %d is %g", ErrSingular, s.dim, values[s.dim-1])
	}

	var u mat.Dense
	svd.UTo(&u)

	sig := make([]float64, s.dim)
	inv := make([]float64, s.dim)
	for i := 0; i < s.dim; i++ {
		sig[i] = values[i]
		inv[i] = 1 / values[i]
	}

	s.basis = mat.DenseCopyOf(u.Slice(0, terms, 0, s.dim))
	s.sigma = mat.NewDiagDense(s.dim, sig)
	s.sInv = mat.NewDiagDense(s.dim, inv)
	s.fitted = true
	return nil
}

// Transform projects data (documents x terms) into the topic space,
// data * U_k * S_k^-1.
func (s *TopicSpace) Transform(data *mat.Dense) (*mat.Dense, error) {
	if !s.fitted {
		return nil, ErrNotFitted
	}
	if data == nil || data.IsEmpty() {
		return &mat.Dense{}, nil
	}
	terms, _ := s.basis.Dims()
	if _, c := data.Dims(); c != terms {
		return nil, fmt.Errorf("%w: got %d terms, topic space has %d", ErrDimensionMismatch, c, terms)
	}

	var projected, out mat.Dense
	projected.Mul(data, s.basis)
	out.Mul(&projected, s.sInv)
	return &out, nil
}

// Reconstruct maps topic vectors (documents x dim) back into term space,
// projected * S_k * U_k^T. Reconstruct(Transform(X)) is the rank-dim
// approximation of the training matrix X.
func (s *TopicSpace) Reconstruct(projected *mat.Dense) (*mat.Dense, error) {
	if !s.fitted {
		return nil, ErrNotFitted
	}
	if projected == nil || projected.IsEmpty() {
		return &mat.Dense{}, nil
	}
	if _, c := projected.Dims(); c != s.dim {
		return nil, fmt.Errorf("%w: got %d topics, topic space has %d", ErrDimensionMismatch, c, s.dim)
	}

	var scaled, out mat.Dense
	scaled.Mul(projected, s.sigma)
	out.Mul(&scaled, s.basis.T())
	return &out, nil
}

// Basis returns a copy of the fitted term-topic basis.
func (s *TopicSpace) Basis() (*mat.Dense, error) {
	if !s.fitted {
		return nil, ErrNotFitted
	}
	return mat.DenseCopyOf(s.basis), nil
}

// Identity is a transform that returns its input unchanged.
type Identity struct{}

func (Identity) Estimate(train *mat.Dense, labels []string) error {
	return nil
}

func (Identity) Transform(data *mat.Dense) (*mat.Dense, error) {
	return data, nil
}
