package topic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"textfeat/internal/port"
)

func synthetic() *mat.Dense {
	return mat.NewDense(5, 4, []float64{
		3, 1, 0, 2,
		2, 0, 1, 1,
		0, 4, 2, 0,
		1, 1, 5, 0,
		0, 2, 1, 3,
	})
}

func reconstructionError(t *testing.T, dim int) float64 {
	t.Helper()
	train := synthetic()
	s := New(dim)
	require.NoError(t, s.Estimate(train, nil))

	projected, err := s.Transform(train)
	require.NoError(t, err)
	approx, err := s.Reconstruct(projected)
	require.NoError(t, err)

	var diff mat.Dense
	diff.Sub(train, approx)
	return mat.Norm(&diff, 2)
}

func TestTransformBeforeEstimate(t *testing.T) {
	s := New(2)

	assert.False(t, s.Fitted())
	_, err := s.Transform(synthetic())
	assert.True(t, errors.Is(err, ErrNotFitted))
	_, err = s.Reconstruct(mat.NewDense(1, 2, nil))
	assert.True(t, errors.Is(err, ErrNotFitted))
	_, err = s.Basis()
	assert.True(t, errors.Is(err, ErrNotFitted))
}

func TestEstimate_Shapes(t *testing.T) {
	s := New(2)
	require.NoError(t, s.Estimate(synthetic(), []string{"a", "a", "b", "b", "c"}))

	assert.True(t, s.Fitted())
	basis, err := s.Basis()
	require.NoError(t, err)
	r, c := basis.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 2, c)

	out, err := s.Transform(mat.NewDense(3, 4, []float64{1, 0, 0, 0, 0, 1, 0, 0, 1, 1, 1, 1}))
	require.NoError(t, err)
	r, c = out.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
}

func TestTransform_TrainingDataIsOrthonormal(t *testing.T) {
	train := synthetic()
	s := New(3)
	require.NoError(t, s.Estimate(train, nil))

	projected, err := s.Transform(train)
	require.NoError(t, err)

	// X U S^-1 are the right singular vectors, so their columns are orthonormal.
	var gram mat.Dense
	gram.Mul(projected.T(), projected)
	identity := mat.NewDiagDense(3, []float64{1, 1, 1})
	assert.True(t, mat.EqualApprox(identity, &gram, 1e-9), "got %v", mat.Formatted(&gram))
}

func TestReconstructionErrorDecreases(t *testing.T) {
	prev := reconstructionError(t, 1)
	for dim := 2; dim <= 4; dim++ {
		cur := reconstructionError(t, dim)
		assert.LessOrEqual(t, cur, prev+1e-9, "dim %d", dim)
		prev = cur
	}
	// full rank reproduces the training data
	assert.InDelta(t, 0.0, prev, 1e-9)
}

func TestEstimate_InvalidDim(t *testing.T) {
	for _, dim := range []int{0, -1, 5} {
		err := New(dim).Estimate(synthetic(), nil)
		assert.True(t, errors.Is(err, ErrInvalidTopicDim), "dim %d: %v", dim, err)
	}

	err := New(1).Estimate(&mat.Dense{}, nil)
	assert.True(t, errors.Is(err, ErrInvalidTopicDim))
}

func TestEstimate_Singular(t *testing.T) {
	rankOne := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		2, 4, 6,
		3, 6, 9,
	})

	err := New(2).Estimate(rankOne, nil)
	assert.True(t, errors.Is(err, ErrSingular), "got %v", err)

	assert.NoError(t, New(1).Estimate(rankOne, nil))
}

func TestEstimate_Refit(t *testing.T) {
	s := New(1)
	require.NoError(t, s.Estimate(synthetic(), nil))

	other := mat.NewDense(2, 2, []float64{1, 0, 0, 2})
	require.NoError(t, s.Estimate(other, nil))

	_, err := s.Transform(synthetic())
	assert.True(t, errors.Is(err, ErrDimensionMismatch))

	out, err := s.Transform(other)
	require.NoError(t, err)
	r, c := out.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 1, c)
}

func TestIdentity(t *testing.T) {
	var tr port.FeatureTransform = Identity{}
	data := synthetic()

	require.NoError(t, tr.Estimate(data, nil))
	out, err := tr.Transform(data)
	require.NoError(t, err)
	assert.Same(t, data, out)
}

var _ port.FeatureTransform = (*TopicSpace)(nil)
