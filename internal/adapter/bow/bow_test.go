package bow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"textfeat/internal/domain"
)

type halving struct{}

func (halving) Weighting(m *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Scale(0.5, m)
	return &out
}

func (halving) Kind() domain.WeightingKind { return "half" }

func TestNewVocabulary(t *testing.T) {
	v, err := NewVocabulary([]string{"cat", "dog", "runs"})
	require.NoError(t, err)

	assert.Equal(t, 3, v.Len())
	i, ok := v.Index("dog")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, "runs", v.Term(2))

	_, ok = v.Index("bird")
	assert.False(t, ok)
}

func TestNewVocabulary_Invalid(t *testing.T) {
	_, err := NewVocabulary([]string{"cat", "dog", "cat"})
	assert.True(t, errors.Is(err, ErrDuplicateTerm))

	_, err = NewVocabulary([]string{"cat", ""})
	assert.True(t, errors.Is(err, ErrEmptyTerm))
}

func TestVocabulary_TermsIsCopy(t *testing.T) {
	v, err := NewVocabulary([]string{"a", "b"})
	require.NoError(t, err)

	terms := v.Terms()
	terms[0] = "changed"
	assert.Equal(t, "a", v.Term(0))
}

func TestCategoryBoW_Alignment(t *testing.T) {
	v, err := NewVocabulary([]string{"cat", "dog", "runs"})
	require.NoError(t, err)

	corpus := domain.Corpus{
		"pets": {{"cat", "runs"}, {"dog", "dog"}},
	}

	result := New(v, nil).CategoryBoW(corpus)

	expected := mat.NewDense(2, 3, []float64{
		1, 0, 1,
		0, 2, 0,
	})
	require.Contains(t, result, "pets")
	assert.True(t, mat.Equal(expected, result["pets"]), "got %v", mat.Formatted(result["pets"]))
}

func TestCategoryBoW_UnknownWordsIgnored(t *testing.T) {
	v, err := NewVocabulary([]string{"runs", "cat"})
	require.NoError(t, err)

	docs := [][]string{
		{"cat", "zebra", "runs", "cat", "mouse"},
		{"unknown"},
		{},
	}
	m := New(v, nil).CategoryBoW(domain.Corpus{"c": docs})["c"]

	rows, cols := m.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 2, cols)

	for i, doc := range docs {
		inVocab := 0
		for _, w := range doc {
			if _, ok := v.Index(w); ok {
				inVocab++
			}
		}
		assert.Equal(t, float64(inVocab), mat.Sum(m.RowView(i)), "row %d", i)
	}
	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 2.0, m.At(0, 1))
}

func TestCategoryBoW_EmptyCategory(t *testing.T) {
	v, err := NewVocabulary([]string{"a"})
	require.NoError(t, err)

	result := New(v, halving{}).CategoryBoW(domain.Corpus{"empty": nil, "full": {{"a", "a"}}})

	assert.True(t, result["empty"].IsEmpty())
	assert.Equal(t, 1.0, result["full"].At(0, 0))
}

func TestDocumentBoW_Weighted(t *testing.T) {
	v, err := NewVocabulary([]string{"x", "y"})
	require.NoError(t, err)

	b := New(v, halving{})
	m := b.DocumentBoW([]string{"y", "y", "x", "y"})

	assert.True(t, mat.Equal(mat.NewDense(1, 2, []float64{0.5, 1.5}), m))
	assert.Equal(t, domain.WeightingKind("half"), b.Weighting())
	assert.Equal(t, domain.WeightingAbsolute, New(v, nil).Weighting())
}

func TestStack(t *testing.T) {
	matrices := map[string]*mat.Dense{
		"a":     mat.NewDense(1, 2, []float64{1, 2}),
		"b":     mat.NewDense(2, 2, []float64{3, 4, 5, 6}),
		"empty": {},
	}

	stacked, labels := Stack(matrices, []string{"b", "empty", "a"})

	expected := mat.NewDense(3, 2, []float64{3, 4, 5, 6, 1, 2})
	assert.True(t, mat.Equal(expected, stacked))
	assert.Equal(t, []string{"b", "b", "a"}, labels)

	none, labels := Stack(matrices, []string{"empty"})
	assert.True(t, none.IsEmpty())
	assert.Empty(t, labels)
}
