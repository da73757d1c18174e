package weighting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"textfeat/internal/adapter/bow"
	"textfeat/internal/domain"
	"textfeat/internal/port"
)

func petsBoW(t *testing.T) *mat.Dense {
	t.Helper()
	v, err := bow.NewVocabulary([]string{"cat", "dog", "runs"})
	require.NoError(t, err)
	return bow.New(v, nil).CategoryBoW(domain.Corpus{
		"pets": {{"cat", "runs"}, {"dog", "dog"}},
	})["pets"]
}

func TestAbsolute(t *testing.T) {
	m := petsBoW(t)

	out := Absolute{}.Weighting(m)

	assert.True(t, mat.Equal(mat.NewDense(2, 3, []float64{1, 0, 1, 0, 2, 0}), out))
	assert.Equal(t, domain.WeightingAbsolute, Absolute{}.Kind())
}

func TestRelative(t *testing.T) {
	m := petsBoW(t)

	out := Relative{}.Weighting(m)

	expected := mat.NewDense(2, 3, []float64{0.5, 0, 0.5, 0, 1, 0})
	assert.True(t, mat.EqualApprox(expected, out, 1e-12), "got %v", mat.Formatted(out))
	// input is left untouched
	assert.Equal(t, 2.0, m.At(1, 1))
}

func TestRelative_RowsSumToOne(t *testing.T) {
	m := mat.NewDense(3, 4, []float64{
		1, 2, 3, 4,
		0, 0, 7, 0,
		5, 5, 0, 1,
	})

	out := Relative{}.Weighting(m)

	for i := 0; i < 3; i++ {
		assert.InDelta(t, 1.0, mat.Sum(out.RowView(i)), 1e-12, "row %d", i)
	}
}

func TestRelative_ZeroRow(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{0, 0, 1, 3})

	out := Relative{}.Weighting(m)

	assert.Equal(t, 0.0, out.At(0, 0))
	assert.Equal(t, 0.0, out.At(0, 1))
	assert.InDelta(t, 0.75, out.At(1, 1), 1e-12)
	for _, v := range out.RawMatrix().Data {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}
}

func TestRelative_Empty(t *testing.T) {
	assert.True(t, Relative{}.Weighting(&mat.Dense{}).IsEmpty())
}

func TestTFIDF_Fit(t *testing.T) {
	v, err := bow.NewVocabulary([]string{"the", "cat", "dog", "never"})
	require.NoError(t, err)

	corpus := domain.Corpus{
		"pets":  {{"the", "cat"}, {"the", "dog", "dog"}},
		"other": {{"the", "cat", "sat"}, {"the"}},
	}
	tfidf := NewTFIDF(v, corpus)

	assert.Equal(t, 4, tfidf.DocumentCount())
	assert.Equal(t, []int{4, 2, 1, 0}, tfidf.DocumentFrequencies())

	w := tfidf.Weights()
	assert.InDelta(t, 0.0, w[0], 1e-12)
	assert.InDelta(t, math.Log(2), w[1], 1e-12)
	assert.InDelta(t, math.Log(4), w[2], 1e-12)
	assert.Equal(t, 0.0, w[3])
}

func TestTFIDF_UbiquitousTermHasZeroWeight(t *testing.T) {
	v, err := bow.NewVocabulary([]string{"the", "cat", "dog"})
	require.NoError(t, err)

	corpus := domain.Corpus{
		"a": {{"the", "cat"}, {"the", "the", "dog"}},
		"b": {{"dog", "the"}},
	}
	tfidf := NewTFIDF(v, corpus)

	for cat, m := range bow.New(v, tfidf).CategoryBoW(corpus) {
		rows, _ := m.Dims()
		for i := 0; i < rows; i++ {
			assert.Equal(t, 0.0, m.At(i, 0), "category %s row %d", cat, i)
		}
	}
}

func TestTFIDF_Weighting(t *testing.T) {
	v, err := bow.NewVocabulary([]string{"cat", "dog", "runs"})
	require.NoError(t, err)

	corpus := domain.Corpus{"pets": {{"cat", "runs"}, {"dog", "dog"}}}
	tfidf := NewTFIDF(v, corpus)

	out := tfidf.Weighting(petsBoW(t))

	ln2 := math.Log(2)
	expected := mat.NewDense(2, 3, []float64{0.5 * ln2, 0, 0.5 * ln2, 0, ln2, 0})
	assert.True(t, mat.EqualApprox(expected, out, 1e-12), "got %v", mat.Formatted(out))
	assert.Equal(t, domain.WeightingTFIDF, tfidf.Kind())
}

func TestTFIDF_EmptyCorpus(t *testing.T) {
	v, err := bow.NewVocabulary([]string{"a", "b"})
	require.NoError(t, err)

	tfidf := NewTFIDF(v, domain.Corpus{"empty": nil})

	assert.Equal(t, 0, tfidf.DocumentCount())
	assert.Equal(t, []float64{0, 0}, tfidf.Weights())

	out := tfidf.Weighting(mat.NewDense(1, 2, []float64{1, 1}))
	assert.Equal(t, []float64{0, 0}, out.RawRowView(0))
}

func TestParse(t *testing.T) {
	v, err := bow.NewVocabulary([]string{"a"})
	require.NoError(t, err)
	corpus := domain.Corpus{"c": {{"a"}}}

	tests := []struct {
		input string
		kind  domain.WeightingKind
	}{
		{"", domain.WeightingAbsolute},
		{"absolute", domain.WeightingAbsolute},
		{"Relative", domain.WeightingRelative},
		{"tf-idf", domain.WeightingTFIDF},
		{"tfidf", domain.WeightingTFIDF},
	}
	for _, tt := range tests {
		w, err := Parse(tt.input, v, corpus)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.kind, w.Kind(), tt.input)
	}

	_, err = Parse("bm25", v, corpus)
	assert.Error(t, err)
}

var (
	_ port.TermWeighting = Absolute{}
	_ port.TermWeighting = Relative{}
	_ port.TermWeighting = (*TFIDF)(nil)
)
