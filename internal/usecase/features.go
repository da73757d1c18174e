package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
	"textfeat/internal/adapter/analyzer"
	"textfeat/internal/adapter/bow"
	"textfeat/internal/adapter/topic"
	"textfeat/internal/adapter/weighting"
	"textfeat/internal/domain"
	"textfeat/internal/port"
)

// FeatureOptions configures a feature build.
type FeatureOptions struct {
	Weighting string
	TopTerms  int

	// VocabularySize is the number of most frequent stems used as the
	// vocabulary; 0 uses every stem.
	VocabularySize int

	// TopicDim enables the topic space projection when positive.
	TopicDim int
}

// FeatureResult is the outcome of a feature build.
type FeatureResult struct {
	Vocabulary []string                  `json:"vocabulary"`
	Weighting  domain.WeightingKind      `json:"weighting"`
	Categories []domain.CategoryFeatures `json:"categories"`
	TopicDim   int                       `json:"topic_dim,omitempty"`

	// ReconstructionError is ||X - X_k|| / ||X|| for the stacked training
	// matrix X and its rank-TopicDim approximation X_k.
	ReconstructionError float64 `json:"reconstruction_error,omitempty"`

	Matrices map[string]*mat.Dense `json:"-"`
	Topics   map[string]*mat.Dense `json:"-"`
}

// FeatureUseCase turns a corpus into weighted bag-of-words matrices and,
// optionally, topic space representations.
type FeatureUseCase struct {
	reader     port.CorpusReader
	normalizer *analyzer.Normalizer
	logger     *logrus.Entry
}

func NewFeatureUseCase(reader port.CorpusReader, normalizer *analyzer.Normalizer, logger *logrus.Entry) *FeatureUseCase {
	if logger == nil {
		logger = logrus.WithField("component", "features")
	}
	return &FeatureUseCase{
		reader:     reader,
		normalizer: normalizer,
		logger:     logger,
	}
}

// Build normalizes every document, derives the vocabulary from the most
// frequent stems, weights the per-category bag-of-words matrices and
// projects them into the topic space when opts.TopicDim > 0.
func (u *FeatureUseCase) Build(ctx context.Context, opts FeatureOptions) (*FeatureResult, error) {
	raw, err := u.reader.Corpus()
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}

	corpus := make(domain.Corpus, len(raw))
	for _, cat := range raw.Categories() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		docs := make([][]string, len(raw[cat]))
		for i, doc := range raw[cat] {
			_, docs[i] = u.normalizer.Normalize(doc)
		}
		corpus[cat] = docs
	}

	var terms []string
	if opts.VocabularySize > 0 {
		terms = bow.MostFrequent(corpus.Words(), opts.VocabularySize)
	} else {
		terms = bow.RankWords(corpus.Words())
	}
	vocab, err := bow.NewVocabulary(terms)
	if err != nil {
		return nil, fmt.Errorf("failed to build vocabulary: %w", err)
	}

	w, err := weighting.Parse(opts.Weighting, vocab, corpus)
	if err != nil {
		return nil, err
	}
	u.logger.WithFields(logrus.Fields{
		"categories": len(corpus),
		"documents":  corpus.NumDocuments(),
		"vocabulary": vocab.Len(),
		"weighting":  w.Kind(),
	}).Info("building bag-of-words matrices")

	matrices := bow.New(vocab, w).CategoryBoW(corpus)

	result := &FeatureResult{
		Vocabulary: vocab.Terms(),
		Weighting:  w.Kind(),
		Matrices:   matrices,
	}
	for _, cat := range corpus.Categories() {
		m := matrices[cat]
		rows, cols := m.Dims()
		result.Categories = append(result.Categories, domain.CategoryFeatures{
			Category:  cat,
			Documents: rows,
			Columns:   cols,
			TopTerms:  topTerms(m, vocab, opts.TopTerms),
		})
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := u.project(corpus.Categories(), opts.TopicDim, result); err != nil {
		return nil, err
	}

	return result, nil
}

func (u *FeatureUseCase) project(categories []string, dim int, result *FeatureResult) error {
	var transform port.FeatureTransform = topic.Identity{}
	var space *topic.TopicSpace
	if dim > 0 {
		space = topic.New(dim)
		transform = space
	}

	train, labels := bow.Stack(result.Matrices, categories)
	if train.IsEmpty() {
		if space != nil {
			return fmt.Errorf("topic space: %w", topic.ErrInvalidTopicDim)
		}
		result.Topics = result.Matrices
		return nil
	}
	if err := transform.Estimate(train, labels); err != nil {
		return fmt.Errorf("failed to estimate topic space: %w", err)
	}

	result.Topics = make(map[string]*mat.Dense, len(result.Matrices))
	for cat, m := range result.Matrices {
		projected, err := transform.Transform(m)
		if err != nil {
			return fmt.Errorf("failed to transform category %s: %w", cat, err)
		}
		result.Topics[cat] = projected
	}

	if space == nil {
		return nil
	}
	result.TopicDim = dim

	projected, err := space.Transform(train)
	if err != nil {
		return err
	}
	approx, err := space.Reconstruct(projected)
	if err != nil {
		return err
	}
	var diff mat.Dense
	diff.Sub(train, approx)
	if norm := mat.Norm(train, 2); norm > 0 {
		result.ReconstructionError = mat.Norm(&diff, 2) / norm
	}

	u.logger.WithFields(logrus.Fields{
		"topics":               dim,
		"reconstruction_error": result.ReconstructionError,
	}).Info("estimated topic space")
	return nil
}

// topTerms returns the k terms with the highest mean weight in m.
func topTerms(m *mat.Dense, vocab *bow.Vocabulary, k int) []domain.TermScore {
	if k <= 0 || m.IsEmpty() {
		return nil
	}

	rows, cols := m.Dims()
	scores := make([]domain.TermScore, 0, cols)
	for j := 0; j < cols; j++ {
		mean := mat.Sum(m.ColView(j)) / float64(rows)
		if mean <= 0 || math.IsNaN(mean) {
			continue
		}
		scores = append(scores, domain.TermScore{Term: vocab.Term(j), Score: mean})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	if len(scores) > k {
		scores = scores[:k]
	}
	return scores
}
