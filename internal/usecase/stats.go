package usecase

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"textfeat/internal/adapter/analyzer"
	"textfeat/internal/adapter/bow"
	"textfeat/internal/domain"
	"textfeat/internal/port"
)

// StatsUseCase reports word frequencies of a corpus.
type StatsUseCase struct {
	reader     port.CorpusReader
	normalizer *analyzer.Normalizer
	logger     *logrus.Entry
}

func NewStatsUseCase(reader port.CorpusReader, normalizer *analyzer.Normalizer, logger *logrus.Entry) *StatsUseCase {
	if logger == nil {
		logger = logrus.WithField("component", "stats")
	}
	return &StatsUseCase{
		reader:     reader,
		normalizer: normalizer,
		logger:     logger,
	}
}

// TopWords holds the most frequent words of one category at each
// normalization stage.
type TopWords struct {
	Category string             `json:"category"`
	Words    int                `json:"words"`
	Raw      []domain.WordCount `json:"raw"`
	Filtered []domain.WordCount `json:"filtered"`
	Stemmed  []domain.WordCount `json:"stemmed"`
}

// TopWords returns the n most frequent words of category, or of the whole
// corpus when category is empty: unprocessed, after stopword and
// punctuation filtering, and after stemming.
func (u *StatsUseCase) TopWords(category string, n int) (*TopWords, error) {
	var cats []string
	if category != "" {
		cats = append(cats, category)
	}
	words, err := u.reader.Words(cats...)
	if err != nil {
		return nil, fmt.Errorf("failed to read words: %w", err)
	}

	filtered, stemmed := u.normalizer.Normalize(words)

	label := category
	if label == "" {
		label = "*"
	}
	u.logger.WithFields(logrus.Fields{
		"category": label,
		"words":    len(words),
		"filtered": len(filtered),
	}).Debug("counted word frequencies")

	return &TopWords{
		Category: label,
		Words:    len(words),
		Raw:      top(words, n),
		Filtered: top(filtered, n),
		Stemmed:  top(stemmed, n),
	}, nil
}

// TopWordsPerCategory runs TopWords for every category in sorted order.
func (u *StatsUseCase) TopWordsPerCategory(n int) ([]TopWords, error) {
	cats, err := u.reader.Categories()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	result := make([]TopWords, 0, len(cats))
	for _, cat := range cats {
		tw, err := u.TopWords(cat, n)
		if err != nil {
			return nil, err
		}
		result = append(result, *tw)
	}
	return result, nil
}

func top(words []string, n int) []domain.WordCount {
	counts := bow.CountWords(words)
	if n < 0 {
		n = 0
	}
	if n < len(counts) {
		counts = counts[:n]
	}
	return counts
}
