package bow

import (
	"sort"

	"textfeat/internal/domain"
)

// CountWords tallies exact-match word counts and returns them ranked by
// descending count. Words with equal counts keep the order of their first
// occurrence.
func CountWords(words []string) []domain.WordCount {
	index := make(map[string]int)
	counts := make([]domain.WordCount, 0)

	for _, word := range words {
		if i, ok := index[word]; ok {
			counts[i].Count++
			continue
		}
		index[word] = len(counts)
		counts = append(counts, domain.WordCount{Word: word, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	return counts
}

// RankWords returns every distinct word, most frequent first.
func RankWords(words []string) []string {
	counts := CountWords(words)
	ranked := make([]string, len(counts))
	for i, c := range counts {
		ranked[i] = c.Word
	}
	return ranked
}

// MostFrequent returns the n most frequent distinct words, most frequent
// first. It is always a prefix of RankWords(words); n <= 0 yields an empty
// slice.
func MostFrequent(words []string, n int) []string {
	if n <= 0 {
		return []string{}
	}
	ranked := RankWords(words)
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
