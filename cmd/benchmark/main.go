package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"textfeat/config"
	"textfeat/internal/adapter/analyzer"
	"textfeat/internal/adapter/store"
	"textfeat/internal/domain"
	"textfeat/internal/usecase"
)

func main() {
	corpusPath := flag.String("dir", ".", "Path to imported corpus directory")
	vocabSize := flag.Int("vocab", 500, "Vocabulary size")
	dims := flag.String("dims", "0,2,5,10,20", "Comma separated topic dimensions")
	flag.Parse()

	cfg, err := config.LoadFromDir(*corpusPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	dbPath := config.CorpusDBPath(*corpusPath)
	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening corpus: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	stemmer, err := analyzer.NewStemmer(cfg.Normalize.Stemming, cfg.Normalize.Language)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating stemmer: %v\n", err)
		os.Exit(1)
	}
	normalizer := analyzer.NewNormalizer(nil, stemmer)

	l := logrus.New()
	l.SetOutput(io.Discard)
	featureUC := usecase.NewFeatureUseCase(st, normalizer, l.WithField("component", "benchmark"))

	stats, _ := st.GetStats()
	fmt.Println("FEATURE BENCHMARK")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Documents:  %d in %d categories\n", stats.TotalDocs, stats.TotalCategories)
	fmt.Printf("Words:      %d\n", stats.TotalWords)
	fmt.Printf("Vocabulary: %d\n\n", *vocabSize)

	weightings := []domain.WeightingKind{
		domain.WeightingAbsolute,
		domain.WeightingRelative,
		domain.WeightingTFIDF,
	}

	fmt.Printf("%-10s %6s %12s %12s\n", "weighting", "dim", "time", "recon.err")
	fmt.Println(strings.Repeat("-", 70))

	for _, w := range weightings {
		for _, dim := range parseDims(*dims) {
			start := time.Now()
			result, err := featureUC.Build(context.Background(), usecase.FeatureOptions{
				Weighting:      string(w),
				VocabularySize: *vocabSize,
				TopicDim:       dim,
			})
			elapsed := time.Since(start)
			if err != nil {
				fmt.Printf("%-10s %6d %12s %v\n", w, dim, "-", err)
				continue
			}
			fmt.Printf("%-10s %6d %12s %12.4f\n", w, dim, elapsed.Round(time.Millisecond), result.ReconstructionError)
		}
	}
}

func parseDims(s string) []int {
	var dims []int
	for _, part := range strings.Split(s, ",") {
		var d int
		if _, err := fmt.Sscanf(strings.TrimSpace(part), "%d", &d); err == nil && d >= 0 {
			dims = append(dims, d)
		}
	}
	return dims
}
