package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"textfeat/internal/domain"
	"textfeat/internal/usecase"
)

var (
	featWeighting string
	featVocabSize int
	featTopicDim  int
	featTopTerms  int
	featJSON      bool
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "Build weighted bag-of-words and topic space features",
	Long: `Build one bag-of-words matrix per category over a vocabulary of the most
frequent stems, apply a term weighting and optionally project the rows into
a topic space estimated by singular value decomposition.

Weightings:
  absolute   raw term counts
  relative   counts divided by the document length
  tf-idf     relative frequencies scaled by inverse document frequency

Examples:
  textfeat features --weighting relative
  textfeat features --weighting tf-idf --topic-dim 10
  textfeat features --vocab-size 1000 --json`,
	RunE: runFeatures,
}

func init() {
	featuresCmd.Flags().StringVarP(&featWeighting, "weighting", "w", "", "term weighting: absolute, relative, tf-idf (default from config)")
	featuresCmd.Flags().IntVar(&featVocabSize, "vocab-size", -1, "vocabulary size, 0 for all stems (default from config)")
	featuresCmd.Flags().IntVar(&featTopicDim, "topic-dim", -1, "topic space dimension, 0 disables (default from config)")
	featuresCmd.Flags().IntVarP(&featTopTerms, "top-terms", "k", -1, "highest weighted terms to show per category")
	featuresCmd.Flags().BoolVar(&featJSON, "json", false, "output JSON")
	rootCmd.AddCommand(featuresCmd)
}

func runFeatures(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	opts := usecase.FeatureOptions{
		Weighting:      cfg.Features.Weighting,
		TopTerms:       cfg.Features.TopTerms,
		VocabularySize: cfg.Features.VocabularySize,
		TopicDim:       cfg.Topic.Dim,
	}
	if featWeighting != "" {
		opts.Weighting = featWeighting
	}
	if featVocabSize >= 0 {
		opts.VocabularySize = featVocabSize
	}
	if featTopicDim >= 0 {
		opts.TopicDim = featTopicDim
	}
	if featTopTerms >= 0 {
		opts.TopTerms = featTopTerms
	}

	st, err := openCorpus()
	if err != nil {
		return err
	}
	defer st.Close()

	normalizer, err := newNormalizer(cfg)
	if err != nil {
		return err
	}
	featureUC := usecase.NewFeatureUseCase(st, normalizer, componentLogger("features"))

	result, err := featureUC.Build(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if featJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Printf("Vocabulary: %d terms\n", len(result.Vocabulary))
	fmt.Printf("Weighting:  %s\n", result.Weighting)
	if result.TopicDim > 0 {
		fmt.Printf("Topics:     %d (reconstruction error %.4f)\n", result.TopicDim, result.ReconstructionError)
	}

	for _, c := range result.Categories {
		fmt.Printf("\n=== %s ===\n", c.Category)
		fmt.Printf("  documents: %d, columns: %d\n", c.Documents, c.Columns)
		if len(c.TopTerms) > 0 {
			fmt.Printf("  top terms: %s\n", formatScores(c.TopTerms))
		}
	}
	return nil
}

func formatScores(scores []domain.TermScore) string {
	parts := make([]string, len(scores))
	for i, s := range scores {
		parts[i] = fmt.Sprintf("%s(%.3f)", s.Term, s.Score)
	}
	return strings.Join(parts, " ")
}

func formatCounts(counts []domain.WordCount) string {
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = fmt.Sprintf("%s(%d)", c.Word, c.Count)
	}
	return strings.Join(parts, " ")
}
