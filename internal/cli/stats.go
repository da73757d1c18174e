package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"textfeat/internal/usecase"
)

var (
	statsCategory string
	statsTopN     int
	statsJSON     bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the most frequent words per category",
	Long: `Show the most frequent words of every category, or of a single one,
before normalization, after stopword and punctuation filtering, and after
stemming.

Examples:
  textfeat stats                  # All categories
  textfeat stats -c news -n 10    # Top 10 words of category news
  textfeat stats --json           # Machine-readable output`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsCategory, "category", "c", "", "restrict to one category")
	statsCmd.Flags().IntVarP(&statsTopN, "top", "n", 0, "number of words to show (default from config)")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	n := statsTopN
	if n <= 0 {
		n = cfg.Features.TopN
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
	statsUC := usecase.NewStatsUseCase(st, normalizer, componentLogger("stats"))

	var results []usecase.TopWords
	if statsCategory != "" {
		top, err := statsUC.TopWords(statsCategory, n)
		if err != nil {
			return err
		}
		results = append(results, *top)
	} else {
		results, err = statsUC.TopWordsPerCategory(n)
		if err != nil {
			return err
		}
	}

	if statsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	stats, err := st.GetStats()
	if err != nil {
		return err
	}
	fmt.Printf("Corpus: %d documents, %d words, %d categories\n",
		stats.TotalDocs, stats.TotalWords, stats.TotalCategories)

	for _, r := range results {
		fmt.Printf("\n=== %s (%d words) ===\n", r.Category, r.Words)
		fmt.Printf("  raw:      %s\n", formatCounts(r.Raw))
		fmt.Printf("  filtered: %s\n", formatCounts(r.Filtered))
		fmt.Printf("  stemmed:  %s\n", formatCounts(r.Stemmed))
	}
	return nil
}
