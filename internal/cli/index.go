package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"textfeat/config"
	"textfeat/internal/adapter/analyzer"
	"textfeat/internal/adapter/fs"
	"textfeat/internal/adapter/store"
	"textfeat/internal/usecase"
)

var indexCmd = &cobra.Command{
	Use:   "index [path]",
	Short: "Import a corpus directory",
	Long: `Import the documents below a directory into the corpus store.
Every first-level subdirectory is a category and every file inside it a
document. The store is kept in .textfeat/corpus.db within the directory.

Examples:
  textfeat index .              # Import current directory
  textfeat index /data/brown    # Import a specific directory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()
	log := componentLogger("index")

	if err := config.EnsureDataDir(path); err != nil {
		return fmt.Errorf("failed to create .textfeat directory: %w", err)
	}

	dbPath := config.CorpusDBPath(path)
	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open corpus store: %w", err)
	}
	defer st.Close()

	migration, err := st.CheckMigration(cfg)
	if err != nil {
		return fmt.Errorf("failed to check migration: %w", err)
	}
	if migration.NeedsRebuild {
		log.WithField("reason", migration.Reason).Warn("clearing corpus store")
		if err := st.Clear(); err != nil {
			return fmt.Errorf("failed to clear corpus store: %w", err)
		}
	}

	tokenizer := analyzer.NewTokenizer(cfg.Corpus.KeepPunctuation)
	walker := fs.NewWalker(cfg.Corpus.Includes, cfg.Corpus.Excludes)
	importUC := usecase.NewImportUseCase(st, walker, tokenizer, cfg.Corpus.MinWords, log)

	fmt.Printf("Scanning %s...\n", path)

	var bar *progressbar.ProgressBar
	var barMu sync.Mutex
	var startTime time.Time

	progress := func(processed, total int, currentFile string) {
		barMu.Lock()
		defer barMu.Unlock()

		if bar == nil {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Importing[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}

		bar.Set(processed)

		elapsed := time.Since(startTime)
		if rate := float64(processed) / elapsed.Seconds(); rate > 0 {
			eta := time.Duration(float64(total-processed)/rate) * time.Second
			bar.Describe(fmt.Sprintf("[cyan]Importing[reset] ETA: %s", formatDuration(eta)))
		}
	}

	result, err := importUC.Import(path, progress)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	if err := st.Migrate(cfg); err != nil {
		return fmt.Errorf("failed to update schema info: %w", err)
	}

	fmt.Printf("\nImport complete:\n")
	fmt.Printf("  Files imported:  %d\n", result.FilesImported)
	fmt.Printf("  Files skipped:   %d (unchanged)\n", result.FilesSkipped)
	fmt.Printf("  Files too short: %d\n", result.FilesTooShort)
	fmt.Printf("  Files deleted:   %d (removed)\n", result.FilesDeleted)
	fmt.Printf("  Documents:       %d in %d categories\n", result.Stats.TotalDocs, result.Stats.TotalCategories)
	fmt.Printf("  Words:           %d\n", result.Stats.TotalWords)

	if len(result.Errors) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	fmt.Printf("\nCorpus stored at: %s\n", dbPath)
	return nil
}

// openCorpus opens the corpus store of the current root directory.
func openCorpus() (*store.BoltStore, error) {
	dbPath := config.CorpusDBPath(GetRootDir())
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("no corpus found. Run 'textfeat index' first")
	}
	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus: %w", err)
	}
	return st, nil
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
