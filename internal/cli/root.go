package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"textfeat/config"
	"textfeat/internal/adapter/analyzer"
)

var (
	cfgFile  string
	cfg      *config.Config
	rootDir  string
	logLevel string
	logger   *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "textfeat",
	Short: "Word statistics and vector-space features for categorized corpora",
	Long: `textfeat imports a corpus laid out as <dir>/<category>/<document>, reports
word frequencies before and after normalization, and builds weighted
bag-of-words matrices and topic space projections per category.

Example usage:
  textfeat index ./brown            # Import a corpus directory
  textfeat stats -d ./brown -n 20   # Most frequent words per category
  textfeat features -d ./brown --weighting tf-idf --topic-dim 10`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		logger, err = newLogger(cfg.Logging)
		return err
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./textfeat.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "corpus directory (default is current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides logging.level)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}

func newLogger(lc config.LoggingConfig) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(lc.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", lc.Level, err)
	}
	l.SetLevel(level)

	if lc.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l, nil
}

func componentLogger(name string) *logrus.Entry {
	return logger.WithField("component", name)
}

// newNormalizer builds the word list normalizer described by cfg.
func newNormalizer(cfg *config.Config) (*analyzer.Normalizer, error) {
	stop := analyzer.DefaultStoplist()
	if cfg.Normalize.Stopwords != "" {
		words, err := analyzer.LoadStoplist(cfg.Normalize.Stopwords)
		if err != nil {
			return nil, err
		}
		stop = analyzer.NewStoplist(words)
	}
	if len(cfg.Normalize.ExtraStopwords) > 0 {
		stop = analyzer.Union(stop, analyzer.NewStoplist(cfg.Normalize.ExtraStopwords))
	}

	stemmer, err := analyzer.NewStemmer(cfg.Normalize.Stemming, cfg.Normalize.Language)
	if err != nil {
		return nil, err
	}
	return analyzer.NewNormalizerWithStoplist(stop, stemmer), nil
}
