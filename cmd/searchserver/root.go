package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/Dess457/search-server/internal/indexer"
	"github.com/Dess457/search-server/internal/ingestion/loader"
	"github.com/Dess457/search-server/pkg/config"
	"github.com/Dess457/search-server/pkg/logger"
	"github.com/Dess457/search-server/pkg/metrics"
)

const rootLongDesc string = `Search a corpus of short text documents ranked by TF-IDF.

Documents are loaded from a corpus file (YAML or JSON) and queried with
plus and minus words: "fluffy cat -collar" ranks documents containing
"fluffy" or "cat" and drops every document containing "collar".

Example:
  searchserver search "fluffy -dog" --corpus docs.yaml
  searchserver match "fluffy tail" --id 0 --corpus docs.yaml
  searchserver stats --corpus docs.yaml
  searchserver stdin < session.txt`

type app struct {
	configPath string
	corpusPath string
	stopWords  string

	cfg      *config.Config
	registry *prometheus.Registry
	metrics  *metrics.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "searchserver",
		Short:         "In-process TF-IDF document search",
		Long:          rootLongDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cmd.Flags().Changed("corpus") {
				cfg.Engine.Corpus = a.corpusPath
			}
			if cmd.Flags().Changed("stop-words") {
				cfg.Engine.StopWords = nil
				cfg.Engine.StopWordsText = a.stopWords
			}
			a.cfg = cfg

			logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
			cmd.SetContext(logger.WithRunID(cmd.Context(), uuid.NewString()))

			a.registry = prometheus.NewRegistry()
			if cfg.Metrics.Enabled {
				a.metrics = metrics.New(a.registry)
			}
			logger.FromContext(cmd.Context()).Debug("configuration loaded",
				"config", a.configPath,
				"corpus", cfg.Engine.Corpus,
				"metrics", cfg.Metrics.Enabled,
			)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.metrics == nil || !a.cfg.Metrics.DumpOnExit {
				return nil
			}
			return metrics.WriteText(cmd.ErrOrStderr(), a.registry)
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML or TOML config file")
	cmd.PersistentFlags().StringVar(&a.corpusPath, "corpus", "", "path to a YAML or JSON corpus file")
	cmd.PersistentFlags().StringVar(&a.stopWords, "stop-words", "", "space-separated stop words (overrides config and corpus)")

	cmd.AddCommand(
		newSearchCmd(a),
		newMatchCmd(a),
		newStatsCmd(a),
		newStdinCmd(a),
	)
	return cmd
}

func (a *app) engineOptions() []indexer.Option {
	opts := []indexer.Option{indexer.WithLogger(logger.WithComponent("engine"))}
	if a.metrics != nil {
		opts = append(opts, indexer.WithMetrics(a.metrics))
	}
	return opts
}

// loadEngine builds the engine from the configured corpus. Stop words given
// in config or on the command line win over the corpus file's own list.
func (a *app) loadEngine(cmd *cobra.Command) (*indexer.Engine, error) {
	if a.cfg.Engine.Corpus == "" {
		return nil, fmt.Errorf("no corpus configured: use --corpus or engine.corpus")
	}
	corpus, err := loader.LoadFile(a.cfg.Engine.Corpus)
	if err != nil {
		return nil, err
	}
	stopWords := a.cfg.Engine.AllStopWords()
	if len(stopWords) == 0 {
		stopWords = corpus.StopWords
	}
	engine, err := indexer.New(stopWords, a.engineOptions()...)
	if err != nil {
		return nil, err
	}
	added, err := loader.Ingest(cmd.Context(), engine, corpus.Documents)
	if err != nil {
		return nil, err
	}
	logger.FromContext(cmd.Context()).Info("corpus loaded",
		"path", a.cfg.Engine.Corpus,
		"documents", added,
		"stop_words", len(stopWords),
	)
	return engine, nil
}

func logWith(cmd *cobra.Command) *slog.Logger {
	return logger.FromContext(cmd.Context())
}
