package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hantools/hangram/pkg/ngram"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `hangram - Hangul syllable n-gram model trainer

Usage:
  %[1]s [flags] <corpus.txt>     train a model from a UTF-8 corpus file
  %[1]s -generate-sample [flags] generate the built-in sample model

Flags:
`, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	os.Exit(run())
}

func run() int {
	var (
		outputPath     = flag.String("o", "", "output model path (default \"ngram_model.json\")")
		minFreq        = flag.Int("min-freq", 0, "minimum frequency threshold for trained models (default 5)")
		generateSample = flag.Bool("generate-sample", false, "generate the deterministic sample model instead of training")
		storeDBPath    = flag.String("db", "", "route training through a SQLite accumulation store at this path")
		configPath     = flag.String("config", "", "optional JSON config file (created with defaults if missing)")
		showVersion    = flag.Bool("version", false, "print version information and exit")
	)
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("hangram %s (commit %s, built %s)\n", Version, Commit, BuildDate)
		return 0
	}

	config := DefaultTrainerConfig()
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		config = loaded
	}
	if *outputPath != "" {
		config.OutputPath = *outputPath
	}
	if *minFreq != 0 {
		config.MinFreq = *minFreq
	}
	if *storeDBPath != "" {
		config.StoreDBPath = *storeDBPath
	}

	var logLevel slog.Level
	switch strings.ToLower(config.LogLevel) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))

	var (
		model *ngram.Model
		err   error
	)
	switch {
	case *generateSample:
		logger.Info("Generating sample n-gram model")
		model = ngram.GenerateSample()
	case flag.NArg() >= 1:
		corpusPath := flag.Arg(0)
		logger.Info("Training n-gram model",
			slog.String("corpus", corpusPath),
			slog.Int("min_freq", config.MinFreq),
		)
		model, err = trainModel(corpusPath, config, logger)
		if err != nil {
			if errors.Is(err, ngram.ErrCorpusNotFound) {
				logger.Error("Corpus file not found", "path", corpusPath)
			} else {
				logger.Error("Training failed", "error", err)
			}
			return 1
		}
	default:
		fmt.Fprintln(os.Stderr, "error: a corpus file path or -generate-sample is required")
		usage()
		return 2
	}

	if err = model.WriteFile(config.OutputPath); err != nil {
		logger.Error("Failed to write model", "path", config.OutputPath, "error", err)
		return 1
	}

	logger.Info("Model written",
		slog.String("path", config.OutputPath),
		slog.Int("corpus_size", model.Metadata.CorpusSize),
		slog.Int("unique_unigrams", model.Metadata.UniqueUnigrams),
		slog.Int("unique_bigrams", model.Metadata.UniqueBigrams),
	)
	printTopEntries(model)

	return 0
}

// trainModel picks the in-memory or store-backed training path based on
// the configuration.
func trainModel(corpusPath string, config *TrainerConfig, logger *slog.Logger) (*ngram.Model, error) {
	if config.StoreDBPath == "" {
		return ngram.TrainFile(corpusPath, config.MinFreq)
	}

	db, err := initDB(config.StoreDBPath)
	if err != nil {
		return nil, fmt.Errorf("could not open store database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err = ngram.SetupStoreSchema(db); err != nil {
		return nil, err
	}
	store, err := ngram.NewStore(db)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	store.SetLogger(logger)

	return ngram.TrainFileWithStore(context.Background(), store, corpusPath, config.MinFreq)
}

// printTopEntries prints the model summary the way the trainer has always
// reported it: the ten most frequent unigrams and bigrams.
func printTopEntries(model *ngram.Model) {
	fmt.Println("\nTop 10 unigrams:")
	for _, entry := range model.TopUnigrams(10) {
		fmt.Printf("  %s: %d\n", entry.Key, entry.Count)
	}
	fmt.Println("\nTop 10 bigrams:")
	for _, entry := range model.TopBigrams(10) {
		pair := strings.ReplaceAll(entry.Key, "|", "")
		fmt.Printf("  %s: %d\n", pair, entry.Count)
	}
}
