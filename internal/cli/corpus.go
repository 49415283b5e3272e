package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"wordvis/internal/config"
	"wordvis/internal/indexer"
	"wordvis/internal/stopwords"
)

// loadConfig reads the environment and applies command-line overrides.
// A positional argument replaces TRANSCRIPT_PATH.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if len(args) > 0 {
		cfg.TranscriptPath = args[0]
	}
	if cmd.Flags().Changed("chunk-size") {
		cfg.ChunkSize, _ = cmd.Flags().GetInt("chunk-size")
	}
	if path, _ := cmd.Flags().GetString("stopwords"); path != "" {
		cfg.StopwordsFile = path
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogging installs the default slog logger writing to w.
func setupLogging(cfg *config.Config, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)
}

// buildIndex loads the transcript and stopwords named by cfg and indexes them.
func buildIndex(ctx context.Context, cfg *config.Config) (*indexer.Index, error) {
	stop, err := stopwords.Load(cfg.StopwordsFile)
	if err != nil {
		return nil, err
	}
	return indexer.NewPipeline(cfg.TranscriptPath, cfg.ChunkSize, stop).Build(ctx)
}
