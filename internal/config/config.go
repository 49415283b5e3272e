package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"wordvis/internal/indexer"
)

// Config holds all configuration for the application.
type Config struct {
	TranscriptPath string
	StopwordsFile  string
	ChunkSize      int
	APIPort        string
	LogLevel       slog.Level
	LogFormat      string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates required fields.
// If a .env file exists in the current directory or a parent directory, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	_ = godotenv.Load() // Try current directory

	// Walk up a few levels looking for a .env file
	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		TranscriptPath: getEnv("TRANSCRIPT_PATH", ""),
		StopwordsFile:  getEnv("STOPWORDS_FILE", ""),
		APIPort:        getEnv("API_PORT", "8050"),
		LogFormat:      strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	chunkSize, err := ParseChunkSize(getEnv("CHUNK_SIZE", strconv.Itoa(indexer.DefaultChunkSize)))
	if err != nil {
		return nil, err
	}
	cfg.ChunkSize = chunkSize

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	return cfg, nil
}

// Validate checks the fields that commands need before building an index.
func (c *Config) Validate() error {
	if c.TranscriptPath == "" {
		return fmt.Errorf("TRANSCRIPT_PATH is required")
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("%w: CHUNK_SIZE must be greater than 0", indexer.ErrInvalidConfiguration)
	}
	return nil
}

// ParseChunkSize parses a CHUNK_SIZE value.
// Non-integer and non-positive values fail with indexer.ErrInvalidConfiguration.
func ParseChunkSize(s string) (int, error) {
	size, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: CHUNK_SIZE must be a valid integer: %v", indexer.ErrInvalidConfiguration, err)
	}
	if size <= 0 {
		return 0, fmt.Errorf("%w: CHUNK_SIZE must be greater than 0, got %d", indexer.ErrInvalidConfiguration, size)
	}
	return size, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error: %w", err)
	}
	return level, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
