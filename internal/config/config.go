package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dgallion1/docoutline/internal/outline"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Section chunking
	ChunkSize    int
	ChunkOverlap int

	// Job state
	JobTTL time.Duration

	// Batch mode
	InputDir  string
	OutputDir string

	LogLevel slog.Level

	// Optional YAML overrides for outline.Params.
	HeuristicsFile string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("OUTLINE_API_KEY"),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		ChunkSize:    envInt("CHUNK_SIZE", 500),
		ChunkOverlap: envInt("CHUNK_OVERLAP", 50),

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		InputDir:  envOr("INPUT_DIR", "/app/input"),
		OutputDir: envOr("OUTPUT_DIR", "/app/output"),

		LogLevel: ParseLogLevel(os.Getenv("LOG_LEVEL")),

		HeuristicsFile: os.Getenv("HEURISTICS_FILE"),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 500
	}
	if cfg.ChunkOverlap < 0 {
		cfg.ChunkOverlap = 50
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

// Validate checks the settings the HTTP server cannot run without.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("OUTLINE_API_KEY is required")
	}
	if c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("CHUNK_OVERLAP (%d) must be smaller than CHUNK_SIZE (%d)", c.ChunkOverlap, c.ChunkSize)
	}
	return nil
}

// Heuristics returns the outline parameters, with HeuristicsFile applied
// over the defaults when it is set.
func (c Config) Heuristics() (outline.Params, error) {
	if c.HeuristicsFile == "" {
		return outline.DefaultParams(), nil
	}
	return LoadHeuristics(c.HeuristicsFile)
}

// LoadHeuristics reads a YAML file of outline parameters. Keys missing from
// the file keep their default values.
func LoadHeuristics(path string) (outline.Params, error) {
	params := outline.DefaultParams()
	data, err := os.ReadFile(path)
	if err != nil {
		return params, fmt.Errorf("read heuristics: %w", err)
	}
	if err := yaml.Unmarshal(data, &params); err != nil {
		return params, fmt.Errorf("parse heuristics %s: %w", path, err)
	}
	if params.Visual.MinSamples <= 0 || params.Visual.Eps <= 0 {
		return params, fmt.Errorf("heuristics %s: eps and min_samples must be positive", path)
	}
	if params.Repeating.QuorumDiv <= 0 {
		return params, fmt.Errorf("heuristics %s: quorum_divisor must be positive", path)
	}
	return params, nil
}

// ParseLogLevel maps debug|info|warn|error to a slog level. Anything else
// is info.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
