package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/specdiff/detector"
	"github.com/erraggy/specdiff/differ"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Detection defaults.
	SeverityThreshold   differ.Severity
	IncludeDeprecations bool

	// Batch defaults.
	BatchConcurrency int
	MaxBatchFiles    int

	// Input limits.
	MaxInlineSize int64
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from SPECDIFF_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		SeverityThreshold:   envSeverity("SPECDIFF_SEVERITY_THRESHOLD", differ.SeverityInfo),
		IncludeDeprecations: envBool("SPECDIFF_INCLUDE_DEPRECATIONS", true),
		BatchConcurrency:    envInt("SPECDIFF_BATCH_CONCURRENCY", detector.DefaultConcurrency),
		MaxBatchFiles:       envInt("SPECDIFF_MAX_BATCH_FILES", 50),
		MaxInlineSize:       int64(envInt("SPECDIFF_MAX_INLINE_SIZE", 10*1024*1024)),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envSeverity(key string, fallback differ.Severity) differ.Severity {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	sev, err := detector.ParseSeverity(v)
	if err != nil {
		slog.Warn("invalid severity env var, using default", "key", key, "value", v, "default", fallback.String())
		return fallback
	}
	return sev
}
