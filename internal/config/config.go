package config

import (
	"os"
	"strconv"
)

// Config holds all winnow configuration.
type Config struct {
	Normalize NormalizeConfig
	Concat    ConcatConfig
	Logging   LoggingConfig
}

// NormalizeConfig holds defaults for the normalize command.
type NormalizeConfig struct {
	Output    string
	Discarded string
	Dedupe    bool
	Encoding  string
}

// ConcatConfig holds defaults for the concat command.
type ConcatConfig struct {
	SourceDir string
	Output    string
	Dedupe    bool
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level string // "debug", "info", "warn", "error"
}

// Load reads configuration from environment variables with sensible defaults.
// CLI flags override these values.
func Load() Config {
	return Config{
		Normalize: NormalizeConfig{
			Output:    getenv("WINNOW_OUTPUT", "normalized.jsonl"),
			Discarded: getenv("WINNOW_DISCARDED", "discarded.jsonl"),
			Dedupe:    getenvBool("WINNOW_DEDUPE", false),
			Encoding:  getenv("WINNOW_ENCODING", "utf-8"),
		},
		Concat: ConcatConfig{
			SourceDir: getenv("WINNOW_CONCAT_DIR", "norm_jsonl"),
			Output:    getenv("WINNOW_CONCAT_OUTPUT", "combined.jsonl"),
			Dedupe:    getenvBool("WINNOW_CONCAT_DEDUPE", true),
		},
		Logging: LoggingConfig{
			Level: getenv("WINNOW_LOG_LEVEL", "info"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
