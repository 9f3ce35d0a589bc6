package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dgallion1/docrender/internal/markdown"
)

type Config struct {
	Port string

	// Auth. Empty disables bearer auth.
	APIKey string

	// Markdown layout
	MarkdownMargin int
	MarkdownIndent int

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Request limits
	MaxUploadBytes int64
	MaxRenderBytes int64

	// Job state
	JobTTL time.Duration

	// Latency stats window
	StatsWindow time.Duration

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("DOCRENDER_API_KEY"),

		MarkdownMargin: envInt("MARKDOWN_MARGIN", 80),
		MarkdownIndent: envInt("MARKDOWN_INDENT", 4),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB
		MaxRenderBytes: envInt64("MAX_RENDER_BYTES", 10485760), // 10MB

		JobTTL:      envDuration("JOB_TTL", 1*time.Hour),
		StatsWindow: envDuration("STATS_WINDOW", 1*time.Hour),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
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
	if cfg.MaxRenderBytes <= 0 {
		cfg.MaxRenderBytes = 10485760
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = 1 * time.Hour
	}

	return cfg
}

// Validate rejects layout settings the formatter cannot honour.
func (c Config) Validate() error {
	var errs []error
	if c.MarkdownMargin <= 0 {
		errs = append(errs, fmt.Errorf("MARKDOWN_MARGIN must be positive, got %d", c.MarkdownMargin))
	}
	if c.MarkdownIndent < 0 {
		errs = append(errs, fmt.Errorf("MARKDOWN_INDENT must not be negative, got %d", c.MarkdownIndent))
	}
	return errors.Join(errs...)
}

// Markdown returns the formatter options.
func (c Config) Markdown() markdown.Options {
	return markdown.Options{Margin: c.MarkdownMargin, Indent: c.MarkdownIndent}
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

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
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
