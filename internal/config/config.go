package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Upload limits
	MaxUploadBytes int64

	// Outline cache
	CacheTTL             time.Duration
	CacheCleanupInterval time.Duration

	// Extraction and rendering
	HeadingMarkerClass string
	RenderRawHTML      bool

	// Scroll-spy
	ScrollThreshold float64
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		APIKey: os.Getenv("DOCOUTLINE_API_KEY"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 20971520), // 20MB

		CacheTTL:             envDuration("CACHE_TTL", 1*time.Hour),
		CacheCleanupInterval: envDuration("CACHE_CLEANUP_INTERVAL", 5*time.Minute),

		HeadingMarkerClass: os.Getenv("HEADING_MARKER_CLASS"),
		RenderRawHTML:      envBool("RENDER_RAW_HTML", false),

		ScrollThreshold: envFloat("SCROLL_THRESHOLD", 100),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 20971520
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 1 * time.Hour
	}
	if cfg.CacheCleanupInterval <= 0 {
		cfg.CacheCleanupInterval = 5 * time.Minute
	}
	if cfg.ScrollThreshold < 0 {
		cfg.ScrollThreshold = 100
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("DOCOUTLINE_API_KEY is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
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

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
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
