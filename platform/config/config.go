// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// CatalogConfig provides settings for the product catalog backend.
type CatalogConfig interface {
	GetCatalogBaseURL() string
	GetCatalogTimeout() time.Duration
}

// CartConfig provides settings for the shopping cart backend.
type CartConfig interface {
	GetCartBaseURL() string
	GetCartTimeout() time.Duration
}

// QueryConfig provides settings for the natural-language query backend.
type QueryConfig interface {
	GetQueryBaseURL() string
	GetQueryTimeout() time.Duration
}

// BackendsConfig combines the settings for all three storefront backends.
type BackendsConfig interface {
	CatalogConfig
	CartConfig
	QueryConfig
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env            string
	HTTPAddr       string
	CORSAllowAll   bool
	CORSOrigins    []string
	CORSAllowCreds bool
	CatalogBaseURL string
	CatalogTimeout time.Duration
	CartBaseURL    string
	CartTimeout    time.Duration
	QueryBaseURL   string
	QueryTimeout   time.Duration
}

// Default per-backend timeouts. Catalog and cart are plain CRUD services;
// the query backend fronts a model call and needs far more headroom.
const (
	DefaultCatalogTimeout = 10 * time.Second
	DefaultCartTimeout    = 10 * time.Second
	DefaultQueryTimeout   = 30 * time.Second
)

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// CatalogConfig implementation
func (c *Config) GetCatalogBaseURL() string        { return c.CatalogBaseURL }
func (c *Config) GetCatalogTimeout() time.Duration { return c.CatalogTimeout }

// CartConfig implementation
func (c *Config) GetCartBaseURL() string        { return c.CartBaseURL }
func (c *Config) GetCartTimeout() time.Duration { return c.CartTimeout }

// QueryConfig implementation
func (c *Config) GetQueryBaseURL() string        { return c.QueryBaseURL }
func (c *Config) GetQueryTimeout() time.Duration { return c.QueryTimeout }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:            getEnv("APP_ENV", "development"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:   corsAllowAll,
		CORSOrigins:    corsOrigins,
		CORSAllowCreds: strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		CatalogBaseURL: getEnv("CATALOG_BASE_URL", "http://localhost:5001"),
		CatalogTimeout: durationOr(getEnv("CATALOG_TIMEOUT", ""), DefaultCatalogTimeout),
		CartBaseURL:    getEnv("CART_BASE_URL", "http://localhost:5002"),
		CartTimeout:    durationOr(getEnv("CART_TIMEOUT", ""), DefaultCartTimeout),
		QueryBaseURL:   getEnv("QUERY_BASE_URL", "http://localhost:5003"),
		QueryTimeout:   durationOr(getEnv("QUERY_TIMEOUT", ""), DefaultQueryTimeout),
	}

	if cfg.CatalogBaseURL == "" || cfg.CartBaseURL == "" || cfg.QueryBaseURL == "" {
		return nil, fmt.Errorf("CATALOG_BASE_URL, CART_BASE_URL and QUERY_BASE_URL are required")
	}
	if cfg.CatalogTimeout <= 0 || cfg.CartTimeout <= 0 || cfg.QueryTimeout <= 0 {
		return nil, fmt.Errorf("backend timeouts must be positive durations")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

// durationOr parses value as a duration, falling back when unset or invalid.
func durationOr(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
