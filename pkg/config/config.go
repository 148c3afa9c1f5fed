// Package config holds environment-driven settings for the rating service:
// named constructors for common deployment profiles, small helpers for
// clamped and defaulted environment lookups, env-first with hardcoded
// fallback defaults.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"strconv"
	"strings"
)

// Config holds everything the server and job coordinator need at startup.
type Config struct {
	Port int

	MLServiceURL string
	QueueURL     string
	DatabaseURL  string

	CORSOrigins []string
	LogLevel    string

	MaxUploadMB       int
	AllowedExtensions []string

	// ExampleSetsDir, if non-empty, is globbed for *.yaml files overriding
	// the hardcoded what-if replacement-style example sentences.
	ExampleSetsDir string

	EnableMetrics    bool
	EnableJSONLogs   bool

	// BlockThreshold/WarnThreshold are carried as settings only; the rating
	// cascade does not read them. Its thresholds come from the named
	// rating.Profile selected by RatingProfile.
	BlockThreshold float64
	WarnThreshold  float64

	RatingProfile string // "standard" | "strict" | "permissive"

	MLTimeoutSeconds  int
	MLRetryBaseMillis int
	MLMaxRetries      int

	sessionSecret string
}

// NewDefaultConfig returns the standard-sensitivity configuration.
func NewDefaultConfig() *Config {
	return &Config{
		Port:              GetEnvInt("RATING_PORT", 8080),
		MLServiceURL:      getEnvString("RATING_ML_SERVICE_URL", "http://localhost:8090"),
		QueueURL:          getEnvString("RATING_QUEUE_URL", "redis://localhost:6379/0"),
		DatabaseURL:       getEnvString("RATING_DATABASE_URL", "postgres://localhost:5432/ratingcore"),
		CORSOrigins:       splitCSV(getEnvString("RATING_CORS_ORIGINS", "*")),
		LogLevel:          getEnvString("RATING_LOG_LEVEL", "info"),
		MaxUploadMB:       GetEnvInt("RATING_MAX_UPLOAD_MB", 10),
		AllowedExtensions: splitCSV(getEnvString("RATING_ALLOWED_EXTENSIONS", ".txt,.fountain,.fdx")),
		ExampleSetsDir:    getEnvString("RATING_EXAMPLE_SETS_DIR", ""),
		EnableMetrics:     getEnvBool("RATING_ENABLE_METRICS", false),
		EnableJSONLogs:    getEnvBool("RATING_JSON_LOGS", false),
		BlockThreshold:    0.75,
		WarnThreshold:     0.5,
		RatingProfile:     "standard",
		MLTimeoutSeconds:  300,
		MLRetryBaseMillis: 500,
		MLMaxRetries:      3,
		sessionSecret:      getSessionSecret(),
	}
}

// NewLocalConfig is tuned for running entirely on a developer machine:
// localhost services, no CORS restriction.
func NewLocalConfig() *Config {
	cfg := NewDefaultConfig()
	cfg.MLServiceURL = "http://localhost:8090"
	cfg.QueueURL = "redis://localhost:6379/0"
	cfg.CORSOrigins = []string{"*"}
	return cfg
}

// NewHighSecurityConfig selects the "strict" rating.Profile, whose lower
// cascade thresholds make content trip stricter ratings sooner, and lowers
// BlockThreshold/WarnThreshold.
func NewHighSecurityConfig() *Config {
	cfg := NewDefaultConfig()
	cfg.BlockThreshold = 0.6
	cfg.WarnThreshold = 0.35
	cfg.RatingProfile = "strict"
	return cfg
}

// SessionSecret returns the process's session secret (env-provided or
// generated once at construction).
func (c *Config) SessionSecret() string { return c.sessionSecret }

func getSessionSecret() string {
	if v := os.Getenv("RATING_SESSION_SECRET"); v != "" {
		return v
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is exceptional; fall back to a fixed dev
		// secret rather than crash the config loader.
		return "0000000000000000000000000000000000000000000000000000000000000000"[:64]
	}
	return hex.EncodeToString(buf)
}

func clampInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// GetEnvInt reads an int environment variable, falling back to def on
// absence or parse failure.
func GetEnvInt(name string, def int) int {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvString(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func getEnvBool(name string, def bool) bool {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
