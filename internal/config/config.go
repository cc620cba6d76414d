package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds process settings read from the environment
type Config struct {
	Port            string
	PublicURL       string
	Debug           bool
	LogLevel        zerolog.Level
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// Load reads an optional .env file from the working directory, then the
// environment. Variables already set in the environment take precedence.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("reading .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:            "8080",
		LogLevel:        zerolog.InfoLevel,
		ShutdownTimeout: 10 * time.Second,
		Debug:           getenv("DEBUG") != "",
	}

	if port := strings.TrimSpace(getenv("PORT")); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n < 1 || n > 65535 {
			return Config{}, fmt.Errorf("invalid PORT %q", port)
		}
		cfg.Port = port
	}

	cfg.PublicURL = strings.TrimRight(strings.TrimSpace(getenv("PUBLIC_URL")), "/")
	if cfg.PublicURL == "" {
		cfg.PublicURL = "http://localhost:" + cfg.Port
	}

	if level := strings.TrimSpace(getenv("LOG_LEVEL")); level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return Config{}, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
		}
		cfg.LogLevel = parsed
	}
	if cfg.Debug {
		cfg.LogLevel = zerolog.DebugLevel
	}

	for _, origin := range strings.Split(getenv("ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	if raw := strings.TrimSpace(getenv("SHUTDOWN_TIMEOUT")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q", raw)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server
func (c Config) Addr() string {
	return ":" + c.Port
}

// OriginAllowed reports whether a websocket origin may connect. An empty
// allow list admits every origin.
func (c Config) OriginAllowed(origin string) bool {
	if len(c.AllowedOrigins) == 0 {
		return true
	}
	for _, o := range c.AllowedOrigins {
		if o == origin {
			return true
		}
	}
	return false
}
