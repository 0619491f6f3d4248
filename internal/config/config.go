package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds process-level configuration. User-facing date settings live
// in the database, not here.
type Config struct {
	DBPath       string
	LogLevel     slog.Level
	LogFormat    string // "text" or "json"
	Now          time.Time
	HistoryLimit int
}

// DefaultConfig returns a Config with sensible defaults. The database lives
// under ~/.nldates unless the home directory is unknown.
func DefaultConfig() Config {
	dbPath := "nldates.db"
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".nldates", "nldates.db")
	}
	return Config{
		DBPath:       dbPath,
		LogLevel:     slog.LevelWarn,
		LogFormat:    "text",
		HistoryLimit: 20,
	}
}

// LoadConfig reads configuration from environment variables, falling back to
// defaults for any unset or malformed values.
func LoadConfig() Config {
	return LoadConfigFrom(os.Getenv)
}

// LoadConfigFrom is LoadConfig with an explicit lookup.
func LoadConfigFrom(getenv func(string) string) Config {
	cfg := DefaultConfig()

	if v := getenv("NLDATES_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := getenv("NLDATES_LOG_LEVEL"); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(v)); err == nil {
			cfg.LogLevel = lvl
		}
	}
	if v := strings.ToLower(getenv("NLDATES_LOG_FORMAT")); v == "json" || v == "text" {
		cfg.LogFormat = v
	}
	if v := getenv("NLDATES_NOW"); v != "" {
		if t, err := parseNow(v); err == nil {
			cfg.Now = t
		}
	}
	if v := getenv("NLDATES_HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HistoryLimit = n
		}
	}
	return cfg
}

// Clock returns the reference clock: the pinned instant if NLDATES_NOW was
// set, otherwise time.Now.
func (c Config) Clock() func() time.Time {
	if c.Now.IsZero() {
		return time.Now
	}
	pinned := c.Now
	return func() time.Time { return pinned }
}

// NewLogger builds the process logger writing to w.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseNow(v string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized NLDATES_NOW value %q", v)
}
