// Package logging configures the structured logger shared by the CLI and
// the orchestrator client.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// Config holds logger settings.
type Config struct {
	Level      string
	JSON       bool
	Output     io.Writer
	TimeFormat string
}

// DefaultConfig logs warnings and above as text to stderr.
func DefaultConfig() Config {
	return Config{
		Level:      "warn",
		Output:     os.Stderr,
		TimeFormat: "15:04:05",
	}
}

// LoadConfig applies BRDAGENT_LOG_LEVEL and BRDAGENT_LOG_JSON over the defaults.
func LoadConfig() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("BRDAGENT_LOG_LEVEL"); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv("BRDAGENT_LOG_JSON"); v != "" {
		cfg.JSON, _ = strconv.ParseBool(v)
	}
	return cfg
}

// New builds a logger from cfg. Unknown levels fall back to warn.
func New(cfg Config) *log.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           ParseLevel(cfg.Level),
		Prefix:          "brdagent",
	})
	if cfg.JSON {
		logger.SetFormatter(log.JSONFormatter)
	}
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// ParseLevel maps a level name to a log.Level, defaulting to warn.
func ParseLevel(s string) log.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}
