package orchestrator

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

const (
	// DefaultEndpoint is the local development webhook of the orchestrator.
	DefaultEndpoint = "http://localhost:5678/webhook/orchestrator/process-brd-v2"

	// DefaultTimeout bounds a single submission.
	DefaultTimeout = 180 * time.Second

	// DefaultPreviewLimit caps how much of a raw body is kept for diagnostics.
	DefaultPreviewLimit = 500
)

// Config holds the settings of an orchestrator Client.
type Config struct {
	Endpoint     string
	Timeout      time.Duration
	PreviewLimit int
}

// DefaultConfig returns a Config pointing at the local development endpoint.
func DefaultConfig() Config {
	return Config{
		Endpoint:     DefaultEndpoint,
		Timeout:      DefaultTimeout,
		PreviewLimit: DefaultPreviewLimit,
	}
}

// LoadConfig reads orchestrator configuration from environment variables,
// falling back to defaults for any unset or invalid values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("ORCHESTRATOR_URL"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("BRDAGENT_TIMEOUT"); v != "" {
		if d, ok := ParseTimeout(v); ok {
			cfg.Timeout = d
		}
	}

	return cfg
}

// ParseTimeout accepts a Go duration ("90s", "3m") or a bare number of
// seconds. Non-positive values are rejected.
func ParseTimeout(v string) (time.Duration, bool) {
	if d, err := time.ParseDuration(v); err == nil {
		return d, d > 0
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second, true
	}
	return 0, false
}

// Validate checks that the endpoint is an absolute http(s) URL.
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return ErrEmptyEndpoint
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrInvalidEndpoint, c.Endpoint)
	}
	return nil
}

func (c Config) previewLimit() int {
	if c.PreviewLimit > 0 {
		return c.PreviewLimit
	}
	return DefaultPreviewLimit
}

func (c Config) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultTimeout
}
