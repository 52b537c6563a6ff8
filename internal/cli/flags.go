package cli

import (
	"time"

	"github.com/alexanderramin/brdagent/internal/orchestrator"
	"github.com/spf13/pflag"
)

// connectionFlags overrides the environment-resolved orchestrator config.
type connectionFlags struct {
	endpoint string
	timeout  time.Duration
}

func (f *connectionFlags) flagSet(defaults orchestrator.Config) *pflag.FlagSet {
	fs := pflag.NewFlagSet("connection", pflag.ContinueOnError)
	fs.StringVar(&f.endpoint, "endpoint", defaults.Endpoint, "Orchestrator webhook URL (env ORCHESTRATOR_URL)")
	fs.DurationVar(&f.timeout, "timeout", defaults.Timeout, "Request timeout (env BRDAGENT_TIMEOUT)")
	return fs
}

func (f *connectionFlags) apply(base orchestrator.Config) orchestrator.Config {
	cfg := base
	cfg.Endpoint = f.endpoint
	if f.timeout > 0 {
		cfg.Timeout = f.timeout
	}
	return cfg
}
