package cli

import (
	"errors"
	"io"

	"github.com/alexanderramin/brdagent/internal/logging"
	"github.com/alexanderramin/brdagent/internal/orchestrator"
	"github.com/alexanderramin/brdagent/internal/service"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// ErrReported signals that a command already rendered its failure and the
// process should exit non-zero without printing anything else.
var ErrReported = errors.New("failure already reported")

// App holds the resolved configuration and collaborators used by commands.
type App struct {
	Config orchestrator.Config
	Logger *log.Logger

	// NewSubmitter builds the orchestrator client for a resolved config.
	// Defaults to orchestrator.NewClient.
	NewSubmitter func(cfg orchestrator.Config) orchestrator.Submitter

	// Observers receive use-case events from the BRD service.
	Observers []service.UseCaseObserver

	// IsInteractive reports whether stdin is a terminal. When nil the
	// CLI assumes it is not.
	IsInteractive func() bool

	// PromptInput collects BRD input interactively. Defaults to a huh form.
	PromptInput func(choice *InputChoice) error

	// In is read for "-" and piped input. Defaults to the command's stdin.
	In io.Reader
}

// NewRootCmd creates the top-level "brdagent" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	if app.Logger == nil {
		app.Logger = logging.Discard()
	}

	root := &cobra.Command{
		Use:           "brdagent",
		Short:         "Validate BRD documents and run them through the orchestrator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newValidateCmd(app),
		newSubmitCmd(app),
		newTimelineCmd(app),
		newPingCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) submitter(cfg orchestrator.Config) orchestrator.Submitter {
	if a.NewSubmitter != nil {
		return a.NewSubmitter(cfg)
	}
	return orchestrator.NewClient(cfg,
		orchestrator.NewLogObserver(a.Logger),
		orchestrator.WithLogger(a.Logger),
	)
}

func (a *App) service(cfg orchestrator.Config) service.BRDService {
	return service.NewBRDService(a.submitter(cfg), a.Observers...)
}
