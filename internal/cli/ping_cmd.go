package cli

import (
	"fmt"

	"github.com/alexanderramin/brdagent/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPingCmd(app *App) *cobra.Command {
	var conn connectionFlags

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check whether the orchestrator endpoint answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := conn.apply(app.Config)
			out := cmd.OutOrStdout()
			if app.submitter(cfg).Available(cmd.Context()) {
				fmt.Fprintln(out, formatter.StyleGreen.Render("✅ Orchestrator reachable at "+cfg.Endpoint))
				return nil
			}
			fmt.Fprintln(out, formatter.StyleRed.Render("❌ Orchestrator unreachable at "+cfg.Endpoint))
			return ErrReported
		},
	}

	cmd.Flags().AddFlagSet(conn.flagSet(app.Config))

	return cmd
}
