package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/brdagent/internal/cli/formatter"
	"github.com/alexanderramin/brdagent/internal/timeline"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

func newTimelineCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeline [file|-]",
		Short: "Render a project schedule or saved orchestrator response as a timeline",
		Long: `Render a project schedule as a timeline table.

The input may be a bare schedule object with "phases", or a full orchestrator
response carrying "project_schedule".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _, err := readInput(cmd, app, args)
			if err != nil {
				return err
			}
			if !gjson.Valid(text) {
				return errors.New("input is not valid JSON")
			}

			tl := timeline.ProjectAny([]byte(text))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTimeline(tl))
			return nil
		},
	}

	return cmd
}
