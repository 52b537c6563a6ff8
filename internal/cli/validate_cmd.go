package cli

import (
	"fmt"

	"github.com/alexanderramin/brdagent/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newValidateCmd(app *App) *cobra.Command {
	var jsonc, verbose bool

	cmd := &cobra.Command{
		Use:   "validate [file|-]",
		Short: "Check that a BRD document is well-formed and has a known shape",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, source, err := readInput(cmd, app, args)
			if err != nil {
				return err
			}

			res := app.service(app.Config).Validate(cmd.Context(), text, jsonc)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatValidation(res, source, verbose))
			if !res.Valid {
				return ErrReported
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonc, "jsonc", false, "Allow comments and trailing commas")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the normalized document")

	return cmd
}
