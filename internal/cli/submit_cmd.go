package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/brdagent/internal/cli/formatter"
	"github.com/alexanderramin/brdagent/internal/domain"
	"github.com/alexanderramin/brdagent/internal/service"
	"github.com/spf13/cobra"
)

type submitOptions struct {
	conn       connectionFlags
	jsonc      bool
	showJSON   bool
	noProgress bool
	save       bool
	output     string
}

func newSubmitCmd(app *App) *cobra.Command {
	var opts submitOptions

	cmd := &cobra.Command{
		Use:   "submit [file|-]",
		Short: "Validate a BRD and process it through the orchestrator",
		Long: `Validate a BRD document, submit it to the orchestrator webhook and show
the processing summary and project timeline.

With no file argument on an interactive terminal, a form asks for a file
path or pasted JSON. Otherwise the document is read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubmit(cmd, app, &opts, args)
		},
	}

	cmd.Flags().AddFlagSet(opts.conn.flagSet(app.Config))
	cmd.Flags().BoolVar(&opts.jsonc, "jsonc", false, "Allow comments and trailing commas")
	cmd.Flags().BoolVar(&opts.showJSON, "json", false, "Also print the full orchestrator response")
	cmd.Flags().BoolVar(&opts.noProgress, "no-progress", false, "Disable the progress spinner")
	cmd.Flags().BoolVar(&opts.save, "save", false, "Save the full response as brd_processing_result_<date>.json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Save the full response to this path")

	return cmd
}

func runSubmit(cmd *cobra.Command, app *App, opts *submitOptions, args []string) error {
	out := cmd.OutOrStdout()

	text, source, err := readInput(cmd, app, args)
	if err != nil {
		return err
	}

	cfg := opts.conn.apply(app.Config)
	svc := app.service(cfg)

	res := svc.Validate(cmd.Context(), text, opts.jsonc)
	if !res.Valid {
		fmt.Fprint(out, formatter.FormatValidation(res, source, false))
		return ErrReported
	}
	doc := *res.Document

	process := func(ctx context.Context) (*service.ProcessResult, error) {
		return svc.Process(ctx, doc)
	}

	var result *service.ProcessResult
	if app.interactive() && !opts.noProgress {
		result, err = runWithProgress(cmd.Context(), cmd.ErrOrStderr(), cfg.Endpoint, process)
	} else {
		result, err = process(cmd.Context())
	}
	if err != nil {
		return err
	}

	if !result.OK() {
		fmt.Fprint(out, formatter.FormatFailure(result.Outcome.Failure, result.Outcome.RequestID))
		return ErrReported
	}

	payload := result.Outcome.Success.Payload
	fmt.Fprint(out, formatter.FormatSummary(result.Summary, result.Outcome.RequestID))
	fmt.Fprint(out, formatter.FormatTimeline(result.Timeline))

	if opts.showJSON {
		fmt.Fprintln(out, formatter.Header("Full Response"))
		fmt.Fprint(out, formatter.PrettyJSON(payload))
	}

	if path := savePath(opts, result.Summary); path != "" {
		if err := saveResponse(out, path, payload); err != nil {
			return err
		}
	}

	return nil
}

func savePath(opts *submitOptions, summary domain.ResponseSummary) string {
	switch {
	case opts.output != "":
		return opts.output
	case opts.save:
		return formatter.ResultFilename(summary)
	default:
		return ""
	}
}

func saveResponse(out io.Writer, path string, payload []byte) error {
	if err := os.WriteFile(path, []byte(formatter.PrettyJSON(payload)), 0o644); err != nil {
		return fmt.Errorf("saving response: %w", err)
	}
	fmt.Fprintln(out, formatter.Dim("📥 Full response saved to "+path))
	return nil
}
