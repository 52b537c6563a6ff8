package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

const (
	stdinSource  = "stdin"
	pastedSource = "pasted text"
)

// errNoInput is returned when nothing was supplied on stdin or interactively.
var errNoInput = errors.New("no BRD input provided")

// readInput resolves the document text for a command. An explicit argument
// is a file path, or "-" for stdin. Without one, an interactive terminal
// gets the input form and anything else is read from stdin.
func readInput(cmd *cobra.Command, app *App, args []string) (text, source string, err error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	}

	if len(args) == 0 && app.interactive() {
		return promptInput(app)
	}

	in := app.In
	if in == nil {
		in = cmd.InOrStdin()
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", "", fmt.Errorf("reading stdin: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", "", errNoInput
	}
	return string(data), stdinSource, nil
}

func promptInput(app *App) (string, string, error) {
	prompt := app.PromptInput
	if prompt == nil {
		prompt = runInputForm
	}

	var choice InputChoice
	if err := prompt(&choice); err != nil {
		return "", "", err
	}

	switch choice.Method {
	case MethodFile:
		path := strings.TrimSpace(choice.Path)
		data, err := os.ReadFile(path)
		if err != nil {
			return "", "", fmt.Errorf("reading %s: %w", path, err)
		}
		return string(data), path, nil
	case MethodPaste:
		if strings.TrimSpace(choice.Text) == "" {
			return "", "", errNoInput
		}
		return choice.Text, pastedSource, nil
	default:
		return "", "", errNoInput
	}
}
