package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/alexanderramin/brdagent/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Input methods offered by the interactive form.
const (
	MethodFile  = "file"
	MethodPaste = "paste"
)

// InputChoice is filled in by the interactive input form.
type InputChoice struct {
	Method string
	Path   string
	Text   string
}

// brdHuhTheme returns a huh theme using the formatter's Gruvbox palette.
func brdHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// newInputForm asks for a file path or pasted JSON, depending on the
// chosen method.
func newInputForm(choice *InputChoice) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Input Method").
				Options(
					huh.NewOption("Upload JSON file", MethodFile),
					huh.NewOption("Paste JSON text", MethodPaste),
				).
				Value(&choice.Method),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("BRD File").
				Placeholder("sample_brd.json").
				Value(&choice.Path).
				Validate(validateReadableFile),
		).WithHideFunc(func() bool { return choice.Method != MethodFile }),
		huh.NewGroup(
			huh.NewText().
				Title("Paste your BRD JSON").
				Placeholder(`{"project": {"name": "..."}}`).
				Lines(12).
				Value(&choice.Text).
				Validate(validateNonBlank),
		).WithHideFunc(func() bool { return choice.Method != MethodPaste }),
	).WithTheme(brdHuhTheme()).WithShowHelp(false)
}

func runInputForm(choice *InputChoice) error {
	return newInputForm(choice).Run()
}

func validateReadableFile(s string) error {
	path := strings.TrimSpace(s)
	if path == "" {
		return errors.New("file path is required")
	}
	info, err := os.Stat(path)
	if err != nil {
		return errors.New("file not found")
	}
	if info.IsDir() {
		return errors.New("path is a directory")
	}
	return nil
}

func validateNonBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("input is empty")
	}
	return nil
}
