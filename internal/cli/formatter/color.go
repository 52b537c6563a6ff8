package formatter

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/alexanderramin/brdagent/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// EntryStyle returns the style used for a timeline entry kind.
func EntryStyle(kind domain.EntryKind) lipgloss.Style {
	switch kind {
	case domain.EntryPhase:
		return StyleBlue
	case domain.EntryMilestone:
		return StyleGreen
	default:
		return StyleDim
	}
}

// StatusIndicator renders the orchestrator status with a pass/fail icon,
// e.g. "✅ Success".
func StatusIndicator(s domain.ResponseSummary) string {
	label := titleCase(s.Status)
	if s.Succeeded() {
		return StyleGreen.Render("✅ " + label)
	}
	return StyleRed.Render("❌ " + label)
}

// KindPill renders a document kind as a short tag.
func KindPill(kind domain.DocumentKind) string {
	switch kind {
	case domain.DocumentDirect:
		return StyleBlue.Render("[direct]")
	case domain.DocumentRawText:
		return StylePurple.Render("[raw text]")
	case domain.DocumentWrapped:
		return StyleYellow.Render("[wrapped]")
	default:
		return StyleDim.Render("[unknown]")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len([]rune(upper)))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
