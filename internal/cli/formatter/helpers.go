package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

const dateLayout = "2006-01-02"

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner) + "\n"
	}

	return boxStyle.Render(content) + "\n"
}

// FormatDuration renders a week count as weeks, months or years.
func FormatDuration(weeks int) string {
	switch {
	case weeks < 4:
		return fmt.Sprintf("%d weeks", weeks)
	case weeks < 52:
		return fmt.Sprintf("%.1f months", roundTenth(float64(weeks)/4.33))
	default:
		return fmt.Sprintf("%.1f years", roundTenth(float64(weeks)/52))
	}
}

// WeeksBetween returns the whole number of weeks from start to finish, both
// YYYY-MM-DD. The second return is false if either date does not parse or
// finish precedes start.
func WeeksBetween(start, finish string) (int, bool) {
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return 0, false
	}
	f, err := time.Parse(dateLayout, finish)
	if err != nil {
		return 0, false
	}
	if f.Before(s) {
		return 0, false
	}
	days := f.Sub(s).Hours() / 24
	return int(math.Round(days / 7)), true
}

// PrettyJSON indents raw JSON with two spaces. Invalid input is returned as is.
func PrettyJSON(raw []byte) string {
	if !gjson.ValidBytes(raw) {
		return string(raw)
	}
	return string(pretty.PrettyOptions(raw, &pretty.Options{Width: 80, Indent: "  "}))
}

func roundTenth(f float64) float64 {
	return math.Round(f*10) / 10
}
