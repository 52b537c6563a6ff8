package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Align controls horizontal placement of a column's cells.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// RenderTable renders a simple aligned table with a header separator line.
// Columns are padded to the widest visible cell, ignoring ANSI sequences.
func RenderTable(headers []string, rows [][]string) string {
	return RenderAlignedTable(headers, nil, rows)
}

// RenderAlignedTable is RenderTable with per-column alignment. Columns
// beyond len(align) are left aligned.
func RenderAlignedTable(headers []string, align []Align, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	cols := len(headers)
	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	const colGap = 2
	alignOf := func(i int) Align {
		if i < len(align) {
			return align[i]
		}
		return AlignLeft
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			if style != nil {
				cell = style(cell)
			}
			last := i == cols-1
			switch {
			case alignOf(i) == AlignRight:
				b.WriteString(strings.Repeat(" ", pad) + cell)
			case last:
				b.WriteString(cell)
			default:
				b.WriteString(cell + strings.Repeat(" ", pad))
			}
			if !last {
				b.WriteString(strings.Repeat(" ", colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, func(s string) string { return StyleHeader.Render(s) })

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		writeRow(row, nil)
	}

	return b.String()
}
