package formatter

import (
	"strings"

	"github.com/alexanderramin/brdagent/internal/domain"
	"github.com/alexanderramin/brdagent/internal/timeline"
)

const inferredMarker = "*"

// FormatTimeline renders timeline entries as a table. Entries whose dates
// were defaulted are marked so degenerate spans are not mistaken for data.
func FormatTimeline(tl timeline.Timeline) string {
	var b strings.Builder

	if tl.Empty() {
		b.WriteString(Dim("  No schedule phases in response.") + "\n")
	} else {
		headers := []string{"TASK", "TYPE", "START", "FINISH", "DURATION"}
		align := []Align{AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignRight}
		rows := make([][]string, 0, len(tl.Entries))
		inferred := false

		for _, e := range tl.Entries {
			label := e.Label
			if e.Kind == domain.EntryPhase {
				label = Bold(label)
			}
			if e.Inferred {
				label += StyleYellow.Render(" " + inferredMarker)
				inferred = true
			}
			rows = append(rows, []string{
				label,
				EntryStyle(e.Kind).Render(e.Kind.String()),
				e.Start,
				e.Finish,
				entryDuration(e),
			})
		}

		b.WriteString(RenderAlignedTable(headers, align, rows))
		if inferred {
			b.WriteString("\n")
			b.WriteString(StyleYellow.Render("  "+inferredMarker) + Dim(" date missing from schedule; default applied") + "\n")
		}
	}

	if tl.Note != "" {
		b.WriteString("\n")
		b.WriteString("  💡 " + tl.Note + "\n")
	}

	return RenderBox("Project Timeline", b.String())
}

func entryDuration(e domain.TimelineEntry) string {
	if e.Kind == domain.EntryMilestone {
		return Dim("-")
	}
	weeks, ok := WeeksBetween(e.Start, e.Finish)
	if !ok {
		return Dim("?")
	}
	return FormatDuration(weeks)
}
