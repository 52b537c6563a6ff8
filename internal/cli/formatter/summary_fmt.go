package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/brdagent/internal/domain"
	"github.com/alexanderramin/brdagent/internal/report"
)

// FormatSummary renders the processing summary box.
func FormatSummary(s domain.ResponseSummary, requestID string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("  Status:           %s\n", StatusIndicator(s)))
	b.WriteString(fmt.Sprintf("  Stages Completed: %s\n", Bold(fmt.Sprintf("%d", len(s.StagesCompleted)))))
	if at := s.CompletedAt(); at != "" {
		b.WriteString(fmt.Sprintf("  Completed At:     %s\n", StyleFg.Render(at)))
	}
	if requestID != "" {
		b.WriteString(fmt.Sprintf("  Request:          %s\n", Dim(requestID)))
	}

	if len(s.StagesCompleted) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Completed Stages"))
		b.WriteString("\n")
		for _, stage := range s.StagesCompleted {
			b.WriteString(fmt.Sprintf("  %s %s\n", StyleGreen.Render("✓"), report.StageLabel(stage)))
		}
	}

	return RenderBox("Processing Summary", b.String())
}

// ResultFilename suggests a file name for saving the full response.
func ResultFilename(s domain.ResponseSummary) string {
	return fmt.Sprintf("brd_processing_result_%s.json", s.DateStamp())
}
