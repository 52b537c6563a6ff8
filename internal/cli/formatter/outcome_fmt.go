package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/brdagent/internal/domain"
)

// FormatFailure renders a submission failure as a short message plus a
// diagnostic block.
func FormatFailure(f *domain.Failure, requestID string) string {
	var b strings.Builder

	b.WriteString(StyleRed.Render("❌ Processing failed: "+f.Message) + "\n")
	b.WriteString(Dim(fmt.Sprintf("  kind: %s", f.Kind)) + "\n")
	if f.StatusCode != nil {
		b.WriteString(fmt.Sprintf("  HTTP Status Code: %d\n", *f.StatusCode))
	}
	if requestID != "" {
		b.WriteString(Dim("  request: "+requestID) + "\n")
	}
	if f.Debug != "" {
		b.WriteString("\n")
		b.WriteString(Header("Debug Information"))
		b.WriteString("\n")
		b.WriteString(f.Debug + "\n")
	}

	return RenderBox("Submission", b.String())
}
