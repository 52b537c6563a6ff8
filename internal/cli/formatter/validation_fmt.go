package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/brdagent/internal/brd"
	"github.com/alexanderramin/brdagent/internal/domain"
)

// FormatValidation renders a validation verdict for text read from source.
// When verbose is set, a valid document is echoed in indented form.
func FormatValidation(res domain.ValidationResult, source string, verbose bool) string {
	var b strings.Builder

	if source != "" {
		b.WriteString(Dim("  source: "+source) + "\n")
	}

	if !res.Valid {
		b.WriteString(StyleRed.Render("❌ Invalid BRD: "+res.Error) + "\n")
		return RenderBox("BRD Validation", b.String())
	}

	doc := res.Document
	b.WriteString(fmt.Sprintf("%s %s\n", StyleGreen.Render("✅ Valid BRD JSON"), KindPill(doc.Kind)))
	b.WriteString(Dim(fmt.Sprintf("  top-level keys: %d", len(doc.Fields))) + "\n")

	if verbose {
		if raw, err := brd.Canonical(*doc); err == nil {
			b.WriteString("\n")
			b.WriteString(Header("BRD Details"))
			b.WriteString("\n")
			b.WriteString(PrettyJSON(raw))
		}
	}

	return RenderBox("BRD Validation", b.String())
}
