package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/brdagent/internal/domain"
	"github.com/alexanderramin/brdagent/internal/timeline"
)

// ErrInvalidDocument is returned by Process when given a zero document.
var ErrInvalidDocument = errors.New("document has no recognized shape")

// ProcessResult bundles everything derived from one submission. Summary and
// Timeline are only populated when the outcome succeeded.
type ProcessResult struct {
	Outcome  domain.SubmissionOutcome
	Summary  domain.ResponseSummary
	Timeline timeline.Timeline
}

// OK reports whether the orchestrator accepted the document.
func (r *ProcessResult) OK() bool { return r.Outcome.OK() }

// BRDService validates documents and runs them through the orchestrator.
type BRDService interface {
	// Validate classifies text. When lenient is set, comments and trailing
	// commas are tolerated.
	Validate(ctx context.Context, text string, lenient bool) domain.ValidationResult

	// Process submits doc and derives the summary and timeline.
	Process(ctx context.Context, doc domain.BrdDocument) (*ProcessResult, error)
}
