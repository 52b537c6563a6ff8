package service

import (
	"context"
	"time"

	"github.com/alexanderramin/brdagent/internal/brd"
	"github.com/alexanderramin/brdagent/internal/domain"
	"github.com/alexanderramin/brdagent/internal/orchestrator"
	"github.com/alexanderramin/brdagent/internal/report"
	"github.com/alexanderramin/brdagent/internal/timeline"
)

type brdService struct {
	submitter orchestrator.Submitter
	observer  UseCaseObserver
}

func NewBRDService(submitter orchestrator.Submitter, observers ...UseCaseObserver) BRDService {
	return &brdService{
		submitter: submitter,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *brdService) Validate(ctx context.Context, text string, lenient bool) domain.ValidationResult {
	start := time.Now()

	var res domain.ValidationResult
	if lenient {
		res = brd.ValidateJSONC(text)
	} else {
		res = brd.Validate(text)
	}

	fields := map[string]any{"lenient": lenient}
	if res.Valid {
		fields["document"] = res.Document.Kind.String()
	} else {
		fields["error_kind"] = res.ErrorKind.String()
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "brd.validate",
		Duration:  time.Since(start),
		Success:   res.Valid,
		Fields:    fields,
		StartedAt: start,
	})
	return res
}

func (s *brdService) Process(ctx context.Context, doc domain.BrdDocument) (*ProcessResult, error) {
	if !doc.Kind.IsValid() {
		return nil, ErrInvalidDocument
	}
	start := time.Now()

	result := &ProcessResult{
		Outcome: s.submitter.Submit(ctx, doc),
		Summary: domain.DefaultSummary(),
	}
	if ok := result.Outcome.Success; ok != nil {
		result.Summary = report.Summarize(ok.Payload)
		result.Timeline = timeline.FromResponse(ok.Payload)
	}

	fields := map[string]any{
		"document":   doc.Kind.String(),
		"request_id": result.Outcome.RequestID,
	}
	var err error
	if f := result.Outcome.Failure; f != nil {
		err = f
	} else {
		fields["stages"] = len(result.Summary.StagesCompleted)
		fields["timeline_entries"] = len(result.Timeline.Entries)
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "brd.process",
		Duration:  time.Since(start),
		Success:   result.OK(),
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
	return result, nil
}
