package orchestrator

import (
	"github.com/alexanderramin/brdagent/internal/domain"
	"github.com/charmbracelet/log"
)

// SubmissionEvent records metadata about a single submission.
type SubmissionEvent struct {
	RequestID  string
	Endpoint   string
	Kind       domain.DocumentKind
	LatencyMs  int64
	Success    bool
	StatusCode int
	ErrorCode  string
}

// Observer receives events about submissions for logging and metrics.
type Observer interface {
	OnSubmissionComplete(event SubmissionEvent)
}

// LogObserver writes submission events to a structured logger.
type LogObserver struct {
	logger *log.Logger
}

// NewLogObserver creates an Observer that logs events through logger.
func NewLogObserver(logger *log.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnSubmissionComplete(event SubmissionEvent) {
	kv := []any{
		"request_id", event.RequestID,
		"endpoint", event.Endpoint,
		"document", event.Kind,
		"latency_ms", event.LatencyMs,
		"status", event.StatusCode,
	}
	if event.Success {
		o.logger.Info("orchestrator_submit", kv...)
		return
	}
	o.logger.Warn("orchestrator_submit", append(kv, "error", event.ErrorCode)...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnSubmissionComplete(SubmissionEvent) {}
