package domain

import (
	"encoding/json"
	"fmt"
)

// Success carries a parsed 2xx response from the orchestrator.
type Success struct {
	Payload    json.RawMessage
	StatusCode int
}

// Failure describes a classified submission failure. StatusCode is nil when
// no HTTP response was received. Debug holds a bounded diagnostic preview.
type Failure struct {
	Kind       ErrorKind
	Message    string
	StatusCode *int
	Debug      string
}

func (f *Failure) Error() string {
	if f.StatusCode != nil {
		return fmt.Sprintf("%s (status %d): %s", f.Kind, *f.StatusCode, f.Message)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// SubmissionOutcome is the result of one submission. Exactly one of Success
// and Failure is non-nil.
type SubmissionOutcome struct {
	RequestID string
	Success   *Success
	Failure   *Failure
}

// OK reports whether the submission succeeded.
func (o SubmissionOutcome) OK() bool { return o.Success != nil }

// Succeeded wraps a successful response.
func Succeeded(payload json.RawMessage, status int) SubmissionOutcome {
	return SubmissionOutcome{Success: &Success{Payload: payload, StatusCode: status}}
}

// Failed wraps a classified failure. A zero status means no response.
func Failed(kind ErrorKind, msg string, status int, debug string) SubmissionOutcome {
	f := &Failure{Kind: kind, Message: msg, Debug: debug}
	if status > 0 {
		code := status
		f.StatusCode = &code
	}
	return SubmissionOutcome{Failure: f}
}
