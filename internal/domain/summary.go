package domain

// UnknownStatus is reported when a response carries no usable status.
const UnknownStatus = "Unknown"

// ResponseSummary holds the display metrics extracted from a response.
type ResponseSummary struct {
	Status          string
	StagesCompleted []string
	Timestamp       *string
}

// DefaultSummary returns the summary used when a response has no fields.
func DefaultSummary() ResponseSummary {
	return ResponseSummary{Status: UnknownStatus, StagesCompleted: []string{}}
}

// Succeeded reports whether the orchestrator declared success. The match
// is exact: "SUCCESS" or "Success" do not count.
func (s ResponseSummary) Succeeded() bool {
	return s.Status == "success"
}

// CompletedAt returns the timestamp trimmed to seconds precision, or "".
func (s ResponseSummary) CompletedAt() string {
	if s.Timestamp == nil {
		return ""
	}
	return truncate(*s.Timestamp, 19)
}

// DateStamp returns the date part of the timestamp, or "unknown".
func (s ResponseSummary) DateStamp() string {
	if s.Timestamp == nil || *s.Timestamp == "" {
		return "unknown"
	}
	return truncate(*s.Timestamp, 10)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
