package domain

// Default values applied when a schedule omits fields.
const (
	DefaultPhaseName     = "Unnamed Phase"
	DefaultMilestoneName = "Unnamed Milestone"
	DefaultStartDate     = "2025-01-01"
	MilestoneLabelPrefix = "  📍 "
)

// SchedulePhase is one phase of a project schedule.
type SchedulePhase struct {
	Name       string      `json:"phase_name"`
	StartDate  string      `json:"start_date,omitempty"`
	EndDate    string      `json:"end_date,omitempty"`
	Milestones []Milestone `json:"milestones,omitempty"`
}

// Milestone is a point-in-time checkpoint inside a phase.
type Milestone struct {
	Name       string `json:"name"`
	TargetDate string `json:"target_date,omitempty"`
}

// TimelineEntry is one row of a Gantt-style timeline. Dates are kept as the
// strings the orchestrator produced. Inferred is set when any date on the
// entry was filled from a default rather than read from the schedule.
type TimelineEntry struct {
	Label    string    `json:"label"`
	Start    string    `json:"start"`
	Finish   string    `json:"finish"`
	Kind     EntryKind `json:"kind"`
	Phase    string    `json:"phase"`
	Inferred bool      `json:"inferred,omitempty"`
}

// IsPoint reports whether the entry starts and finishes on the same date.
func (e TimelineEntry) IsPoint() bool {
	return e.Start == e.Finish
}
