// Package timeline flattens an orchestrator project schedule into ordered
// Gantt-style entries. It is a structural pass only: no sorting, no
// deduplication, no overlap detection.
package timeline

import (
	"github.com/alexanderramin/brdagent/internal/domain"
	"github.com/tidwall/gjson"
)

// Keys under which a response may carry its schedule, in lookup order.
var scheduleKeys = []string{"project_schedule", "schedule"}

// Timeline is the projection of a full orchestrator response.
type Timeline struct {
	Entries []domain.TimelineEntry
	Note    string
}

// Empty reports whether there is nothing to render.
func (t Timeline) Empty() bool { return len(t.Entries) == 0 }

// Project flattens schedule.phases into timeline entries. It returns nil
// when phases is absent, not a list, or yields no entries.
//
// Each phase contributes one Phase entry followed by one Milestone entry per
// milestone, in input order. Missing values are defaulted:
//   - phase name: phase_name, then name, then "Unnamed Phase"
//   - phase start: "2025-01-01"; phase end: the phase start
//   - milestone name: "Unnamed Milestone"; target date: the phase start
//
// Non-object phases and milestones are skipped.
func Project(schedule []byte) []domain.TimelineEntry {
	return project(gjson.ParseBytes(schedule))
}

func project(schedule gjson.Result) []domain.TimelineEntry {
	return ProjectPhases(Phases(schedule))
}

// Phases reads schedule.phases into the typed structural view. Missing or
// non-string values are left empty; defaults are applied by ProjectPhases.
func Phases(schedule gjson.Result) []domain.SchedulePhase {
	phases := member(schedule, "phases")
	if !phases.IsArray() {
		return nil
	}

	var out []domain.SchedulePhase
	phases.ForEach(func(_, p gjson.Result) bool {
		if !p.IsObject() {
			return true
		}
		phase := domain.SchedulePhase{
			Name:      domain.CoalesceStr(str(p, "phase_name"), str(p, "name")),
			StartDate: str(p, "start_date"),
			EndDate:   str(p, "end_date"),
		}
		member(p, "milestones").ForEach(func(_, m gjson.Result) bool {
			if m.IsObject() {
				phase.Milestones = append(phase.Milestones, domain.Milestone{
					Name:       str(m, "name"),
					TargetDate: str(m, "target_date"),
				})
			}
			return true
		})
		out = append(out, phase)
		return true
	})
	return out
}

// ProjectPhases flattens typed phases into timeline entries, applying the
// same defaults as Project. It returns nil when there are no phases.
func ProjectPhases(phases []domain.SchedulePhase) []domain.TimelineEntry {
	var entries []domain.TimelineEntry
	for _, p := range phases {
		entries = append(entries, projectPhase(p)...)
	}
	if len(entries) == 0 {
		return nil
	}
	return entries
}

func projectPhase(p domain.SchedulePhase) []domain.TimelineEntry {
	name := domain.CoalesceStr(p.Name, domain.DefaultPhaseName)
	start, startOK := dateOr(p.StartDate, domain.DefaultStartDate)
	end, endOK := dateOr(p.EndDate, start)

	entries := make([]domain.TimelineEntry, 0, 1+len(p.Milestones))
	entries = append(entries, domain.TimelineEntry{
		Label:    name,
		Start:    start,
		Finish:   end,
		Kind:     domain.EntryPhase,
		Phase:    name,
		Inferred: !startOK || !endOK,
	})

	for _, m := range p.Milestones {
		target, ok := dateOr(m.TargetDate, start)
		entries = append(entries, domain.TimelineEntry{
			Label:    domain.MilestoneLabelPrefix + domain.CoalesceStr(m.Name, domain.DefaultMilestoneName),
			Start:    target,
			Finish:   target,
			Kind:     domain.EntryMilestone,
			Phase:    name,
			Inferred: !ok,
		})
	}

	return entries
}

// FromResponse locates the schedule inside a full orchestrator response and
// projects it. The note is read from the schedule first, then the response.
func FromResponse(payload []byte) Timeline {
	root := gjson.ParseBytes(payload)

	var tl Timeline
	for _, key := range scheduleKeys {
		if schedule := member(root, key); schedule.IsObject() {
			tl.Entries = project(schedule)
			tl.Note = str(schedule, "note")
			break
		}
	}
	if tl.Note == "" {
		tl.Note = str(root, "note")
	}
	return tl
}

// ProjectAny accepts either a bare schedule object or a full response.
func ProjectAny(data []byte) Timeline {
	root := gjson.ParseBytes(data)
	if member(root, "phases").Exists() {
		return Timeline{Entries: project(root), Note: str(root, "note")}
	}
	return FromResponse(data)
}

// str returns the string at key, or "" when absent or not a string.
func str(obj gjson.Result, key string) string {
	v := member(obj, key)
	if v.Type != gjson.String {
		return ""
	}
	return v.Str
}

// dateOr returns v, or fallback with ok=false when v is empty.
func dateOr(v, fallback string) (string, bool) {
	if v != "" {
		return v, true
	}
	return fallback, false
}

// member returns the value of key in obj; the last of duplicate keys wins.
func member(obj gjson.Result, key string) gjson.Result {
	var last gjson.Result
	if !obj.IsObject() {
		return last
	}
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.Str == key {
			last = v
		}
		return true
	})
	return last
}
