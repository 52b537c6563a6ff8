// Package report extracts display metrics from orchestrator responses.
// Every accessor fills a documented default instead of failing, because the
// response shape evolves independently of this client.
package report

import (
	"strings"
	"unicode"

	"github.com/alexanderramin/brdagent/internal/domain"
	"github.com/tidwall/gjson"
)

// Summarize reads status, stages_completed and timestamp from payload.
// Non-object payloads yield domain.DefaultSummary.
func Summarize(payload []byte) domain.ResponseSummary {
	summary := domain.DefaultSummary()

	root := gjson.ParseBytes(payload)
	if !root.IsObject() {
		return summary
	}

	summary.Status = Status(root)
	summary.StagesCompleted = Stages(root)
	summary.Timestamp = Timestamp(root)
	return summary
}

// Status returns the top-level "status" string, default "Unknown".
func Status(root gjson.Result) string {
	v := member(root, "status")
	if v.Type != gjson.String {
		return domain.UnknownStatus
	}
	return v.Str
}

// Stages returns "stages_completed" in order, default empty. String elements
// are kept verbatim, other scalars as their JSON text, nested containers are
// skipped.
func Stages(root gjson.Result) []string {
	v := member(root, "stages_completed")
	if !v.IsArray() {
		return []string{}
	}
	stages := []string{}
	v.ForEach(func(_, el gjson.Result) bool {
		switch {
		case el.Type == gjson.String:
			stages = append(stages, el.Str)
		case el.IsObject(), el.IsArray(), el.Type == gjson.Null:
			// skipped
		default:
			stages = append(stages, el.Raw)
		}
		return true
	})
	return stages
}

// Timestamp returns the top-level "timestamp" string, default nil.
func Timestamp(root gjson.Result) *string {
	v := member(root, "timestamp")
	if v.Type != gjson.String {
		return nil
	}
	ts := v.Str
	return &ts
}

// Note returns the top-level free-text "note", default "".
func Note(payload []byte) string {
	v := member(gjson.ParseBytes(payload), "note")
	if v.Type != gjson.String {
		return ""
	}
	return v.Str
}

// StageLabel turns a stage id such as "engineering_plan" into
// "Engineering Plan".
func StageLabel(stage string) string {
	words := strings.Fields(strings.ReplaceAll(stage, "_", " "))
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// member returns the value of key in obj. When a key repeats, the last
// occurrence wins, matching encoding/json.
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
