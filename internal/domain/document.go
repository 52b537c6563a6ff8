package domain

import (
	"encoding/json"
	"fmt"
)

// Discriminator keys, in detection priority order.
const (
	KeyProject    = "project"
	KeyFeatures   = "features"
	KeyRawBRDText = "raw_brd_text"
	KeyBRDData    = "brd_data"
)

// BrdDocument is a normalized BRD. Kind is derived from key presence only;
// Fields holds every top-level member of the original object so the remote
// service receives exactly what was supplied.
type BrdDocument struct {
	Kind   DocumentKind
	Fields map[string]json.RawMessage
}

// DetectKind returns the envelope that fields belong to, first match wins.
// The second return is false when no discriminator key is present.
func DetectKind(fields map[string]json.RawMessage) (DocumentKind, bool) {
	if has(fields, KeyProject) || has(fields, KeyFeatures) {
		return DocumentDirect, true
	}
	if has(fields, KeyRawBRDText) {
		return DocumentRawText, true
	}
	if has(fields, KeyBRDData) {
		return DocumentWrapped, true
	}
	return "", false
}

// NewBrdDocument builds a document from a decoded object, rejecting objects
// that match no envelope.
func NewBrdDocument(fields map[string]json.RawMessage) (BrdDocument, error) {
	kind, ok := DetectKind(fields)
	if !ok {
		return BrdDocument{}, fmt.Errorf("no discriminator key present")
	}
	return BrdDocument{Kind: kind, Fields: fields}, nil
}

func has(fields map[string]json.RawMessage, key string) bool {
	_, ok := fields[key]
	return ok
}

// Project returns the raw "project" member of a direct document.
func (d BrdDocument) Project() (json.RawMessage, bool) {
	v, ok := d.Fields[KeyProject]
	return v, ok
}

// Features returns the raw "features" member of a direct document.
func (d BrdDocument) Features() (json.RawMessage, bool) {
	v, ok := d.Fields[KeyFeatures]
	return v, ok
}

// RawText returns the decoded "raw_brd_text" string. The second return is
// false when the key is absent or does not hold a string.
func (d BrdDocument) RawText() (string, bool) {
	v, ok := d.Fields[KeyRawBRDText]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", false
	}
	return s, true
}

// Wrapped returns the raw "brd_data" member of a wrapped document.
func (d BrdDocument) Wrapped() (json.RawMessage, bool) {
	v, ok := d.Fields[KeyBRDData]
	return v, ok
}

// MarshalJSON emits the original object.
func (d BrdDocument) MarshalJSON() ([]byte, error) {
	if d.Fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(d.Fields)
}

// ValidationResult is the outcome of validating inbound text. Exactly one of
// Document and Error is set.
type ValidationResult struct {
	Valid     bool
	Document  *BrdDocument
	Error     string
	ErrorKind ErrorKind
}

// Accepted returns a successful result for doc.
func Accepted(doc BrdDocument) ValidationResult {
	return ValidationResult{Valid: true, Document: &doc}
}

// Rejected returns a failed result with the given kind and message.
func Rejected(kind ErrorKind, msg string) ValidationResult {
	return ValidationResult{Valid: false, Error: msg, ErrorKind: kind}
}
