// Package brd classifies and normalizes inbound Business Requirements
// Documents. Detection is by key presence only; nested structure is left to
// the orchestrator.
package brd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/brdagent/internal/domain"
	"github.com/tidwall/jsonc"
)

const (
	msgNotObject = "document must be a JSON object."
	msgNoShape   = "document must contain one of: 'project', 'features', 'raw_brd_text', or 'brd_data'"
)

// Validate parses text and classifies it into one of the accepted envelopes.
// It never returns an error; failures are reported in the result.
func Validate(text string) domain.ValidationResult {
	data := []byte(text)

	var generic any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&generic); err != nil {
		return domain.Rejected(domain.ErrMalformedJSON, describeSyntaxError(data, err))
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		offset := dec.InputOffset()
		return domain.Rejected(domain.ErrMalformedJSON,
			fmt.Sprintf("invalid JSON: unexpected data after top-level value %s", position(data, offset)))
	}

	if _, ok := generic.(map[string]any); !ok {
		return domain.Rejected(domain.ErrInvalidDocumentShape, msgNotObject)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return domain.Rejected(domain.ErrMalformedJSON, describeSyntaxError(data, err))
	}
	for k, v := range fields {
		fields[k] = compact(v)
	}

	doc, err := domain.NewBrdDocument(fields)
	if err != nil {
		return domain.Rejected(domain.ErrInvalidDocumentShape, msgNoShape)
	}
	return domain.Accepted(doc)
}

// ValidateJSONC is Validate for hand-authored files: // and /* */ comments
// and trailing commas are blanked out first. Offsets are preserved, so
// reported positions still match the original text.
func ValidateJSONC(text string) domain.ValidationResult {
	return Validate(string(jsonc.ToJSON([]byte(text))))
}

// Canonical serializes doc in compact form without HTML escaping.
// Canonical output validates back to an equal document.
func Canonical(doc domain.BrdDocument) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc.Fields); err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func compact(raw json.RawMessage) json.RawMessage {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return raw
	}
	return json.RawMessage(buf.Bytes())
}

func describeSyntaxError(data []byte, err error) string {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Sprintf("invalid JSON: %s %s", syntaxErr.Error(), position(data, syntaxErr.Offset))
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("invalid JSON: %s %s", typeErr.Error(), position(data, typeErr.Offset))
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		if strings.TrimSpace(string(data)) == "" {
			return "invalid JSON: document is empty"
		}
		return fmt.Sprintf("invalid JSON: unexpected end of input %s", position(data, int64(len(data))))
	}
	return fmt.Sprintf("invalid JSON: %v", err)
}

// position renders a byte offset as a 1-based line and column.
func position(data []byte, offset int64) string {
	if offset < 0 {
		offset = 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	prefix := data[:offset]
	line := bytes.Count(prefix, []byte("\n")) + 1
	col := int(offset) - bytes.LastIndexByte(prefix, '\n')
	return fmt.Sprintf("(line %d, column %d)", line, col)
}
