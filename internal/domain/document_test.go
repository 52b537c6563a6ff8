package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(s string) json.RawMessage { return json.RawMessage(s) }

func TestDetectKind_Priority(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]json.RawMessage
		want   DocumentKind
		ok     bool
	}{
		{"project", map[string]json.RawMessage{"project": raw(`{}`)}, DocumentDirect, true},
		{"features", map[string]json.RawMessage{"features": raw(`[]`)}, DocumentDirect, true},
		{"raw text", map[string]json.RawMessage{"raw_brd_text": raw(`"x"`)}, DocumentRawText, true},
		{"wrapped", map[string]json.RawMessage{"brd_data": raw(`{}`)}, DocumentWrapped, true},
		{"raw text before wrapped", map[string]json.RawMessage{"brd_data": raw(`{}`), "raw_brd_text": raw(`""`)}, DocumentRawText, true},
		{"all keys", map[string]json.RawMessage{
			"brd_data": raw(`{}`), "raw_brd_text": raw(`""`), "features": raw(`[]`),
		}, DocumentDirect, true},
		{"none", map[string]json.RawMessage{"title": raw(`"x"`)}, "", false},
		{"empty", map[string]json.RawMessage{}, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := DetectKind(tc.fields)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewBrdDocument_RejectsUnknownShape(t *testing.T) {
	_, err := NewBrdDocument(map[string]json.RawMessage{"title": raw(`"x"`)})
	assert.Error(t, err)
}

func TestBrdDocument_Accessors(t *testing.T) {
	doc, err := NewBrdDocument(map[string]json.RawMessage{
		"project":      raw(`{"name":"Portal"}`),
		"raw_brd_text": raw(`42`),
	})
	require.NoError(t, err)

	p, ok := doc.Project()
	assert.True(t, ok)
	assert.JSONEq(t, `{"name":"Portal"}`, string(p))

	_, ok = doc.Features()
	assert.False(t, ok)

	_, ok = doc.RawText()
	assert.False(t, ok, "non-string raw_brd_text")

	_, ok = doc.Wrapped()
	assert.False(t, ok)
}

func TestBrdDocument_MarshalJSON(t *testing.T) {
	doc, err := NewBrdDocument(map[string]json.RawMessage{
		"features": raw(`[{"id":"F1"}]`),
		"owner":    raw(`"pm"`),
	})
	require.NoError(t, err)

	out, err := json.Marshal(struct {
		Body BrdDocument `json:"body"`
	}{doc})
	require.NoError(t, err)
	assert.JSONEq(t, `{"body":{"features":[{"id":"F1"}],"owner":"pm"}}`, string(out))

	empty, err := json.Marshal(BrdDocument{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(empty))
}

func TestValidationResult_Constructors(t *testing.T) {
	doc := BrdDocument{Kind: DocumentWrapped, Fields: map[string]json.RawMessage{"brd_data": raw(`{}`)}}

	ok := Accepted(doc)
	assert.True(t, ok.Valid)
	require.NotNil(t, ok.Document)
	assert.Empty(t, ok.Error)

	bad := Rejected(ErrMalformedJSON, "invalid JSON")
	assert.False(t, bad.Valid)
	assert.Nil(t, bad.Document)
	assert.Equal(t, "invalid JSON", bad.Error)
}

func TestKinds(t *testing.T) {
	assert.True(t, DocumentDirect.IsValid())
	assert.False(t, DocumentKind("yaml").IsValid())
	assert.Equal(t, "TIMEOUT", ErrTimeout.Code())
	assert.Equal(t, "UNKNOWN", ErrorKind("other").Code())
}
