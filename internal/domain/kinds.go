package domain

// DocumentKind identifies which accepted envelope a BRD arrived in.
type DocumentKind string

const (
	DocumentDirect  DocumentKind = "direct"
	DocumentRawText DocumentKind = "raw_text"
	DocumentWrapped DocumentKind = "wrapped"
)

func (k DocumentKind) String() string { return string(k) }

// IsValid reports whether k is one of the three accepted envelopes.
func (k DocumentKind) IsValid() bool {
	switch k {
	case DocumentDirect, DocumentRawText, DocumentWrapped:
		return true
	default:
		return false
	}
}

// ErrorKind classifies a failed validation or submission.
type ErrorKind string

const (
	ErrInvalidDocumentShape ErrorKind = "invalid_document_shape"
	ErrMalformedJSON        ErrorKind = "malformed_json"
	ErrTimeout              ErrorKind = "timeout"
	ErrTransport            ErrorKind = "transport"
	ErrEmptyResponse        ErrorKind = "empty_response"
	ErrMalformedResponse    ErrorKind = "malformed_response"
	ErrHTTP                 ErrorKind = "http_error"
)

func (k ErrorKind) String() string { return string(k) }

// Code returns the upper-snake code used in log events.
func (k ErrorKind) Code() string {
	switch k {
	case ErrInvalidDocumentShape:
		return "INVALID_SHAPE"
	case ErrMalformedJSON:
		return "MALFORMED_JSON"
	case ErrTimeout:
		return "TIMEOUT"
	case ErrTransport:
		return "TRANSPORT"
	case ErrEmptyResponse:
		return "EMPTY_RESPONSE"
	case ErrMalformedResponse:
		return "MALFORMED_RESPONSE"
	case ErrHTTP:
		return "HTTP_ERROR"
	default:
		return "UNKNOWN"
	}
}

// EntryKind distinguishes phase spans from milestone points on a timeline.
type EntryKind string

const (
	EntryPhase     EntryKind = "Phase"
	EntryMilestone EntryKind = "Milestone"
)

func (k EntryKind) String() string { return string(k) }
