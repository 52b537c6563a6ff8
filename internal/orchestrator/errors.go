package orchestrator

import "errors"

var (
	// ErrEmptyEndpoint indicates the client was configured without a URL.
	ErrEmptyEndpoint = errors.New("orchestrator endpoint is empty")

	// ErrInvalidEndpoint indicates the endpoint is not an absolute http(s) URL.
	ErrInvalidEndpoint = errors.New("orchestrator endpoint must be an absolute http or https URL")
)
