// Package orchestrator submits normalized BRDs to the remote multi-agent
// orchestration service and classifies every failure into a
// domain.SubmissionOutcome.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/alexanderramin/brdagent/internal/domain"
	"github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// RequestIDHeader carries the per-submission correlation id.
const RequestIDHeader = "X-Request-ID"

// Submitter sends a document to the orchestrator.
type Submitter interface {
	// Submit posts doc and returns exactly one classified outcome.
	Submit(ctx context.Context, doc domain.BrdDocument) domain.SubmissionOutcome

	// Available checks whether the orchestrator endpoint answers at all.
	Available(ctx context.Context) bool
}

// Client implements Submitter over HTTP.
type Client struct {
	cfg      Config
	http     *resty.Client
	observer Observer
	newID    func() string
}

// Option customizes a Client.
type Option func(*Client)

// WithTransport replaces the network round tripper. Tests use it to inject
// a fake transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.http.SetTransport(rt) }
}

// WithLogger routes resty's internal warnings through logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.http.SetLogger(logger)
		}
	}
}

// WithRequestIDs overrides the correlation id generator.
func WithRequestIDs(fn func() string) Option {
	return func(c *Client) { c.newID = fn }
}

// NewClient creates a Client for cfg. A nil observer discards events.
func NewClient(cfg Config, observer Observer, opts ...Option) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	c := &Client{
		cfg: cfg,
		http: resty.New().
			SetTimeout(cfg.timeout()).
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json").
			SetRetryCount(0),
		observer: observer,
		newID:    func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the configuration the client was built with.
func (c *Client) Config() Config { return c.cfg }

// submitEnvelope is the JSON body sent to the orchestrator webhook.
type submitEnvelope struct {
	Body domain.BrdDocument `json:"body"`
}

func (c *Client) Submit(ctx context.Context, doc domain.BrdDocument) (outcome domain.SubmissionOutcome) {
	start := time.Now()
	requestID := c.newID()

	defer func() {
		if r := recover(); r != nil {
			outcome = domain.Failed(domain.ErrTransport, fmt.Sprintf("unexpected failure: %v", r), 0, "")
		}
		outcome.RequestID = requestID
		c.observe(doc, outcome, start)
	}()

	if err := c.cfg.Validate(); err != nil {
		return domain.Failed(domain.ErrTransport, err.Error(), 0, "")
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, requestID).
		SetBody(submitEnvelope{Body: doc}).
		Post(c.cfg.Endpoint)

	return c.classify(resp, err)
}

// classify maps a resty result onto a SubmissionOutcome. Rules are applied
// in order and the first match wins.
func (c *Client) classify(resp *resty.Response, err error) domain.SubmissionOutcome {
	limit := c.cfg.previewLimit()

	if err != nil {
		if isTimeout(err) {
			return domain.Failed(domain.ErrTimeout,
				fmt.Sprintf("request timed out after %s; the orchestrator may be processing a large BRD", c.cfg.timeout()),
				0, "")
		}
		status, debug := 0, ""
		if resp != nil && resp.RawResponse != nil {
			status = resp.StatusCode()
			if body := resp.Body(); len(body) > 0 {
				debug = "Response: " + Preview(body, limit)
			}
		}
		msg := err.Error()
		if errors.Is(err, context.Canceled) {
			msg = "request cancelled"
		}
		return domain.Failed(domain.ErrTransport, msg, status, debug)
	}

	status := resp.StatusCode()
	body := resp.Body()

	if len(body) == 0 {
		return domain.Failed(domain.ErrEmptyResponse,
			"empty response from orchestrator; check that the workflow is activated",
			status, "URL: "+c.cfg.Endpoint)
	}
	if !gjson.ValidBytes(body) {
		return domain.Failed(domain.ErrMalformedResponse,
			"invalid JSON response from orchestrator",
			status, "Response preview: "+Preview(body, limit))
	}
	if !resp.IsSuccess() {
		return domain.Failed(domain.ErrHTTP,
			fmt.Sprintf("orchestrator returned status %d", status),
			status, "Response: "+Preview(body, limit))
	}

	return domain.Succeeded(body, status)
}

func (c *Client) observe(doc domain.BrdDocument, outcome domain.SubmissionOutcome, start time.Time) {
	event := SubmissionEvent{
		RequestID: outcome.RequestID,
		Endpoint:  c.cfg.Endpoint,
		Kind:      doc.Kind,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   outcome.OK(),
	}
	if outcome.Success != nil {
		event.StatusCode = outcome.Success.StatusCode
	}
	if f := outcome.Failure; f != nil {
		event.ErrorCode = f.Kind.Code()
		if f.StatusCode != nil {
			event.StatusCode = *f.StatusCode
		}
	}
	c.observer.OnSubmissionComplete(event)
}

// Available reports whether any HTTP response arrives from the endpoint
// within two seconds. Status codes are ignored: webhooks commonly reject GET.
func (c *Client) Available(ctx context.Context) bool {
	if c.cfg.Validate() != nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	resp, err := c.http.R().SetContext(ctx).Get(c.cfg.Endpoint)
	return err == nil && resp != nil && resp.RawResponse != nil
}

// Preview returns at most limit characters of body.
func Preview(body []byte, limit int) string {
	runes := []rune(string(body))
	if len(runes) <= limit {
		return string(runes)
	}
	return string(runes[:limit])
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
