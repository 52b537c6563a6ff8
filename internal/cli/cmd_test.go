package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/brdagent/internal/domain"
	"github.com/alexanderramin/brdagent/internal/orchestrator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	directBRD = `{"project": {"name": "Customer Portal"}, "features": ["login"]}`

	successResponse = `{
		"status": "success",
		"stages_completed": ["brd_parsing", "effort_estimation"],
		"timestamp": "2025-03-14T09:26:53.589793Z",
		"project_schedule": {
			"phases": [
				{"phase_name": "Discovery", "start_date": "2025-01-01", "end_date": "2025-01-29",
				 "milestones": [{"name": "Kickoff", "target_date": "2025-01-02"}]}
			],
			"note": "Assumes one team."
		}
	}`
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// stubSubmitter records the config it was built with and returns a canned
// outcome.
type stubSubmitter struct {
	outcome   domain.SubmissionOutcome
	available bool
	cfg       orchestrator.Config
	calls     int
	last      domain.BrdDocument
}

func (s *stubSubmitter) Submit(_ context.Context, doc domain.BrdDocument) domain.SubmissionOutcome {
	s.calls++
	s.last = doc
	return s.outcome
}

func (s *stubSubmitter) Available(context.Context) bool { return s.available }

// testApp wires an App whose orchestrator is sub.
func testApp(sub *stubSubmitter) *App {
	return &App{
		Config: orchestrator.DefaultConfig(),
		NewSubmitter: func(cfg orchestrator.Config) orchestrator.Submitter {
			sub.cfg = cfg
			return sub
		},
	}
}

func successStub() *stubSubmitter {
	out := domain.Succeeded([]byte(successResponse), 200)
	out.RequestID = "req-42"
	return &stubSubmitter{outcome: out}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(buf.String()), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// --- validate ---

func TestValidateCmd_ValidFile(t *testing.T) {
	path := writeTemp(t, "brd.json", directBRD)

	out, err := executeCmd(t, testApp(&stubSubmitter{}), "validate", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Valid BRD JSON")
	assert.Contains(t, out, "[direct]")
	assert.Contains(t, out, path)
}

func TestValidateCmd_Verbose(t *testing.T) {
	path := writeTemp(t, "brd.json", `{"raw_brd_text": "We need a portal."}`)

	out, err := executeCmd(t, testApp(&stubSubmitter{}), "validate", "-v", path)

	require.NoError(t, err)
	assert.Contains(t, out, "[raw text]")
	assert.Contains(t, out, `"raw_brd_text": "We need a portal."`)
}

func TestValidateCmd_InvalidShape(t *testing.T) {
	path := writeTemp(t, "brd.json", `{"title": "x"}`)

	out, err := executeCmd(t, testApp(&stubSubmitter{}), "validate", path)

	assert.ErrorIs(t, err, ErrReported)
	assert.Contains(t, out, "Invalid BRD")
	assert.Contains(t, out, "raw_brd_text")
}

func TestValidateCmd_Stdin(t *testing.T) {
	app := testApp(&stubSubmitter{})
	app.In = strings.NewReader(`{"brd_data": {"a": 1}}`)

	out, err := executeCmd(t, app, "validate", "-")

	require.NoError(t, err)
	assert.Contains(t, out, "[wrapped]")
	assert.Contains(t, out, "stdin")
}

func TestValidateCmd_JSONC(t *testing.T) {
	path := writeTemp(t, "brd.jsonc", "{\n  // draft\n  \"features\": [\"a\",],\n}")

	_, err := executeCmd(t, testApp(&stubSubmitter{}), "validate", path)
	assert.ErrorIs(t, err, ErrReported)

	out, err := executeCmd(t, testApp(&stubSubmitter{}), "validate", "--jsonc", path)
	require.NoError(t, err)
	assert.Contains(t, out, "[direct]")
}

func TestValidateCmd_EmptyStdin(t *testing.T) {
	app := testApp(&stubSubmitter{})
	app.In = strings.NewReader("  \n")

	_, err := executeCmd(t, app, "validate")

	assert.ErrorIs(t, err, errNoInput)
}

func TestValidateCmd_MissingFile(t *testing.T) {
	_, err := executeCmd(t, testApp(&stubSubmitter{}), "validate", filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// --- submit ---

func TestSubmitCmd_Success(t *testing.T) {
	sub := successStub()
	path := writeTemp(t, "brd.json", directBRD)

	out, err := executeCmd(t, testApp(sub), "submit", path)

	require.NoError(t, err)
	assert.Equal(t, 1, sub.calls)
	assert.Equal(t, domain.DocumentDirect, sub.last.Kind)
	assert.Contains(t, out, "✅ Success")
	assert.Contains(t, out, "Stages Completed: 2")
	assert.Contains(t, out, "Effort Estimation")
	assert.Contains(t, out, "2025-03-14T09:26:53")
	assert.Contains(t, out, "req-42")
	assert.Contains(t, out, "Discovery")
	assert.Contains(t, out, "📍 Kickoff")
	assert.Contains(t, out, "Assumes one team.")
	assert.NotContains(t, out, "FULL RESPONSE")
}

func TestSubmitCmd_JSONFlag(t *testing.T) {
	path := writeTemp(t, "brd.json", directBRD)

	out, err := executeCmd(t, testApp(successStub()), "submit", "--json", path)

	require.NoError(t, err)
	assert.Contains(t, out, "FULL RESPONSE")
	assert.Contains(t, out, `"status": "success"`)
}

func TestSubmitCmd_InvalidDocumentNotSent(t *testing.T) {
	sub := successStub()
	path := writeTemp(t, "brd.json", `[1, 2]`)

	out, err := executeCmd(t, testApp(sub), "submit", path)

	assert.ErrorIs(t, err, ErrReported)
	assert.Equal(t, 0, sub.calls)
	assert.Contains(t, out, "Invalid BRD")
}

func TestSubmitCmd_Failure(t *testing.T) {
	out := domain.Failed(domain.ErrHTTP, "orchestrator returned HTTP 502", 502, "upstream down")
	sub := &stubSubmitter{outcome: out}
	path := writeTemp(t, "brd.json", directBRD)

	got, err := executeCmd(t, testApp(sub), "submit", path)

	assert.ErrorIs(t, err, ErrReported)
	assert.Contains(t, got, "Processing failed")
	assert.Contains(t, got, "HTTP Status Code: 502")
	assert.Contains(t, got, "upstream down")
}

func TestSubmitCmd_ConnectionFlags(t *testing.T) {
	sub := successStub()
	path := writeTemp(t, "brd.json", directBRD)

	_, err := executeCmd(t, testApp(sub), "submit",
		"--endpoint", "http://orchestrator.test/hook", "--timeout", "5s", path)

	require.NoError(t, err)
	assert.Equal(t, "http://orchestrator.test/hook", sub.cfg.Endpoint)
	assert.Equal(t, 5*time.Second, sub.cfg.Timeout)
}

func TestSubmitCmd_DefaultConnection(t *testing.T) {
	sub := successStub()
	app := testApp(sub)
	app.Config.Endpoint = "http://from-env.test/hook"
	path := writeTemp(t, "brd.json", directBRD)

	_, err := executeCmd(t, app, "submit", path)

	require.NoError(t, err)
	assert.Equal(t, "http://from-env.test/hook", sub.cfg.Endpoint)
	assert.Equal(t, orchestrator.DefaultTimeout, sub.cfg.Timeout)
}

func TestSubmitCmd_Output(t *testing.T) {
	path := writeTemp(t, "brd.json", directBRD)
	dest := filepath.Join(t.TempDir(), "result.json")

	out, err := executeCmd(t, testApp(successStub()), "submit", "-o", dest, path)

	require.NoError(t, err)
	assert.Contains(t, out, "saved to "+dest)
	saved, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(saved), `"stages_completed": [`)
}

func TestSubmitCmd_InteractivePaste(t *testing.T) {
	sub := successStub()
	app := testApp(sub)
	app.IsInteractive = func() bool { return true }
	app.PromptInput = func(c *InputChoice) error {
		c.Method = MethodPaste
		c.Text = `{"raw_brd_text": "pasted"}`
		return nil
	}

	_, err := executeCmd(t, app, "submit", "--no-progress")

	require.NoError(t, err)
	assert.Equal(t, domain.DocumentRawText, sub.last.Kind)
}

func TestSubmitCmd_InteractiveFile(t *testing.T) {
	sub := successStub()
	app := testApp(sub)
	path := writeTemp(t, "brd.json", `{"brd_data": {"x": true}}`)
	app.IsInteractive = func() bool { return true }
	app.PromptInput = func(c *InputChoice) error {
		c.Method = MethodFile
		c.Path = "  " + path + " "
		return nil
	}

	_, err := executeCmd(t, app, "submit", "--no-progress")

	require.NoError(t, err)
	assert.Equal(t, domain.DocumentWrapped, sub.last.Kind)
}

func TestSubmitCmd_AgainstServer(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(successResponse))
	}))
	defer srv.Close()

	app := &App{Config: orchestrator.DefaultConfig()}
	app.Config.Endpoint = srv.URL
	path := writeTemp(t, "brd.json", directBRD)

	out, err := executeCmd(t, app, "submit", path)

	require.NoError(t, err)
	assert.JSONEq(t, `{"body": `+directBRD+`}`, string(gotBody))
	assert.Contains(t, out, "✅ Success")
	assert.Contains(t, out, "Discovery")
}

func TestSubmitCmd_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("workflow crashed"))
	}))
	defer srv.Close()

	app := &App{Config: orchestrator.DefaultConfig()}
	app.Config.Endpoint = srv.URL
	path := writeTemp(t, "brd.json", directBRD)

	out, err := executeCmd(t, app, "submit", path)

	assert.ErrorIs(t, err, ErrReported)
	assert.Contains(t, out, "HTTP Status Code: 500")
	assert.Contains(t, out, "workflow crashed")
}

// --- timeline ---

func TestTimelineCmd_BareSchedule(t *testing.T) {
	path := writeTemp(t, "schedule.json",
		`{"phases": [{"name": "Build", "start_date": "2025-02-01", "end_date": "2025-04-26"}]}`)

	out, err := executeCmd(t, testApp(&stubSubmitter{}), "timeline", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Build")
	assert.Contains(t, out, "2.8 months")
}

func TestTimelineCmd_FullResponse(t *testing.T) {
	app := testApp(&stubSubmitter{})
	app.In = strings.NewReader(successResponse)

	out, err := executeCmd(t, app, "timeline", "-")

	require.NoError(t, err)
	assert.Contains(t, out, "Discovery")
	assert.Contains(t, out, "Assumes one team.")
}

func TestTimelineCmd_NoPhases(t *testing.T) {
	path := writeTemp(t, "resp.json", `{"status": "success"}`)

	out, err := executeCmd(t, testApp(&stubSubmitter{}), "timeline", path)

	require.NoError(t, err)
	assert.Contains(t, out, "No schedule phases")
}

func TestTimelineCmd_InvalidJSON(t *testing.T) {
	path := writeTemp(t, "resp.json", `{"phases": [`)

	_, err := executeCmd(t, testApp(&stubSubmitter{}), "timeline", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

// --- ping ---

func TestPingCmd(t *testing.T) {
	sub := &stubSubmitter{available: true}

	out, err := executeCmd(t, testApp(sub), "ping", "--endpoint", "http://up.test")

	require.NoError(t, err)
	assert.Contains(t, out, "reachable at http://up.test")
	assert.Equal(t, "http://up.test", sub.cfg.Endpoint)
}

func TestPingCmd_Unreachable(t *testing.T) {
	out, err := executeCmd(t, testApp(&stubSubmitter{}), "ping")

	assert.ErrorIs(t, err, ErrReported)
	assert.Contains(t, out, "unreachable")
}
