package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexanderramin/brdagent/internal/domain"
	"github.com/alexanderramin/brdagent/internal/orchestrator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_ValidateSubmitProject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"body":{"raw_brd_text":"Build an onboarding portal"}}`, string(body))
		w.Write([]byte(`{"status":"success","stages_completed":["brd_parser"],
			"project_schedule":{"phases":[{"phase_name":"Design","start_date":"2025-01-01","end_date":"2025-02-01",
			"milestones":[{"name":"Kickoff","target_date":"2025-01-05"}]}]},
			"note":"Full schedule written to outputs"}`))
	}))
	defer srv.Close()

	cfg := orchestrator.DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.Timeout = 2 * time.Second
	svc := NewBRDService(orchestrator.NewClient(cfg, nil))

	ctx := context.Background()
	v := svc.Validate(ctx, `{"raw_brd_text": "Build an onboarding portal"}`, false)
	require.True(t, v.Valid, v.Error)

	res, err := svc.Process(ctx, *v.Document)
	require.NoError(t, err)
	require.True(t, res.OK())

	assert.Equal(t, []string{"brd_parser"}, res.Summary.StagesCompleted)
	require.Len(t, res.Timeline.Entries, 2)
	assert.Equal(t, domain.EntryMilestone, res.Timeline.Entries[1].Kind)
	assert.Equal(t, "Full schedule written to outputs", res.Timeline.Note)
	assert.NotEmpty(t, res.Outcome.RequestID)
}

func TestPipeline_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := orchestrator.DefaultConfig()
	cfg.Endpoint = srv.URL
	svc := NewBRDService(orchestrator.NewClient(cfg, nil))

	res, err := svc.Process(context.Background(), directDoc())

	require.NoError(t, err)
	require.NotNil(t, res.Outcome.Failure)
	assert.Equal(t, domain.ErrEmptyResponse, res.Outcome.Failure.Kind)
	assert.Contains(t, res.Outcome.Failure.Debug, srv.URL)
}
