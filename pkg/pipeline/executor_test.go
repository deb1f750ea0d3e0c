package pipeline

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/recap/ent"
	"github.com/codeready-toolchain/recap/ent/importitem"
	"github.com/codeready-toolchain/recap/ent/incident"
	"github.com/codeready-toolchain/recap/pkg/config"
	"github.com/codeready-toolchain/recap/pkg/docstore"
	"github.com/codeready-toolchain/recap/pkg/extract"
	"github.com/codeready-toolchain/recap/pkg/models"
	"github.com/codeready-toolchain/recap/pkg/services"
	"github.com/codeready-toolchain/recap/pkg/ticket"
	testdb "github.com/codeready-toolchain/recap/test/database"
)

// stubLLM scripts completion responses per prompt kind: metadata prompts
// ask for JSON, postmortem prompts ask for Markdown.
type stubLLM struct {
	metadataJSON   string
	postmortemMD   string
	postmortemErr  error
	metadataCalls  atomic.Int32
	postmortemCall atomic.Int32
}

func (s *stubLLM) Complete(_ context.Context, prompt string, _ int) (string, error) {
	if strings.Contains(prompt, "respond with ONLY a JSON object") {
		s.metadataCalls.Add(1)
		return s.metadataJSON, nil
	}
	s.postmortemCall.Add(1)
	if s.postmortemErr != nil {
		return "", s.postmortemErr
	}
	return s.postmortemMD, nil
}

func (s *stubLLM) Ping(context.Context) error { return nil }

type pipelineFixture struct {
	imports     *services.ImportService
	incidents   *services.IncidentService
	postmortems *services.PostmortemService
	store       *docstore.MemoryStore
	llm         *stubLLM
	executor    *Executor
	entClient   *ent.Client
}

func newFixture(t *testing.T, llmStub *stubLLM, tickets *ticket.Client) *pipelineFixture {
	client := testdb.NewTestClient(t)
	store := docstore.NewMemoryStore()
	imports := services.NewImportService(client.Client, store)
	incidents := services.NewIncidentService(client.Client)
	postmortems := services.NewPostmortemService(client.Client)
	if tickets == nil {
		tickets = ticket.NewClient(nil)
	}

	return &pipelineFixture{
		imports:     imports,
		incidents:   incidents,
		postmortems: postmortems,
		store:       store,
		llm:         llmStub,
		executor:    NewExecutor(imports, incidents, postmortems, store, extract.NewService(), llmStub, tickets),
		entClient:   client.Client,
	}
}

// drive runs the scheduling loop synchronously until no item is runnable:
// claim, execute one stage, apply, repeat.
func (f *pipelineFixture) drive(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < 100; i++ {
		item, err := f.imports.ClaimNextPendingItem(ctx)
		require.NoError(t, err)
		if item == nil {
			return
		}
		result := f.executor.ExecuteStage(ctx, item)
		_, err = f.imports.ApplyStageResult(ctx, item.ID, item.CurrentStep, result)
		require.NoError(t, err)
	}
	t.Fatal("pipeline did not drain within 100 scheduling turns")
}

func (f *pipelineFixture) createSession(t *testing.T, autoPublish bool, doc string) *ent.ImportSession {
	t.Helper()
	session, err := f.imports.CreateSession(context.Background(), models.CreateImportSessionRequest{
		AutoPublish: autoPublish,
		Files: []models.UploadedFile{
			{Name: "postmortem.txt", Type: "text/plain", Data: []byte(doc)},
		},
	})
	require.NoError(t, err)
	return session
}

func (f *pipelineFixture) soleItem(t *testing.T, sessionID string) *ent.ImportItem {
	t.Helper()
	session, err := f.imports.GetSession(context.Background(), sessionID, true)
	require.NoError(t, err)
	require.Len(t, session.Edges.Items, 1)
	return session.Edges.Items[0]
}

const cleanMetadataJSON = `{
	"incident_number": "INC-1234",
	"title": "Checkout latency spike",
	"description": "Connection pool exhaustion in the checkout service.",
	"severity": "high",
	"affected_service": "checkout",
	"summary": "Checkout p99 latency exceeded 5s for 40 minutes.",
	"detected_at": "2026-08-12T10:15:00Z",
	"resolved_at": "2026-08-12T11:00:00Z",
	"has_action_items": false,
	"action_items_count": 0,
	"has_mitigation": true,
	"has_impact": true,
	"has_timeline": true
}`

func TestPipeline_CleanDocumentCompletesEndToEnd(t *testing.T) {
	llmStub := &stubLLM{
		metadataJSON: cleanMetadataJSON,
		postmortemMD: "# Checkout latency spike\n\n## Summary\nPool exhaustion.",
	}
	f := newFixture(t, llmStub, nil)
	ctx := context.Background()

	session := f.createSession(t, false, "INC-1234 checkout outage, severity high")
	f.drive(t)

	item := f.soleItem(t, session.ID)
	assert.Equal(t, importitem.StatusCompleted, item.Status)
	assert.Equal(t, importitem.CurrentStepCompleted, item.CurrentStep)
	assert.Empty(t, item.Edges.Questions, "clean document must never pause for input")
	require.NotNil(t, item.IncidentID)
	require.NotNil(t, item.PostmortemID)

	inc, err := f.incidents.GetIncident(ctx, *item.IncidentID, true)
	require.NoError(t, err)
	assert.Equal(t, "INC-1234", inc.IncidentNumber)
	assert.Equal(t, incident.SeverityHigh, inc.Severity)
	assert.Equal(t, incident.SourceImport, inc.Source)
	require.NotEmpty(t, inc.Edges.TimelineEvents)

	pm, err := f.postmortems.GetPostmortem(ctx, *item.PostmortemID)
	require.NoError(t, err)
	assert.Contains(t, pm.Content, "Checkout latency spike")

	got, err := f.imports.GetSession(ctx, session.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CompletedFiles)
	assert.Equal(t, 0, got.FailedFiles)
}

func TestPipeline_AutoPublishPersistsPublishedPostmortem(t *testing.T) {
	llmStub := &stubLLM{metadataJSON: cleanMetadataJSON, postmortemMD: "# PM"}
	f := newFixture(t, llmStub, nil)

	session := f.createSession(t, true, "doc")
	f.drive(t)

	item := f.soleItem(t, session.ID)
	require.NotNil(t, item.PostmortemID)

	pm, err := f.postmortems.GetPostmortem(context.Background(), *item.PostmortemID)
	require.NoError(t, err)
	assert.Equal(t, "published", string(pm.Status))
	assert.NotNil(t, pm.PublishedAt)
}

func TestPipeline_MissingSeverityPausesForOneQuestion(t *testing.T) {
	missingSeverity := strings.Replace(cleanMetadataJSON, `"severity": "high"`, `"severity": ""`, 1)
	llmStub := &stubLLM{metadataJSON: missingSeverity, postmortemMD: "# PM"}
	f := newFixture(t, llmStub, nil)
	ctx := context.Background()

	session := f.createSession(t, false, "doc without severity")
	f.drive(t)

	item := f.soleItem(t, session.ID)
	assert.Equal(t, importitem.StatusAwaitingInput, item.Status)
	assert.Equal(t, importitem.CurrentStepExtractingMetadata, item.CurrentStep)
	require.Len(t, item.Edges.Questions, 1)
	assert.Equal(t, models.FieldSeverity, item.Edges.Questions[0].Field)
	assert.False(t, item.Edges.Questions[0].Answered)

	_, err := f.imports.SubmitAnswers(ctx, item.ID, []models.QuestionAnswer{
		{QuestionID: item.Edges.Questions[0].ID, Answer: "critical"},
	})
	require.NoError(t, err)

	f.drive(t)

	item = f.soleItem(t, session.ID)
	assert.Equal(t, importitem.StatusCompleted, item.Status)
	require.NotNil(t, item.IncidentID)

	// The generated incident reflects the submitted severity, not a guess.
	inc, err := f.incidents.GetIncident(ctx, *item.IncidentID, false)
	require.NoError(t, err)
	assert.Equal(t, incident.SeverityCritical, inc.Severity)

	// The resumed metadata stage reuses stored metadata instead of paying
	// for a second extraction call.
	assert.Equal(t, int32(1), llmStub.metadataCalls.Load())
}

func TestPipeline_UnusableAnswerGetsFollowUpQuestion(t *testing.T) {
	missingSeverity := strings.Replace(cleanMetadataJSON, `"severity": "high"`, `"severity": ""`, 1)
	llmStub := &stubLLM{metadataJSON: missingSeverity, postmortemMD: "# PM"}
	f := newFixture(t, llmStub, nil)
	ctx := context.Background()

	session := f.createSession(t, false, "doc")
	f.drive(t)

	item := f.soleItem(t, session.ID)
	require.Len(t, item.Edges.Questions, 1)

	_, err := f.imports.SubmitAnswers(ctx, item.ID, []models.QuestionAnswer{
		{QuestionID: item.Edges.Questions[0].ID, Answer: "catastrophic"},
	})
	require.NoError(t, err)

	f.drive(t)

	item = f.soleItem(t, session.ID)
	assert.Equal(t, importitem.StatusAwaitingInput, item.Status)
	require.Len(t, item.Edges.Questions, 2)
	followUp := item.Edges.Questions[1]
	assert.Equal(t, models.FieldSeverity, followUp.Field)
	assert.Contains(t, followUp.Question, "catastrophic")

	_, err = f.imports.SubmitAnswers(ctx, item.ID, []models.QuestionAnswer{
		{QuestionID: followUp.ID, Answer: "low"},
	})
	require.NoError(t, err)

	f.drive(t)
	item = f.soleItem(t, session.ID)
	assert.Equal(t, importitem.StatusCompleted, item.Status)
}

func TestPipeline_MissingDetectionTimePausesForOneQuestion(t *testing.T) {
	missingDetectedAt := strings.Replace(cleanMetadataJSON, `"detected_at": "2026-08-12T10:15:00Z"`, `"detected_at": null`, 1)
	llmStub := &stubLLM{metadataJSON: missingDetectedAt, postmortemMD: "# PM"}
	f := newFixture(t, llmStub, nil)
	ctx := context.Background()

	session := f.createSession(t, false, "doc without a detection time")
	f.drive(t)

	item := f.soleItem(t, session.ID)
	assert.Equal(t, importitem.StatusAwaitingInput, item.Status)
	require.Len(t, item.Edges.Questions, 1)
	assert.Equal(t, models.FieldDetectedAt, item.Edges.Questions[0].Field)

	// An answer that is not a parseable timestamp gets a follow-up.
	_, err := f.imports.SubmitAnswers(ctx, item.ID, []models.QuestionAnswer{
		{QuestionID: item.Edges.Questions[0].ID, Answer: "last Tuesday"},
	})
	require.NoError(t, err)
	f.drive(t)

	item = f.soleItem(t, session.ID)
	assert.Equal(t, importitem.StatusAwaitingInput, item.Status)
	require.Len(t, item.Edges.Questions, 2)
	followUp := item.Edges.Questions[1]
	assert.Equal(t, models.FieldDetectedAt, followUp.Field)
	assert.Contains(t, followUp.Question, "last Tuesday")

	_, err = f.imports.SubmitAnswers(ctx, item.ID, []models.QuestionAnswer{
		{QuestionID: followUp.ID, Answer: "2026-08-12T10:15:00Z"},
	})
	require.NoError(t, err)
	f.drive(t)

	item = f.soleItem(t, session.ID)
	assert.Equal(t, importitem.StatusCompleted, item.Status)
	require.NotNil(t, item.IncidentID)

	inc, err := f.incidents.GetIncident(ctx, *item.IncidentID, false)
	require.NoError(t, err)
	require.NotNil(t, inc.DetectedAt)
	assert.Equal(t, time.Date(2026, 8, 12, 10, 15, 0, 0, time.UTC), inc.DetectedAt.UTC())
}

func TestPipeline_PostmortemFailureRetryReusesIncident(t *testing.T) {
	llmStub := &stubLLM{
		metadataJSON:  cleanMetadataJSON,
		postmortemErr: errors.New("completion timed out"),
	}
	f := newFixture(t, llmStub, nil)
	ctx := context.Background()

	session := f.createSession(t, false, "doc")
	f.drive(t)

	item := f.soleItem(t, session.ID)
	assert.Equal(t, importitem.StatusFailed, item.Status)
	assert.Equal(t, importitem.CurrentStepGeneratingPostmortem, item.CurrentStep)
	require.NotNil(t, item.ErrorMessage)
	assert.Contains(t, *item.ErrorMessage, "completion timed out")
	require.NotNil(t, item.IncidentID, "incident from the earlier stage is preserved")
	firstIncidentID := *item.IncidentID

	got, err := f.imports.GetSession(ctx, session.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 1, got.FailedFiles)

	// Fix the backend and retry: only postmortem generation re-runs.
	llmStub.postmortemErr = nil
	llmStub.postmortemMD = "# Recovered postmortem"
	metadataCallsBefore := llmStub.metadataCalls.Load()

	_, err = f.imports.RetryItem(ctx, item.ID)
	require.NoError(t, err)
	f.drive(t)

	item = f.soleItem(t, session.ID)
	assert.Equal(t, importitem.StatusCompleted, item.Status)
	require.NotNil(t, item.IncidentID)
	assert.Equal(t, firstIncidentID, *item.IncidentID)
	assert.Equal(t, metadataCallsBefore, llmStub.metadataCalls.Load(), "retry must not re-run earlier stages")

	// Exactly one incident exists for this import.
	count, err := f.entClient.Incident.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err = f.imports.GetSession(ctx, session.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CompletedFiles)
	assert.Equal(t, 0, got.FailedFiles)
}

func TestPipeline_LookupFailureIsAbsorbed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	tickets := ticket.NewClient(&config.TicketingConfig{
		BaseURL: srv.URL,
		Timeout: config.Duration(2 * time.Second),
	})

	llmStub := &stubLLM{metadataJSON: cleanMetadataJSON, postmortemMD: "# PM"}
	f := newFixture(t, llmStub, tickets)

	session := f.createSession(t, false, "doc")
	f.drive(t)

	item := f.soleItem(t, session.ID)
	assert.Equal(t, importitem.StatusCompleted, item.Status, "lookup outage must not fail the item")
	require.NotNil(t, item.Metadata)
	assert.Empty(t, item.Metadata.CorroboratedBy)
}

func TestPipeline_LookupCorroboratesMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/tickets/INC-1234", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"key":"INC-1234","summary":"Checkout down","status":"resolved","severity":"high"}`))
	}))
	defer srv.Close()

	tickets := ticket.NewClient(&config.TicketingConfig{
		BaseURL: srv.URL,
		Timeout: config.Duration(2 * time.Second),
	})

	llmStub := &stubLLM{metadataJSON: cleanMetadataJSON, postmortemMD: "# PM"}
	f := newFixture(t, llmStub, tickets)

	session := f.createSession(t, false, "doc")
	f.drive(t)

	item := f.soleItem(t, session.ID)
	assert.Equal(t, importitem.StatusCompleted, item.Status)
	require.NotNil(t, item.Metadata)
	assert.Equal(t, "INC-1234", item.Metadata.CorroboratedBy)
}

func TestPipeline_UnreadableUploadFailsAtFirstStep(t *testing.T) {
	llmStub := &stubLLM{metadataJSON: cleanMetadataJSON, postmortemMD: "# PM"}
	f := newFixture(t, llmStub, nil)
	ctx := context.Background()

	session := f.createSession(t, false, "doc")

	// Simulate a storage loss between upload and processing.
	item := f.soleItem(t, session.ID)
	require.NoError(t, f.store.Delete(ctx, item.StorageKey))

	f.drive(t)

	item = f.soleItem(t, session.ID)
	assert.Equal(t, importitem.StatusFailed, item.Status)
	assert.Equal(t, importitem.CurrentStepUploading, item.CurrentStep)
	require.NotNil(t, item.FailedStep)
	assert.Equal(t, importitem.FailedStepUploading, *item.FailedStep)
}
