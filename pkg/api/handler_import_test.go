package api

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/recap/ent/importitem"
	"github.com/codeready-toolchain/recap/pkg/models"
	"github.com/codeready-toolchain/recap/pkg/services"
)

func TestCreateSessionHandler(t *testing.T) {
	t.Run("creates session from multipart upload", func(t *testing.T) {
		ts := newTestServer(t)
		body, contentType := multipartUpload(t, "true", map[string]string{
			"outage.txt": "INC-1 database outage",
			"latency.md": "# INC-2 latency regression",
		})

		var resp SessionResponse
		rec := ts.do(t, http.MethodPost, "/api/v1/import/sessions", body, contentType, &resp)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.NotEmpty(t, resp.ID)
		assert.True(t, resp.AutoPublish)
		assert.Equal(t, 2, resp.TotalFiles)
		assert.Equal(t, services.SessionStatusProcessing, resp.Status)
		require.Len(t, resp.Items, 2)
		for _, item := range resp.Items {
			assert.Equal(t, string(importitem.StatusPending), item.Status)
			assert.Equal(t, string(importitem.CurrentStepUploading), item.CurrentStep)
		}
	})

	t.Run("rejects non-multipart request", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.do(t, http.MethodPost, "/api/v1/import/sessions",
			strings.NewReader(`{"files":[]}`), "application/json", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects empty upload", func(t *testing.T) {
		ts := newTestServer(t)
		body, contentType := multipartUpload(t, "", map[string]string{})
		rec := ts.do(t, http.MethodPost, "/api/v1/import/sessions", body, contentType, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "at least one file")
	})

	t.Run("rejects unsupported file type", func(t *testing.T) {
		ts := newTestServer(t)
		body, contentType := multipartUpload(t, "", map[string]string{
			"diagram.png": "not-an-image-but-the-name-counts",
		})
		rec := ts.do(t, http.MethodPost, "/api/v1/import/sessions", body, contentType, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects bad auto_publish value", func(t *testing.T) {
		ts := newTestServer(t)
		body, contentType := multipartUpload(t, "maybe", map[string]string{
			"outage.txt": "INC-1",
		})
		rec := ts.do(t, http.MethodPost, "/api/v1/import/sessions", body, contentType, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "auto_publish")
	})
}

func TestGetSessionHandler(t *testing.T) {
	ts := newTestServer(t)
	body, contentType := multipartUpload(t, "", map[string]string{"doc.txt": "INC-9"})
	var created SessionResponse
	rec := ts.do(t, http.MethodPost, "/api/v1/import/sessions", body, contentType, &created)
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("returns session with items", func(t *testing.T) {
		var resp SessionResponse
		rec := ts.do(t, http.MethodGet, "/api/v1/import/sessions/"+created.ID, nil, "", &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, created.ID, resp.ID)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "doc.txt", resp.Items[0].FileName)
	})

	t.Run("unknown session returns 404", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/v1/import/sessions/nope", nil, "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListSessionsHandler(t *testing.T) {
	ts := newTestServer(t)
	for i := 0; i < 3; i++ {
		body, contentType := multipartUpload(t, "", map[string]string{"doc.txt": "INC-1"})
		rec := ts.do(t, http.MethodPost, "/api/v1/import/sessions", body, contentType, nil)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	t.Run("lists with pagination", func(t *testing.T) {
		var resp SessionListResponse
		rec := ts.do(t, http.MethodGet, "/api/v1/import/sessions?limit=2", nil, "", &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Len(t, resp.Sessions, 2)
	})

	t.Run("invalid limit returns 400", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/v1/import/sessions?limit=0", nil, "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid offset returns 400", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/v1/import/sessions?offset=-1", nil, "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSubmitAnswersHandler(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	// Seed an item paused on a clarifying question.
	body, contentType := multipartUpload(t, "", map[string]string{"doc.txt": "INC-1"})
	var created SessionResponse
	rec := ts.do(t, http.MethodPost, "/api/v1/import/sessions", body, contentType, &created)
	require.Equal(t, http.StatusCreated, rec.Code)
	itemID := created.Items[0].ID

	item, err := ts.imports.ClaimNextPendingItem(ctx)
	require.NoError(t, err)
	require.NotNil(t, item)
	paused, err := ts.imports.ApplyStageResult(ctx, item.ID, importitem.CurrentStepExtractingMetadata, services.StageResult{
		Outcome: services.StageNeedsInput,
		Questions: []models.QuestionDraft{
			{Field: models.FieldSeverity, Question: "What was the severity?"},
		},
	})
	require.NoError(t, err)
	questionID := paused.Edges.Questions[0].ID

	t.Run("unanswered question has no answer in the response", func(t *testing.T) {
		var resp ItemResponse
		rec := ts.do(t, http.MethodGet, "/api/v1/import/items/"+itemID, nil, "", &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, resp.Questions, 1)
		assert.False(t, resp.Questions[0].Answered)
		assert.Empty(t, resp.Questions[0].Answer)
	})

	t.Run("rejects empty answers", func(t *testing.T) {
		rec := ts.doJSON(t, http.MethodPost, "/api/v1/import/items/"+itemID+"/answers",
			map[string]any{"answers": []any{}}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown item returns 404", func(t *testing.T) {
		rec := ts.doJSON(t, http.MethodPost, "/api/v1/import/items/nope/answers",
			map[string]any{"answers": []map[string]string{{"question_id": questionID, "answer": "high"}}}, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("records answer and resumes item", func(t *testing.T) {
		var resp ItemResponse
		rec := ts.doJSON(t, http.MethodPost, "/api/v1/import/items/"+itemID+"/answers",
			map[string]any{"answers": []map[string]string{{"question_id": questionID, "answer": "high"}}}, &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, string(importitem.StatusPending), resp.Status)
		require.Len(t, resp.Questions, 1)
		assert.True(t, resp.Questions[0].Answered)
		assert.Equal(t, "high", resp.Questions[0].Answer)
	})

	t.Run("second answer to same question returns 409", func(t *testing.T) {
		rec := ts.doJSON(t, http.MethodPost, "/api/v1/import/items/"+itemID+"/answers",
			map[string]any{"answers": []map[string]string{{"question_id": questionID, "answer": "low"}}}, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestRetryHandlers(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	body, contentType := multipartUpload(t, "", map[string]string{"doc.txt": "INC-1"})
	var created SessionResponse
	rec := ts.do(t, http.MethodPost, "/api/v1/import/sessions", body, contentType, &created)
	require.Equal(t, http.StatusCreated, rec.Code)
	itemID := created.Items[0].ID

	t.Run("retrying a non-failed item returns 409", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/v1/import/items/"+itemID+"/retry", nil, "", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	// Fail the item, then retry through the API.
	item, err := ts.imports.ClaimNextPendingItem(ctx)
	require.NoError(t, err)
	require.NotNil(t, item)
	_, err = ts.imports.ApplyStageResult(ctx, item.ID, importitem.CurrentStepExtractingText, services.StageResult{
		Outcome:      services.StageFailed,
		FailureCause: assert.AnError,
	})
	require.NoError(t, err)

	t.Run("retry re-queues a failed item", func(t *testing.T) {
		var resp ItemResponse
		rec := ts.do(t, http.MethodPost, "/api/v1/import/items/"+itemID+"/retry", nil, "", &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, string(importitem.StatusPending), resp.Status)
		assert.Empty(t, resp.ErrorMessage)
	})

	t.Run("retry-failed with nothing failed reports zero", func(t *testing.T) {
		var resp RetryFailedResponse
		rec := ts.do(t, http.MethodPost, "/api/v1/import/sessions/"+created.ID+"/retry-failed", nil, "", &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0, resp.RetriedItems)
	})

	t.Run("retry-failed on unknown session returns 404", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/v1/import/sessions/nope/retry-failed", nil, "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
