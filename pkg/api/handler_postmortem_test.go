package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/recap/pkg/models"
)

func seedPostmortem(t *testing.T, ts *testServer, publish bool) (incidentID, postmortemID string) {
	t.Helper()
	ctx := context.Background()

	inc, err := ts.incidents.CreateIncident(ctx, models.CreateIncidentRequest{Title: "DB outage"})
	require.NoError(t, err)

	pm, err := ts.postmortems.CreatePostmortem(ctx, inc.ID, "# DB outage\n\n## Summary\nBad day.", publish)
	require.NoError(t, err)
	return inc.ID, pm.ID
}

func TestGetPostmortemHandler(t *testing.T) {
	ts := newTestServer(t)
	_, pmID := seedPostmortem(t, ts, false)

	t.Run("returns content", func(t *testing.T) {
		var resp PostmortemResponse
		rec := ts.do(t, http.MethodGet, "/api/v1/postmortems/"+pmID, nil, "", &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "draft", resp.Status)
		assert.Contains(t, resp.Content, "## Summary")
		assert.Nil(t, resp.PublishedAt)
	})

	t.Run("unknown postmortem returns 404", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/v1/postmortems/nope", nil, "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPublishPostmortemHandler(t *testing.T) {
	ts := newTestServer(t)
	_, pmID := seedPostmortem(t, ts, false)

	t.Run("publishes a draft", func(t *testing.T) {
		var resp PostmortemResponse
		rec := ts.do(t, http.MethodPost, "/api/v1/postmortems/"+pmID+"/publish", nil, "", &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "published", resp.Status)
		assert.NotNil(t, resp.PublishedAt)
	})

	t.Run("publishing again is a no-op", func(t *testing.T) {
		var resp PostmortemResponse
		rec := ts.do(t, http.MethodPost, "/api/v1/postmortems/"+pmID+"/publish", nil, "", &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "published", resp.Status)
	})
}

func TestListIncidentPostmortemsHandler(t *testing.T) {
	ts := newTestServer(t)
	incidentID, _ := seedPostmortem(t, ts, true)

	var resp []PostmortemResponse
	rec := ts.do(t, http.MethodGet, "/api/v1/incidents/"+incidentID+"/postmortems", nil, "", &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp, 1)
	assert.Equal(t, incidentID, resp[0].IncidentID)
	// Listing omits the document body.
	assert.Empty(t, resp[0].Content)
}
