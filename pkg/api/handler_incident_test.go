package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIncidentHandler(t *testing.T) {
	t.Run("creates incident with defaults", func(t *testing.T) {
		ts := newTestServer(t)
		var resp IncidentResponse
		rec := ts.doJSON(t, http.MethodPost, "/api/v1/incidents",
			map[string]string{"title": "Checkout down"}, &resp)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "Checkout down", resp.Title)
		assert.Equal(t, "medium", resp.Severity)
		assert.Equal(t, "open", resp.Status)
		assert.Equal(t, "manual", resp.Source)
	})

	t.Run("missing title returns 400", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.doJSON(t, http.MethodPost, "/api/v1/incidents",
			map[string]string{"description": "no title"}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid severity returns 400", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.doJSON(t, http.MethodPost, "/api/v1/incidents",
			map[string]string{"title": "x", "severity": "catastrophic"}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate incident number returns 409", func(t *testing.T) {
		ts := newTestServer(t)
		payload := map[string]string{"title": "x", "incident_number": "INC-42"}
		rec := ts.doJSON(t, http.MethodPost, "/api/v1/incidents", payload, nil)
		require.Equal(t, http.StatusCreated, rec.Code)
		rec = ts.doJSON(t, http.MethodPost, "/api/v1/incidents", payload, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestGetIncidentHandler(t *testing.T) {
	ts := newTestServer(t)

	var created IncidentResponse
	rec := ts.doJSON(t, http.MethodPost, "/api/v1/incidents",
		map[string]string{"title": "DB outage", "severity": "high"}, &created)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.doJSON(t, http.MethodPost, "/api/v1/incidents/"+created.ID+"/timeline",
		map[string]string{"event_type": "detected", "description": "Alerts fired"}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.doJSON(t, http.MethodPost, "/api/v1/incidents/"+created.ID+"/action-items",
		map[string]string{"description": "Add connection pool alerting", "owner": "sre-team"}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("returns incident with edges", func(t *testing.T) {
		var resp IncidentResponse
		rec := ts.do(t, http.MethodGet, "/api/v1/incidents/"+created.ID, nil, "", &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, resp.Timeline, 1)
		assert.Equal(t, "detected", resp.Timeline[0].EventType)
		require.Len(t, resp.ActionItems, 1)
		assert.Equal(t, "sre-team", resp.ActionItems[0].Owner)
	})

	t.Run("unknown incident returns 404", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/v1/incidents/nope", nil, "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("completes an action item", func(t *testing.T) {
		var inc IncidentResponse
		rec := ts.do(t, http.MethodGet, "/api/v1/incidents/"+created.ID, nil, "", &inc)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, inc.ActionItems, 1)

		var resp ActionItemResponse
		rec = ts.do(t, http.MethodPost, "/api/v1/action-items/"+inc.ActionItems[0].ID+"/complete", nil, "", &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "done", resp.Status)
	})

	t.Run("completing unknown action item returns 404", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/v1/action-items/nope/complete", nil, "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("timeline event on unknown incident returns 404", func(t *testing.T) {
		rec := ts.doJSON(t, http.MethodPost, "/api/v1/incidents/nope/timeline",
			map[string]string{"event_type": "detected", "description": "x"}, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListIncidentsHandler(t *testing.T) {
	ts := newTestServer(t)
	for _, severity := range []string{"low", "high", "high"} {
		rec := ts.doJSON(t, http.MethodPost, "/api/v1/incidents",
			map[string]string{"title": "incident", "severity": severity}, nil)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	t.Run("filters by severity", func(t *testing.T) {
		var resp IncidentListResponse
		rec := ts.do(t, http.MethodGet, "/api/v1/incidents?severity=high", nil, "", &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 2, resp.TotalCount)
	})

	t.Run("invalid severity filter returns 400", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/v1/incidents?severity=bogus", nil, "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid status filter returns 400", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/v1/incidents?status=bogus", nil, "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("pagination caps limit", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/v1/incidents?limit=1000", nil, "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateIncidentStatusHandler(t *testing.T) {
	ts := newTestServer(t)

	var created IncidentResponse
	rec := ts.doJSON(t, http.MethodPost, "/api/v1/incidents",
		map[string]string{"title": "outage"}, &created)
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("moves to resolved and stamps resolved_at", func(t *testing.T) {
		var resp IncidentResponse
		rec := ts.doJSON(t, http.MethodPatch, "/api/v1/incidents/"+created.ID+"/status",
			map[string]string{"status": "resolved"}, &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "resolved", resp.Status)
		assert.NotNil(t, resp.ResolvedAt)
	})

	t.Run("invalid status returns 400", func(t *testing.T) {
		rec := ts.doJSON(t, http.MethodPatch, "/api/v1/incidents/"+created.ID+"/status",
			map[string]string{"status": "obliterated"}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
