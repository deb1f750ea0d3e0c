package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/recap/pkg/docstore"
	"github.com/codeready-toolchain/recap/pkg/services"
	testdb "github.com/codeready-toolchain/recap/test/database"
)

// testServer bundles the API server with direct service access for seeding.
type testServer struct {
	server      *Server
	imports     *services.ImportService
	incidents   *services.IncidentService
	postmortems *services.PostmortemService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	client := testdb.NewTestClient(t)
	imports := services.NewImportService(client.Client, docstore.NewMemoryStore())
	incidents := services.NewIncidentService(client.Client)
	postmortems := services.NewPostmortemService(client.Client)

	return &testServer{
		server:      NewServer(client, imports, incidents, postmortems, nil),
		imports:     imports,
		incidents:   incidents,
		postmortems: postmortems,
	}
}

// do performs a request against the in-process handler and decodes the JSON
// response body into out (if non-nil).
func (ts *testServer) do(t *testing.T, method, path string, body io.Reader, contentType string, out any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	ts.server.Handler().ServeHTTP(rec, req)
	if out != nil && rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func (ts *testServer) doJSON(t *testing.T, method, path string, payload any, out any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return ts.do(t, method, path, bytes.NewReader(raw), "application/json", out)
}

// multipartUpload builds a multipart body with the given named text files.
func multipartUpload(t *testing.T, autoPublish string, files map[string]string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if autoPublish != "" {
		require.NoError(t, w.WriteField("auto_publish", autoPublish))
	}
	for name, content := range files {
		part, err := w.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestServer_SecurityHeaders(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/health", nil, "", nil)

	require.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	require.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
}

func TestServer_HealthHandler(t *testing.T) {
	ts := newTestServer(t)

	var resp HealthResponse
	rec := ts.do(t, http.MethodGet, "/health", nil, "", &resp)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, healthStatusHealthy, resp.Status)
	require.Equal(t, healthStatusHealthy, resp.Checks["database"].Status)
	// No worker pool attached in this test server.
	require.NotContains(t, resp.Checks, "worker_pool")
}
