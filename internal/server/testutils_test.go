package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wisp167/masar/internal/data"
)

const testJWTKey = "test-signing-key"

type testServer struct {
	*httptest.Server
	app *Application
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWith(t, nil)
}

// newTestServerWith lets a test adjust the config before the application is
// built.
func newTestServerWith(t *testing.T, adjust func(*Config)) *testServer {
	t.Helper()

	cfg := Config{
		Env:        "testing",
		Storage:    StorageMemory,
		NumWorkers: 10,
		JWTKey:     testJWTKey,
		TokenTTL:   time.Hour,
	}
	if adjust != nil {
		adjust(&cfg)
	}
	app := NewApplication(cfg, zap.NewNop().Sugar(), data.NewMemoryKV())
	_, err := app.models.Initialize(context.Background())
	require.NoError(t, err)

	ts := httptest.NewServer(app.Handler())
	t.Cleanup(ts.Close)
	return &testServer{Server: ts, app: app}
}

func (ts *testServer) authenticateUser(t *testing.T, email, password string) string {
	t.Helper()
	payload := fmt.Sprintf(`{"email": %q, "password": %q}`, email, password)
	resp := ts.makeRequest(t, http.MethodPost, "/api/auth/login", "", []byte(payload))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "Auth should return 200 OK")

	var response map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response), "Failed to decode auth response")

	jwtToken, ok := response["token"].(string)
	require.True(t, ok, "JWT token not found in auth response")
	require.NotEmpty(t, jwtToken, "JWT token should not be empty")
	return jwtToken
}

func (ts *testServer) makeRequest(t *testing.T, method, path, token string, body []byte) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, ts.URL+path, bytes.NewBuffer(body))
	require.NoError(t, err, "Failed to create request")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err, "Request failed")
	return resp
}

// do sends the request, checks the status and decodes the body into dst when
// dst is not nil.
func (ts *testServer) do(t *testing.T, method, path, token string, body any, status int, dst any) {
	t.Helper()
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
	}

	resp := ts.makeRequest(t, method, path, token, raw)
	defer resp.Body.Close()
	assert.Equal(t, status, resp.StatusCode, "%s %s", method, path)
	if dst != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
	}
}
