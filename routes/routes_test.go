package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blazinvibe/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, target, reader))
	return w
}

// Walks the visitor flow end to end: seed, browse content, filter the
// lineup, submit an application.
func TestVisitorFlow(t *testing.T) {
	router := New(db.NewMemory(), db.Config{URI: "mongodb://localhost:27017", Name: "blazinvibe"})

	w := doRequest(t, router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/seed", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/api/tickets", "")
	require.Equal(t, http.StatusOK, w.Code)
	var tickets []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tickets))
	assert.NotEmpty(t, tickets)

	w = doRequest(t, router, http.MethodGet, "/api/artists?headliner=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	var headliners []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &headliners))
	require.Len(t, headliners, 1)
	assert.Equal(t, "NovaPulse", headliners[0]["name"])

	w = doRequest(t, router, http.MethodGet, "/api/eventinfo", "")
	require.Equal(t, http.StatusOK, w.Code)
	var info map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "BlazinVibe Festival", info["name"])

	w = doRequest(t, router, http.MethodPost, "/api/apply",
		`{"name": "Jane", "discipline": "DJ", "email": "jane@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var ack map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ack))
	assert.Equal(t, true, ack["ok"])
	assert.NotEmpty(t, ack["id"])
}

// With no database, every read renders empty and every write is 503.
func TestDegradedModeAcrossAllRoutes(t *testing.T) {
	router := New(db.Unavailable{}, db.Config{})

	for _, target := range []string{
		"/api/artists", "/api/experiences", "/api/tickets",
		"/api/faqs", "/api/testimonials", "/api/media",
	} {
		w := doRequest(t, router, http.MethodGet, target, "")
		assert.Equal(t, http.StatusOK, w.Code, target)
		assert.Equal(t, "[]\n", w.Body.String(), target)
	}

	w := doRequest(t, router, http.MethodGet, "/api/eventinfo", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())

	writes := []struct{ target, body string }{
		{"/api/apply", `{"name": "Jane", "discipline": "DJ", "email": "jane@example.com"}`},
		{"/api/newsletter", `{"email": "fan@example.com"}`},
		{"/api/eventinfo", `{"name": "x", "date_iso": "2026-08-22T18:00:00Z", "venue": "v", "address": "a", "city": "c", "country": "nl"}`},
		{"/api/seed", ""},
	}
	for _, tc := range writes {
		w := doRequest(t, router, http.MethodPost, tc.target, tc.body)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, tc.target)
		assert.Contains(t, w.Body.String(), "Database not available", tc.target)
	}

	// diagnostics never fails, even with no store
	w = doRequest(t, router, http.MethodGet, "/test", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Not Connected")
}
