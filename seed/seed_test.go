package seed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"blazinvibe/db"
	"blazinvibe/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func countAll(t *testing.T, store db.Store) map[string]int {
	t.Helper()
	counts := map[string]int{}
	for _, col := range []string{
		models.ColEventInfo, models.ColArtist, models.ColExperienceZone,
		models.ColTicketTier, models.ColFaq, models.ColMediaItem,
	} {
		docs, err := store.FindMany(context.Background(), col, bson.M{})
		require.NoError(t, err)
		counts[col] = len(docs)
	}
	return counts
}

func TestSeedIsIdempotent(t *testing.T) {
	store := db.NewMemory()
	h := NewHandler(store, db.Config{})

	w := httptest.NewRecorder()
	h.Seed(w, httptest.NewRequest(http.MethodPost, "/api/seed", nil), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
	created := body["created"].(map[string]any)
	assert.Equal(t, true, created[models.ColArtist])

	first := countAll(t, store)
	assert.Positive(t, first[models.ColArtist])
	assert.Equal(t, 1, first[models.ColEventInfo])

	w = httptest.NewRecorder()
	h.Seed(w, httptest.NewRequest(http.MethodPost, "/api/seed", nil), nil)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	created = body["created"].(map[string]any)
	assert.Equal(t, false, created[models.ColArtist])

	assert.Equal(t, first, countAll(t, store))
}

func TestSeedSkipsNonEmptyCollections(t *testing.T) {
	store := db.NewMemory()
	_, err := store.InsertOne(context.Background(), models.ColFaq,
		models.Faq{Question: "existing", Answer: "kept"})
	require.NoError(t, err)

	h := NewHandler(store, db.Config{})
	w := httptest.NewRecorder()
	h.Seed(w, httptest.NewRequest(http.MethodPost, "/api/seed", nil), nil)
	require.Equal(t, http.StatusOK, w.Code)

	docs, err := store.FindMany(context.Background(), models.ColFaq, bson.M{})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "existing", docs[0]["question"])
}

func TestSeedUnavailableStore(t *testing.T) {
	h := NewHandler(db.Unavailable{}, db.Config{})

	w := httptest.NewRecorder()
	h.Seed(w, httptest.NewRequest(http.MethodPost, "/api/seed", nil), nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "Database not available")
}

func TestRootLiveness(t *testing.T) {
	h := NewHandler(db.Unavailable{}, db.Config{})

	w := httptest.NewRecorder()
	h.Root(w, httptest.NewRequest(http.MethodGet, "/", nil), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name": "BlazinVibe", "status": "ok"}`, w.Body.String())
}

func TestDiagnosticsConnected(t *testing.T) {
	store := db.NewMemory()
	_, err := store.InsertOne(context.Background(), models.ColFaq, models.Faq{Question: "q", Answer: "a"})
	require.NoError(t, err)

	h := NewHandler(store, db.Config{URI: "mongodb://localhost:27017", Name: "blazinvibe"})
	w := httptest.NewRecorder()
	h.Test(w, httptest.NewRequest(http.MethodGet, "/test", nil), nil)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "✅ Running", body["backend"])
	assert.Equal(t, "✅ Connected & Working", body["database"])
	assert.Equal(t, "✅ Set", body["database_url"])
	assert.Equal(t, "memory", body["database_name"])
	assert.Equal(t, "Connected", body["connection_status"])
	assert.Equal(t, []any{"faq"}, body["collections"])
}

func TestDiagnosticsUnavailable(t *testing.T) {
	h := NewHandler(db.Unavailable{}, db.Config{})

	w := httptest.NewRecorder()
	h.Test(w, httptest.NewRequest(http.MethodGet, "/test", nil), nil)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "❌ Not Available", body["database"])
	assert.Equal(t, "❌ Not Set", body["database_url"])
	assert.Equal(t, "❌ Not Set", body["database_name"])
	assert.Equal(t, "Not Connected", body["connection_status"])
	assert.Equal(t, []any{}, body["collections"])
}

func TestDemoContentIsSchemaValid(t *testing.T) {
	for _, set := range demoContent() {
		assert.NotEmpty(t, set.docs, set.collection)
	}
}
