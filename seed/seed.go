// Package seed provides the liveness, diagnostics, and demo-content
// endpoints.
package seed

import (
	"context"
	"errors"
	"net/http"
	"time"

	"blazinvibe/db"
	"blazinvibe/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Store  db.Store
	Config db.Config
}

func NewHandler(store db.Store, cfg db.Config) *Handler {
	return &Handler{Store: store, Config: cfg}
}

// Root is the static liveness payload.
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"name":   "BlazinVibe",
		"status": "ok",
	})
}

// Seed populates demonstration content into every collection that is
// currently empty. Repeated calls create nothing new; emptiness is
// re-checked on every call rather than remembered.
func (h *Handler) Seed(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created := utils.M{}
	for _, set := range demoContent() {
		empty, err := h.Store.IsEmpty(ctx, set.collection)
		if err != nil {
			h.seedError(w, err)
			return
		}
		if !empty {
			created[set.collection] = false
			continue
		}
		for _, doc := range set.docs {
			if _, err := h.Store.InsertOne(ctx, set.collection, doc); err != nil {
				h.seedError(w, err)
				return
			}
		}
		created[set.collection] = true
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"ok":      true,
		"created": created,
	})
}

func (h *Handler) seedError(w http.ResponseWriter, err error) {
	if errors.Is(err, db.ErrUnavailable) {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "Database not available")
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "Error seeding content")
}

// Test reports store connectivity for operational visibility. It never
// fails: store errors are truncated into the status strings instead of
// propagating.
func (h *Handler) Test(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	resp := utils.M{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      "❌ Not Set",
		"database_name":     "❌ Not Set",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}
	if h.Config.URI != "" {
		resp["database_url"] = "✅ Set"
	}
	if h.Config.Name != "" {
		resp["database_name"] = h.Config.Name
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.Store.Ping(ctx); err == nil {
		resp["database"] = "✅ Available"
		resp["connection_status"] = "Connected"
		if name := h.Store.Name(); name != "" {
			resp["database_name"] = name
		}

		if cols, err := h.Store.Collections(ctx); err != nil {
			resp["database"] = "⚠️ Connected but Error: " + truncate(err.Error(), 80)
		} else {
			if len(cols) > 20 {
				cols = cols[:20]
			}
			resp["collections"] = cols
			resp["database"] = "✅ Connected & Working"
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
