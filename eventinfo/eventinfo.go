// Package eventinfo serves the singleton core-event document.
package eventinfo

import (
	"context"
	"errors"
	"net/http"
	"time"

	"blazinvibe/db"
	"blazinvibe/models"
	"blazinvibe/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Store db.Store
}

func NewHandler(store db.Store) *Handler {
	return &Handler{Store: store}
}

// Get returns the current event info, or `{}` when none has been set
// or the store is down.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	doc, err := h.Store.FindLatest(ctx, models.ColEventInfo)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching event info")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.PublicDoc(doc))
}

// Upsert replaces the event info wholesale. The collection holds one
// document at most; there is no field-level merge.
func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload models.EventInfoIn
	if !utils.DecodeBody(w, r, &payload) {
		return
	}
	if fields := models.Validate(payload); fields != nil {
		utils.RespondWithFieldErrors(w, fields)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.Store.ReplaceSingleton(ctx, models.ColEventInfo, payload.Document()); err != nil {
		if errors.Is(err, db.ErrUnavailable) {
			utils.RespondWithError(w, http.StatusServiceUnavailable, "Database not available")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving event info")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"ok":      true,
		"message": "Event info saved.",
	})
}
