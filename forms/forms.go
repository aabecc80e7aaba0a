// Package forms handles the two visitor-facing write endpoints:
// creator applications and newsletter signups.
package forms

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

// Apply accepts a creator application. Every stored application starts
// life as "submitted" regardless of the request body.
func (h *Handler) Apply(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload models.ApplicationIn
	if !utils.DecodeBody(w, r, &payload) {
		return
	}
	if fields := models.Validate(payload); fields != nil {
		utils.RespondWithFieldErrors(w, fields)
		return
	}

	id, ok := h.insert(w, r, models.ColApplication, payload.Document())
	if !ok {
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"ok":      true,
		"id":      id,
		"message": "Thanks for applying — we’ll get back to you soon.",
	})
}

// Newsletter records a signup, attributed to the website.
func (h *Handler) Newsletter(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload models.NewsletterIn
	if !utils.DecodeBody(w, r, &payload) {
		return
	}
	if fields := models.Validate(payload); fields != nil {
		utils.RespondWithFieldErrors(w, fields)
		return
	}

	id, ok := h.insert(w, r, models.ColNewsletter, payload.Document())
	if !ok {
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"ok":      true,
		"id":      id,
		"message": "Thanks for joining the vibe!",
	})
}

func (h *Handler) insert(w http.ResponseWriter, r *http.Request, collection string, doc any) (string, bool) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, err := h.Store.InsertOne(ctx, collection, doc)
	if err != nil {
		if errors.Is(err, db.ErrUnavailable) {
			utils.RespondWithError(w, http.StatusServiceUnavailable, "Database not available")
		} else {
			utils.RespondWithError(w, http.StatusInternalServerError, "Error saving submission")
		}
		return "", false
	}
	return id, true
}
