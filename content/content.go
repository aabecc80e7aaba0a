// Package content serves the append-only site content collections:
// experience zones, ticket tiers, FAQs, testimonials, and media.
package content

import (
	"context"
	"net/http"
	"time"

	"blazinvibe/db"
	"blazinvibe/models"
	"blazinvibe/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

type Handler struct {
	Store db.Store
}

func NewHandler(store db.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, collection, errMsg string) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	docs, err := h.Store.FindMany(ctx, collection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, errMsg)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.PublicDocs(docs))
}

func (h *Handler) Experiences(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.list(w, r, models.ColExperienceZone, "Error fetching experiences")
}

func (h *Handler) Tickets(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.list(w, r, models.ColTicketTier, "Error fetching tickets")
}

func (h *Handler) Faqs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.list(w, r, models.ColFaq, "Error fetching FAQs")
}

func (h *Handler) Testimonials(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.list(w, r, models.ColTestimonial, "Error fetching testimonials")
}

func (h *Handler) Media(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.list(w, r, models.ColMediaItem, "Error fetching media")
}
