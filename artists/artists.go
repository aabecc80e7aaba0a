// Package artists serves the public lineup listing.
package artists

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

// List returns the artist lineup, optionally narrowed by `role` and
// `headliner`. Unknown role values fall through to the store and come
// back empty; they are not an input error.
func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if role := r.URL.Query().Get("role"); role != "" {
		filter["role"] = role
	}
	headliner, err := utils.QueryBool(r, "headliner")
	if err != nil {
		utils.RespondWithFieldErrors(w, []models.FieldError{{
			Field:   "headliner",
			Message: "must be true or false",
		}})
		return
	}
	if headliner != nil {
		filter["headliner"] = *headliner
	}

	docs, err := h.Store.FindMany(ctx, models.ColArtist, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching artists")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.PublicDocs(docs))
}
