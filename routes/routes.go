package routes

import (
	"blazinvibe/artists"
	"blazinvibe/content"
	"blazinvibe/db"
	"blazinvibe/eventinfo"
	"blazinvibe/forms"
	"blazinvibe/seed"

	"github.com/julienschmidt/httprouter"
)

// New builds the full router over an injected store.
func New(store db.Store, cfg db.Config) *httprouter.Router {
	router := httprouter.New()
	AddUtilityRoutes(router, seed.NewHandler(store, cfg))
	AddEventInfoRoutes(router, eventinfo.NewHandler(store))
	AddArtistRoutes(router, artists.NewHandler(store))
	AddContentRoutes(router, content.NewHandler(store))
	AddFormRoutes(router, forms.NewHandler(store))
	return router
}

func AddUtilityRoutes(router *httprouter.Router, h *seed.Handler) {
	router.GET("/", h.Root)
	router.GET("/test", h.Test)
	router.POST("/api/seed", h.Seed)
}

func AddEventInfoRoutes(router *httprouter.Router, h *eventinfo.Handler) {
	router.GET("/api/eventinfo", h.Get)
	router.POST("/api/eventinfo", h.Upsert)
}

func AddArtistRoutes(router *httprouter.Router, h *artists.Handler) {
	router.GET("/api/artists", h.List)
}

func AddContentRoutes(router *httprouter.Router, h *content.Handler) {
	router.GET("/api/experiences", h.Experiences)
	router.GET("/api/tickets", h.Tickets)
	router.GET("/api/faqs", h.Faqs)
	router.GET("/api/testimonials", h.Testimonials)
	router.GET("/api/media", h.Media)
}

func AddFormRoutes(router *httprouter.Router, h *forms.Handler) {
	router.POST("/api/apply", h.Apply)
	router.POST("/api/newsletter", h.Newsletter)
}
