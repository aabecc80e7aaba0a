package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blazinvibe/db"
	"blazinvibe/middleware"
	"blazinvibe/routes"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	cfg := db.Config{
		URI:  os.Getenv("DATABASE_URL"),
		Name: os.Getenv("DATABASE_NAME"),
	}
	if cfg.Name == "" {
		cfg.Name = "blazinvibe"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8000"
	} else if port[0] != ':' {
		port = ":" + port
	}

	// Connect once at startup. A missing or unreachable database is not
	// fatal: the server comes up in degraded mode, serving empty content
	// and rejecting writes with 503.
	var store db.Store
	mongoStore, err := db.Connect(cfg)
	if err != nil {
		log.Printf("⚠️ MongoDB unavailable, starting in degraded mode: %v", err)
		store = db.Unavailable{}
	} else {
		log.Printf("✅ Connected to MongoDB database %q", mongoStore.Name())
		store = mongoStore
	}

	router := routes.New(store, cfg)

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(router)

	handler := middleware.Logging(middleware.SecurityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("🛑 Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Graceful shutdown failed: %v", err)
	}
	if mongoStore != nil {
		if err := mongoStore.Disconnect(ctx); err != nil {
			log.Printf("⚠️ MongoDB disconnect: %v", err)
		}
	}

	log.Println("✅ Server stopped cleanly")
}
