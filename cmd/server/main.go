package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"word-search-solver/internal/api"
	"word-search-solver/internal/config"
)

func main() {
	configFile := flag.String("config", "wordsearch.toml", "Path to the TOML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	log.Printf("Connecting to database: %s", cfg.DBPath)
	db, err := api.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := api.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create server with database connection
	server := api.NewServer(db, cfg)

	mux := chi.NewMux()
	mux.Use(middleware.RequestID, middleware.Logger, middleware.Recoverer)
	h := api.HandlerFromMux(server, mux)

	s := &http.Server{
		Addr:    cfg.Addr,
		Handler: h,
	}

	log.Printf("Starting server on %s", cfg.Addr)
	if err := s.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
