package main

import (
	"log"

	"notesd/internal/config"
	"notesd/internal/infra/db"
	httpapi "notesd/internal/infra/http"
)

func main() {
	cfg := config.FromEnv()
	store, err := db.NewStore(cfg)
	if err != nil {
		log.Fatalf("failed to init store: %v", err)
	}

	srv := httpapi.NewServer(cfg, store)
	if err := srv.Run(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
