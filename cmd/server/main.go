package main

import (
	"fmt"
	"log"

	"project-hub/internal/config"
	"project-hub/internal/server"
	"project-hub/internal/storage"
	"project-hub/internal/store"
)

func main() {
	cfg := config.Load()

	var st storage.Storage
	if cfg.DemoMode {
		log.Println("running in demo mode with seeded data")
		st = storage.OpenDemo()
	} else {
		remote, err := storage.OpenRemote(cfg.DBDSN)
		if err != nil {
			// без базы сервис остаётся рабочим на демо-данных
			log.Printf("database unavailable, falling back to demo data: %v", err)
			cfg.DemoMode = true
			st = storage.OpenDemo()
		} else {
			st = remote
		}
	}

	s := store.New(st)
	if err := s.LoadAll(); err != nil {
		if cfg.DemoMode {
			log.Fatalf("failed to load demo data: %v", err)
		}
		log.Printf("initial load failed, falling back to demo data: %v", err)
		cfg.DemoMode = true
		s = store.New(storage.OpenDemo())
		if err := s.LoadAll(); err != nil {
			log.Fatalf("failed to load demo data: %v", err)
		}
	}

	r := server.NewRouter(cfg, s)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
