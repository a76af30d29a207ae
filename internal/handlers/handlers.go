package handlers

import (
	"project-hub/internal/config"
	"project-hub/internal/store"
)

// Handler держит зависимости хендлеров явно — никаких пакетных глобалов.
type Handler struct {
	store *store.Store
	cfg   *config.Config
}

func New(s *store.Store, cfg *config.Config) *Handler {
	return &Handler{store: s, cfg: cfg}
}
