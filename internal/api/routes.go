package api

import (
	"net/http"
)

// RegisterRoutes регистрирует все маршруты API.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Middleware chain
	chain := Chain(
		Recovery(h.logger),
		Logging(h.logger),
	)

	// Health и каталоги
	mux.Handle("GET /api/health", chain(http.HandlerFunc(h.Health)))
	mux.Handle("GET /api/models", chain(http.HandlerFunc(h.ListModels)))
	mux.Handle("GET /api/music/genres", chain(http.HandlerFunc(h.ListGenres)))

	// Музыка
	mux.Handle("POST /api/music/generate", chain(http.HandlerFunc(h.GenerateMusic)))
	mux.Handle("GET /api/music/tasks/{task_id}", chain(http.HandlerFunc(h.GetTask)))
	mux.Handle("GET /api/music/track/{track_id}", chain(http.HandlerFunc(h.GetTrack)))

	// Мультимодальная генерация
	mux.Handle("POST /api/generate", chain(http.HandlerFunc(h.Generate)))
}
