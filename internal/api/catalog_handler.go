package api

import (
	"net/http"

	"github.com/shaiso/Mnemo/internal/domain"
)

// Health — health check.
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	Success(w, HealthResponse{Status: "ok"})
}

// ListModels возвращает каталог AI-моделей.
// GET /api/models
func (h *Handler) ListModels(w http.ResponseWriter, r *http.Request) {
	Success(w, ModelsResponse{Models: domain.Models()})
}

// ListGenres возвращает каталог музыкальных жанров.
// GET /api/music/genres
func (h *Handler) ListGenres(w http.ResponseWriter, r *http.Request) {
	Success(w, domain.Genres())
}
