package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shaiso/Mnemo/internal/domain"
	"github.com/shaiso/Mnemo/internal/mcp"
	"github.com/shaiso/Mnemo/internal/music"
)

// Generate — мультимодальная генерация через MCP-роутер.
// POST /api/generate
//
// Роутер выбирает модель по входному тексту; музыкальная модель
// делегирует в music.Service, остальные возвращают mock-выход.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid request body")
		return
	}

	if req.Input == "" {
		BadRequest(w, "input is required")
		return
	}
	if req.Genre == "" {
		req.Genre = "pop"
	}

	model, err := h.router.Resolve(req.Input, req.Model)
	if errors.Is(err, mcp.ErrUnknownModel) {
		BadRequest(w, err.Error())
		return
	}
	if err != nil {
		InternalError(w, h.logger, err)
		return
	}

	if msg, ok := h.missingKeyFor(model.ID); ok {
		MissingKey(w, msg)
		return
	}

	switch model.ID {
	case domain.ModelImage:
		Success(w, GenerateResponse{
			Output:    "https://placehold.co/600x400?text=AI+Generated+Image",
			Type:      string(domain.ModelTypeImage),
			ModelUsed: model.ID,
		})

	case domain.ModelVideo:
		Success(w, GenerateResponse{
			Output:    "https://placehold.co/600x400/mp4?text=AI+Generated+Video",
			Type:      string(domain.ModelTypeVideo),
			ModelUsed: model.ID,
		})

	case domain.ModelMusic:
		topic := req.LearningTopic
		if topic == "" {
			topic = "general learning"
		}

		result, err := h.music.Generate(r.Context(), &music.GenerateRequest{
			Genre:    req.Genre,
			Duration: req.Duration,
			Topic:    topic,
			TestMode: req.TestMode,
			Poll:     true,
		})
		if HandleProviderError(w, h.logger, err) {
			return
		}

		Success(w, GenerateResponse{
			Output:    result.OutputURL,
			Type:      string(domain.ModelTypeMusic),
			ModelUsed: model.ID,
			Title:     result.Title,
			Lyrics:    result.Lyrics,
		})

	default:
		Success(w, GenerateResponse{
			Output:    "AI Response via " + model.ID + ": " + req.Input,
			Type:      string(domain.ModelTypeText),
			ModelUsed: model.ID,
		})
	}
}

// missingKeyFor проверяет, настроен ли ключ для модели.
// Возвращает имя провайдера для сообщения об ошибке.
func (h *Handler) missingKeyFor(modelID string) (string, bool) {
	switch modelID {
	case domain.ModelImage, domain.ModelTextLarge:
		if h.openAIKey == "" {
			return "OpenAI", true
		}
	case domain.ModelVideo, domain.ModelTextSmall:
		if h.googleKey == "" {
			return "Google", true
		}
	}
	// Ключ музыкального провайдера проверяет сам music.Service
	return "", false
}
