package api

import (
	"log/slog"

	"github.com/shaiso/Mnemo/internal/mcp"
	"github.com/shaiso/Mnemo/internal/music"
)

// Handler — главный обработчик API с зависимостями.
type Handler struct {
	music  *music.Service
	router *mcp.Router

	openAIKey string
	googleKey string

	logger *slog.Logger
}

// Config — конфигурация для создания Handler.
type Config struct {
	Music  *music.Service
	Router *mcp.Router

	// Ключи текстовых/визуальных провайдеров: их отсутствие
	// деградирует соответствующую модель до error-ответа.
	OpenAIKey string
	GoogleKey string

	Logger *slog.Logger
}

// NewHandler создаёт новый Handler.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		music:     cfg.Music,
		router:    cfg.Router,
		openAIKey: cfg.OpenAIKey,
		googleKey: cfg.GoogleKey,
		logger:    logger,
	}
}
