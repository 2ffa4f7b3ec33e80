package domain

// ModelType — тип выходных данных модели.
type ModelType string

const (
	ModelTypeText  ModelType = "text"
	ModelTypeImage ModelType = "image"
	ModelTypeVideo ModelType = "video"
	ModelTypeMusic ModelType = "music"
)

// Model — дескриптор AI-модели, доступной через /api/generate.
type Model struct {
	ID       string    `json:"id"`
	Provider string    `json:"provider"`
	Type     ModelType `json:"type"`
}

// Идентификаторы моделей.
const (
	ModelImage     = "gpt-image-1"
	ModelVideo     = "veo2"
	ModelTextSmall = "gemini"
	ModelTextLarge = "o4-mini"
	ModelMusic     = "beatoven"
)

// Models возвращает каталог доступных моделей.
// Порядок фиксирован — он является частью контракта /api/models.
func Models() []Model {
	return []Model{
		{ID: ModelImage, Provider: "OpenAI", Type: ModelTypeImage},
		{ID: ModelVideo, Provider: "Google", Type: ModelTypeVideo},
		{ID: ModelTextSmall, Provider: "Google", Type: ModelTypeText},
		{ID: ModelTextLarge, Provider: "OpenAI", Type: ModelTypeText},
		{ID: ModelMusic, Provider: "Beatoven.ai", Type: ModelTypeMusic},
	}
}
