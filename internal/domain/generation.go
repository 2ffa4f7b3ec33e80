package domain

import "time"

// Generation — одна заявка на генерацию учебного трека.
//
// Сервис не хранит долговременного состояния: Generation живёт
// в in-memory реестре ровно столько, сколько нужно status-эндпоинтам,
// чтобы восстановить тему и жанр по track_id/task_id.
type Generation struct {
	TrackID   string
	TaskID    string
	Topic     string
	Genre     string
	Prompt    string
	OutputURL string
	Status    GenerationStatus
	TestMode  bool
	CreatedAt time.Time
}

// Title возвращает название трека.
// Формат фиксирован — он попадает в payload провайдера и в ответы API.
func (g *Generation) Title() string {
	return TrackTitle(g.Topic)
}

// TrackTitle строит название трека по теме.
func TrackTitle(topic string) string {
	return "Learning about " + topic
}

// TopicFromTitle восстанавливает тему из названия трека.
// Возвращает fallback-тему, если название не нашего формата.
func TopicFromTitle(title string) string {
	const prefix = "Learning about "
	if len(title) > len(prefix) && title[:len(prefix)] == prefix {
		return title[len(prefix):]
	}
	return "general learning"
}
