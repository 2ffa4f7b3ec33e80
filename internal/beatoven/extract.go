package beatoven

import (
	"strings"

	"github.com/google/uuid"
)

// ExtractTaskID извлекает task id из сырого ответа провайдера.
//
// Порядок перебора полей зафиксирован контрактом:
//
//  1. task_id
//  2. taskId
//  3. compositionTaskId
//  4. id, если содержит "_" (формат UUID_версия)
//  5. track_id + "_1" (или track_id как есть, если уже с "_")
//  6. случайный UUID + "_1" — последняя линия обороны,
//     чтобы клиент всегда получил идентификатор для polling
func ExtractTaskID(data map[string]any, trackID string) string {
	for _, field := range []string{"task_id", "taskId", "compositionTaskId"} {
		if v := getString(data, field); v != "" {
			return v
		}
	}

	if id := getString(data, "id"); strings.Contains(id, "_") {
		return id
	}

	if trackID != "" {
		if strings.Contains(trackID, "_") {
			return trackID
		}
		return trackID + "_1"
	}

	return uuid.New().String() + "_1"
}

// getString извлекает строковое поле из map.
func getString(m map[string]any, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// getInt извлекает числовое поле из map.
// JSON-числа декодируются как float64.
func getInt(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// stringMap извлекает вложенный map[string]string.
func stringMap(m map[string]any, key string) map[string]string {
	nested, ok := m[key].(map[string]any)
	if !ok {
		return nil
	}

	result := make(map[string]string, len(nested))
	for k, v := range nested {
		if s, ok := v.(string); ok {
			result[k] = s
		}
	}
	return result
}
