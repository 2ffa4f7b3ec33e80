package domain

// GenerationStatus — статус генерации трека со стороны сервиса.
//
// Жизненный цикл:
//
//	PROCESSING → COMPLETED
//	           ↘ ERROR (провайдер недоступен, подставлен placeholder)
type GenerationStatus string

const (
	// StatusProcessing — трек ещё компонуется провайдером.
	StatusProcessing GenerationStatus = "processing"

	// StatusCompleted — провайдер вернул готовый MP3.
	StatusCompleted GenerationStatus = "completed"

	// StatusError — обращение к провайдеру не удалось,
	// клиенту отданы placeholder-значения.
	StatusError GenerationStatus = "error"
)

// IsTerminal возвращает true, если статус финальный.
func (s GenerationStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusError:
		return true
	default:
		return false
	}
}

// Статусы трека со стороны провайдера (passthrough).
const (
	// ProviderStatusComposing — провайдер принял заявку и компонует трек.
	ProviderStatusComposing = "composing"

	// ProviderStatusComposed — task завершён, трек готов.
	ProviderStatusComposed = "composed"

	// ProviderStatusCompleted — track завершён (верхний регистр у провайдера).
	ProviderStatusCompleted = "COMPLETED"

	// ProviderStatusFailed — генерация не удалась.
	ProviderStatusFailed = "FAILED"

	// ProviderStatusError — генерация завершилась ошибкой.
	ProviderStatusError = "ERROR"
)
