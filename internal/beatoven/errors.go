package beatoven

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel-ошибки клиента.
var (
	// ErrMissingAPIKey — API-ключ провайдера не сконфигурирован.
	ErrMissingAPIKey = errors.New("beatoven API key is not configured")

	// ErrConnection — не удалось соединиться с провайдером
	// (DNS, обрыв сети, таймаут).
	ErrConnection = errors.New("beatoven connection failed")

	// ErrEmptyResponse — провайдер вернул пустое тело ответа.
	ErrEmptyResponse = errors.New("beatoven returned empty response body")

	// ErrDecode — тело ответа не является валидным JSON.
	ErrDecode = errors.New("beatoven response decode failed")

	// ErrGenerationFailed — провайдер сообщил о неудачной генерации.
	ErrGenerationFailed = errors.New("track generation failed")
)

// Error — ошибка API провайдера (HTTP >= 400).
type Error struct {
	// HTTPStatus — HTTP-код ответа.
	HTTPStatus int

	// Body — начало тела ответа для диагностики.
	Body string
}

// Error реализует интерфейс error.
func (e *Error) Error() string {
	return fmt.Sprintf("beatoven: HTTP %d: %s", e.HTTPStatus, e.Body)
}

// Retryable возвращает true, если запрос имеет смысл повторить.
func (e *Error) Retryable() bool {
	return e.HTTPStatus == http.StatusTooManyRequests || e.HTTPStatus >= 500
}

// AsError извлекает *Error из цепочки ошибок.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
