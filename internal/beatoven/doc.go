// Package beatoven — типизированный клиент API провайдера композиции.
//
// Структура:
//   - client.go   — Client, HTTP-слой с retry (hashicorp/go-retryablehttp)
//   - tracks.go   — создание трека и запросы статуса track/task
//   - tasks.go    — poll-цикл ожидания готовности трека с backoff
//   - extract.go  — best-effort извлечение task_id/track_id из ответа
//   - testmode.go — mock и fallback ответы (TEST_MODE, обрыв сети)
//   - errors.go   — типизированная ошибка API и sentinel-ошибки
//
// Провайдер возвращает task_id в разных написаниях в зависимости от
// версии API, поэтому извлечение идентификатора перебирает известные
// поля и в крайнем случае синтезирует идентификатор из track_id или
// случайного UUID.
package beatoven
