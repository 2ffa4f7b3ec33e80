// Package api содержит HTTP API сервер.
//
// Структура:
//   - handler.go          — Handler с DI (сервис, роутер моделей, ключи, logger)
//   - routes.go           — регистрация маршрутов
//   - middleware.go       — middleware (logging, recovery)
//   - response.go         — JSON-ответы и коды ошибок
//   - dto.go              — Data Transfer Objects (request/response)
//   - catalog_handler.go  — health, каталоги моделей и жанров
//   - music_handler.go    — генерация музыки и статусы task/track
//   - generate_handler.go — мультимодальный /api/generate через MCP-роутер
//
// Успешные ответы музыкальных эндпоинтов — плоский JSON (контракт
// фронтенда), ошибки — унифицированный envelope с кодом.
package api
