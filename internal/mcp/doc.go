// Package mcp реализует Model Context Protocol — маршрутизацию
// запроса /api/generate на подходящую модель.
//
// Структура:
//   - router.go — Router: реестр моделей + эвристика выбора по тексту
//   - errors.go — ошибки пакета
//
// Выбор модели — O(1) эвристика по ключевым словам, без fallback-цепочки
// сложнее else-ветки. Явно запрошенная модель проходит как есть, если
// зарегистрирована.
package mcp
