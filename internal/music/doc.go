// Package music — оркестрация генерации учебного трека.
//
// Service связывает провайдера композиции, движок текстов и реестр
// заявок: подбирает промпт по жанру, создаёт трек, при необходимости
// дожидается готовности, собирает текст песни и регистрирует заявку
// для status-эндпоинтов.
//
// Политика деградации: любой сбой провайдера на пути генерации
// превращается в placeholder-результат, а не в ошибку — клиент
// всегда получает проигрываемый ответ. Ошибкой остаётся только
// отсутствие API-ключа.
//
// Структура:
//   - service.go — Service и операции Generate/TaskStatus/TrackStatus
//   - prompts.go — пулы промптов по жанрам
package music
