// Package domain содержит доменные сущности сервиса Mnemo.
//
// Структура:
//   - model.go      — дескрипторы AI-моделей и их каталог
//   - genre.go      — дескрипторы музыкальных жанров и маппинг на провайдера
//   - generation.go — Generation: одна заявка на генерацию трека
//   - status.go     — статусы генерации
//
// Пакет не зависит от других internal-пакетов и не содержит I/O.
package domain
