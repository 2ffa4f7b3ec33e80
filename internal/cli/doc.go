// Package cli реализует команды CLI-инструмента mnemo.
//
// Структура:
//   - client.go  — HTTP-клиент для Mnemo API
//   - output.go  — форматирование вывода (таблица / JSON / текст)
//   - catalog.go — команды models и genres
//   - music.go   — команды генерации и статусов треков
//
// Команды ходят в API по HTTP и не используют внутренние пакеты
// сервиса напрямую.
package cli
