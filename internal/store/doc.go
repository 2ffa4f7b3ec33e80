// Package store — in-memory реестр заявок на генерацию.
//
// Реестр связывает track_id и task_id с исходной темой и жанром,
// чтобы status-эндпоинты могли пересобрать текст песни. Записи
// живут ограниченное время и выметаются janitor'ом по cron-расписанию.
//
// Структура:
//   - registry.go — реестр с двумя индексами и TTL
//   - janitor.go  — периодическая чистка по cron-выражению
//   - errors.go   — ошибки пакета
package store
