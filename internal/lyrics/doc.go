// Package lyrics собирает учебные тексты песен по теме и жанру.
//
// Конвейер:
//
//	нормализация темы → поиск фактов в статическом каталоге →
//	(опционально) запрос в энциклопедию → усечение фактов до бюджета →
//	псевдослучайный выбор стиля → сборка шаблона через text/template
//
// Структура:
//   - engine.go — Engine и конвейер сборки
//   - styles.go — шаблоны куплетов/припевов/бриджей по жанрам
//   - facts.go  — статический каталог фактов и best-match поиск
//   - wiki.go   — клиент MediaWiki (opensearch + extracts)
//   - errors.go — ошибки пакета
//
// Это генерация строк, а не ML: шаблоны рукописные, выбор стиля —
// хэш темы и текущего часа.
package lyrics
