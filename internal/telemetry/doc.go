// Package telemetry обеспечивает наблюдаемость сервиса.
//
// Включает:
//   - logging.go — structured logging через slog
//
// Бинарники используют единый формат логирования и экспортируют
// Prometheus метрики на /metrics endpoint (регистрируются в main).
package telemetry
