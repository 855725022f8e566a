// Package telemetry обеспечивает наблюдаемость worker-процесса.
//
// Включает:
//   - logging.go — structured logging через slog
//   - metrics.go — Prometheus метрики
//
// Worker использует единый формат логирования
// и экспортирует метрики на /metrics endpoint.
package telemetry
