package runner

import "errors"

// Ошибки worker'а.
var (
	// ErrShuttingDown — запрошен shutdown, новые classifier'ы не берутся.
	ErrShuttingDown = errors.New("worker is shutting down")
)
