package notebook

import "errors"

// Ошибки выполнения stage'ей.
var (
	// ErrNotebookNotFound — notebook для stage'а отсутствует на диске.
	ErrNotebookNotFound = errors.New("stage notebook not found")

	// ErrStageFailed — выполнение notebook завершилось ошибкой.
	ErrStageFailed = errors.New("stage execution failed")
)
