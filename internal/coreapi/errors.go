package coreapi

import "errors"

// Ошибки клиента core-service.
var (
	// ErrUnauthorized — core-service отклонил токен авторизации.
	ErrUnauthorized = errors.New("core-service rejected auth token")

	// ErrClassifierNotFound — classifier не найден в core-service.
	ErrClassifierNotFound = errors.New("classifier not found")

	// ErrNotebookRead — не удалось прочитать notebook-артефакт перед загрузкой.
	ErrNotebookRead = errors.New("failed to read notebook artifact")
)
