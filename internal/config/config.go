package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Переменные окружения.
const (
	// EnvConfigPath — путь к конфигурационному файлу.
	EnvConfigPath = "GENOMIX_CONFIG"

	// EnvServiceURL — переопределяет serviceBaseUrl из файла.
	EnvServiceURL = "CORE_SERVICE_URL"

	// EnvAuthToken — переопределяет authToken из файла.
	EnvAuthToken = "CORE_AUTH_TOKEN"

	// EnvWorkerID — переопределяет workerId из файла.
	EnvWorkerID = "WORKER_ID"
)

// defaultPath — конфигурация для локальной разработки.
const defaultPath = "./config/dev.json"

// Ошибки конфигурации.
var (
	// ErrMissingServiceURL — не задан базовый URL core-service.
	ErrMissingServiceURL = errors.New("serviceBaseUrl is required")

	// ErrMissingWorkerID — не задан идентификатор worker'а.
	ErrMissingWorkerID = errors.New("workerId is required")
)

// Config — конфигурация worker-процесса.
//
// Загружается из JSON-файла (путь в GENOMIX_CONFIG, по умолчанию
// ./config/dev.json), отдельные поля переопределяются переменными
// окружения.
type Config struct {
	// ServiceBaseURL — базовый URL core-service.
	ServiceBaseURL string `json:"serviceBaseUrl"`

	// AuthToken — токен авторизации для core-service.
	AuthToken string `json:"authToken"`

	// WorkerID — идентификатор этого worker'а в core-service.
	WorkerID string `json:"workerId"`
}

// Load загружает конфигурацию: файл, затем env-переопределения,
// затем валидация.
func Load() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		path = defaultPath
	}

	cfg, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile читает и парсит JSON-файл конфигурации.
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &cfg, nil
}

// applyEnv применяет env-переопределения поверх файла.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvServiceURL); v != "" {
		cfg.ServiceBaseURL = v
	}
	if v := os.Getenv(EnvAuthToken); v != "" {
		cfg.AuthToken = v
	}
	if v := os.Getenv(EnvWorkerID); v != "" {
		cfg.WorkerID = v
	}
}

// Validate проверяет обязательные поля.
func (c *Config) Validate() error {
	if c.ServiceBaseURL == "" {
		return ErrMissingServiceURL
	}
	if c.WorkerID == "" {
		return ErrMissingWorkerID
	}
	return nil
}
