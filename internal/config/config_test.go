package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `{
		"serviceBaseUrl": "http://core.local:8000",
		"authToken": "secret",
		"workerId": "ml-worker-1"
	}`)
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ServiceBaseURL != "http://core.local:8000" {
		t.Errorf("unexpected serviceBaseUrl: %q", cfg.ServiceBaseURL)
	}
	if cfg.AuthToken != "secret" {
		t.Errorf("unexpected authToken: %q", cfg.AuthToken)
	}
	if cfg.WorkerID != "ml-worker-1" {
		t.Errorf("unexpected workerId: %q", cfg.WorkerID)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `{
		"serviceBaseUrl": "http://core.local:8000",
		"authToken": "secret",
		"workerId": "ml-worker-1"
	}`)
	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvServiceURL, "http://core.prod:8000")
	t.Setenv(EnvWorkerID, "ml-worker-9")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ServiceBaseURL != "http://core.prod:8000" {
		t.Errorf("env should override serviceBaseUrl, got %q", cfg.ServiceBaseURL)
	}
	if cfg.WorkerID != "ml-worker-9" {
		t.Errorf("env should override workerId, got %q", cfg.WorkerID)
	}
	// authToken не переопределён — остаётся из файла
	if cfg.AuthToken != "secret" {
		t.Errorf("authToken should come from file, got %q", cfg.AuthToken)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "absent.json"))

	if _, err := Load(); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)
	t.Setenv(EnvConfigPath, path)

	if _, err := Load(); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoad_MissingServiceURL(t *testing.T) {
	path := writeConfig(t, `{"workerId": "w1"}`)
	t.Setenv(EnvConfigPath, path)

	_, err := Load()
	if !errors.Is(err, ErrMissingServiceURL) {
		t.Errorf("expected ErrMissingServiceURL, got %v", err)
	}
}

func TestLoad_MissingWorkerID(t *testing.T) {
	path := writeConfig(t, `{"serviceBaseUrl": "http://core.local:8000"}`)
	t.Setenv(EnvConfigPath, path)

	_, err := Load()
	if !errors.Is(err, ErrMissingWorkerID) {
		t.Errorf("expected ErrMissingWorkerID, got %v", err)
	}
}
