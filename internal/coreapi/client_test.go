package coreapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/shaiso/Genomix/internal/domain"
)

func TestListClassifiers(t *testing.T) {
	var gotPath, gotAuth, gotWorker, gotCaps string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotWorker = r.Header.Get("X-Worker-Id")
		gotCaps = r.URL.Query().Get("capabilities")

		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"id": "c1", "genes": []int{7157}, "diseases": []string{"ACC"}},
				{"id": "c2", "genes": []int{7158, 7159}, "diseases": []string{"BLCA"}},
			},
			"total": 2,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", "ml-worker-1")

	classifiers, err := client.ListClassifiers(context.Background(), []string{"classifier-search"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/api/v1/classifiers/queue" {
		t.Errorf("unexpected path: %s", gotPath)
	}
	if gotAuth != "Token secret" {
		t.Errorf("unexpected Authorization: %q", gotAuth)
	}
	if gotWorker != "ml-worker-1" {
		t.Errorf("unexpected X-Worker-Id: %q", gotWorker)
	}
	if gotCaps != "classifier-search" {
		t.Errorf("unexpected capabilities: %q", gotCaps)
	}

	if len(classifiers) != 2 {
		t.Fatalf("expected 2 classifiers, got %d", len(classifiers))
	}
	if classifiers[0].ID != "c1" {
		t.Errorf("expected first classifier c1, got %s", classifiers[0].ID)
	}
	if classifiers[1].Genes[1] != 7159 {
		t.Errorf("unexpected genes: %v", classifiers[1].Genes)
	}
}

func TestListClassifiers_Empty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}, "total": 0})
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", "ml-worker-1")

	classifiers, err := client.ListClassifiers(context.Background(), []string{"classifier-search"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(classifiers) != 0 {
		t.Errorf("expected empty list, got %d", len(classifiers))
	}
}

func TestUploadNotebook(t *testing.T) {
	notebook := filepath.Join(t.TempDir(), "result.output.ipynb")
	if err := os.WriteFile(notebook, []byte(`{"cells": []}`), 0o600); err != nil {
		t.Fatal(err)
	}

	var gotPath, gotContentType string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", "ml-worker-1")
	c := &domain.Classifier{ID: "c1"}

	if err := client.UploadNotebook(context.Background(), c, notebook); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/api/v1/classifiers/c1/notebook" {
		t.Errorf("unexpected path: %s", gotPath)
	}
	if gotContentType != "application/x-ipynb+json" {
		t.Errorf("unexpected Content-Type: %q", gotContentType)
	}
	if string(gotBody) != `{"cells": []}` {
		t.Errorf("unexpected body: %s", gotBody)
	}
}

func TestUploadNotebook_MissingFile(t *testing.T) {
	client := NewClient("http://unused", "secret", "ml-worker-1")
	c := &domain.Classifier{ID: "c1"}

	err := client.UploadNotebook(context.Background(), c, filepath.Join(t.TempDir(), "absent.ipynb"))
	if !errors.Is(err, ErrNotebookRead) {
		t.Errorf("expected ErrNotebookRead, got %v", err)
	}
}

func TestFailClassifier(t *testing.T) {
	var gotPath, gotMethod string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", "ml-worker-1")

	if err := client.FailClassifier(context.Background(), &domain.Classifier{ID: "c9"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("expected POST, got %s", gotMethod)
	}
	if gotPath != "/api/v1/classifiers/c9/fail" {
		t.Errorf("unexpected path: %s", gotPath)
	}
}

func TestReleaseClassifier(t *testing.T) {
	var gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", "ml-worker-1")

	if err := client.ReleaseClassifier(context.Background(), &domain.Classifier{ID: "c3"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/v1/classifiers/c3/release" {
		t.Errorf("unexpected path: %s", gotPath)
	}
}

func TestClient_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-token", "ml-worker-1")

	_, err := client.ListClassifiers(context.Background(), nil)
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClient_ErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"code": "ALREADY_TERMINAL", "message": "classifier already completed"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", "ml-worker-1")

	err := client.FailClassifier(context.Background(), &domain.Classifier{ID: "c1"})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != "ALREADY_TERMINAL: classifier already completed" {
		t.Errorf("unexpected error message: %q", got)
	}
}
