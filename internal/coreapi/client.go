package coreapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/shaiso/Genomix/internal/domain"
)

const defaultTimeout = 30 * time.Second

// --- API response wrappers ---

type dataResponse struct {
	Data json.RawMessage `json:"data"`
}

type listResponse struct {
	Data  json.RawMessage `json:"data"`
	Total int             `json:"total"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// --- Client ---

// Client — HTTP-клиент для core-service.
type Client struct {
	baseURL    string
	authToken  string
	workerID   string
	httpClient *http.Client
}

// NewClient создаёт клиент core-service.
//
// baseURL — адрес core-service, authToken — токен авторизации,
// workerID — идентификатор этого worker'а (идёт в каждый запрос).
func NewClient(baseURL, authToken, workerID string) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		authToken: authToken,
		workerID:  workerID,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// ListClassifiers опрашивает очередь classifier'ов.
//
// capabilities — фильтр по возможностям worker'а. Непустой ответ означает,
// что core-service закрепил возвращённые classifier'ы за этим worker'ом.
// Пустой список — не ошибка: очередь пуста.
func (c *Client) ListClassifiers(ctx context.Context, capabilities []string) ([]domain.Classifier, error) {
	params := url.Values{}
	if len(capabilities) > 0 {
		params.Set("capabilities", strings.Join(capabilities, ","))
	}

	var classifiers []domain.Classifier
	err := c.list(ctx, "/api/v1/classifiers/queue", params, &classifiers)
	return classifiers, err
}

// UploadNotebook загружает выполненный notebook как результат classifier'а.
// Терминальный переход COMPLETED.
func (c *Client) UploadNotebook(ctx context.Context, classifier *domain.Classifier, notebookPath string) error {
	data, err := os.ReadFile(notebookPath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotebookRead, notebookPath, err)
	}

	path := "/api/v1/classifiers/" + classifier.ID + "/notebook"
	resp, err := c.doRaw(ctx, http.MethodPost, path, "application/x-ipynb+json", bytes.NewReader(data))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.checkError(resp)
}

// FailClassifier помечает classifier как failed.
// Терминальный переход FAILED; дальнейшая судьба classifier'а
// (возврат в пул, dead) — политика core-service.
func (c *Client) FailClassifier(ctx context.Context, classifier *domain.Classifier) error {
	return c.post(ctx, "/api/v1/classifiers/"+classifier.ID+"/fail", nil, nil)
}

// ReleaseClassifier возвращает закреплённый classifier в пул.
// Используется при shutdown. Терминальный переход RELEASED.
func (c *Client) ReleaseClassifier(ctx context.Context, classifier *domain.Classifier) error {
	return c.post(ctx, "/api/v1/classifiers/"+classifier.ID+"/release", nil, nil)
}

// --- HTTP helpers ---

func (c *Client) post(ctx context.Context, path string, body any, result any) error {
	return c.doData(ctx, http.MethodPost, path, body, result)
}

func (c *Client) list(ctx context.Context, path string, params url.Values, result any) error {
	if len(params) > 0 {
		path = path + "?" + params.Encode()
	}

	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkError(resp); err != nil {
		return err
	}

	var lr listResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return json.Unmarshal(lr.Data, result)
}

func (c *Client) doData(ctx context.Context, method, path string, body any, result any) error {
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkError(resp); err != nil {
		return err
	}

	// 204 No Content
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if result == nil {
		return nil
	}

	var dr dataResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return json.Unmarshal(dr.Data, result)
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
		contentType = "application/json"
	}

	return c.doRaw(ctx, method, path, contentType, bodyReader)
}

func (c *Client) doRaw(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.authToken != "" {
		req.Header.Set("Authorization", "Token "+c.authToken)
	}
	req.Header.Set("X-Worker-Id", c.workerID)

	return c.httpClient.Do(req)
}

func (c *Client) checkError(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: HTTP %d", ErrUnauthorized, resp.StatusCode)
	case http.StatusNotFound:
		return ErrClassifierNotFound
	}

	var er errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil || er.Error.Code == "" {
		return fmt.Errorf("core-service error: HTTP %d", resp.StatusCode)
	}

	return fmt.Errorf("%s: %s", er.Error.Code, er.Error.Message)
}
