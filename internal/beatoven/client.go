package beatoven

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// Значения по умолчанию.
const (
	defaultTimeout  = 10 * time.Second
	defaultRetryMax = 2

	// maxErrorBody — сколько байт тела ответа попадает в Error.Body.
	maxErrorBody = 200
)

// TestModeKey — значение API-ключа, включающее mock-ответы.
const TestModeKey = "TEST_MODE"

// Config — конфигурация клиента.
type Config struct {
	// BaseURL — базовый URL API, например "https://api.beatoven.ai".
	BaseURL string

	// APIKey — Bearer-токен. Значение TEST_MODE включает mock-режим.
	APIKey string

	// Timeout — таймаут одного HTTP-запроса (default: 10s).
	Timeout time.Duration

	// RetryMax — число повторов на сетевые ошибки и 5xx (default: 2).
	RetryMax int

	// Параметры poll-цикла (см. tasks.go). Нулевые значения — defaults.
	PollMaxAttempts  int
	PollInitialDelay time.Duration
	PollMaxDelay     time.Duration

	// Logger (опционально; если nil — slog.Default()).
	Logger *slog.Logger
}

// Client — клиент API провайдера композиции.
type Client struct {
	baseURL string
	apiKey  string
	http    *retryablehttp.Client
	logger  *slog.Logger

	pollMaxAttempts  int
	pollInitialDelay time.Duration
	pollMaxDelay     time.Duration
}

// NewClient создаёт клиент провайдера.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	retryMax := cfg.RetryMax
	if retryMax <= 0 {
		retryMax = defaultRetryMax
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = retryMax
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = timeout

	c := &Client{
		baseURL:          cfg.BaseURL,
		apiKey:           cfg.APIKey,
		http:             retryClient,
		logger:           logger,
		pollMaxAttempts:  cfg.PollMaxAttempts,
		pollInitialDelay: cfg.PollInitialDelay,
		pollMaxDelay:     cfg.PollMaxDelay,
	}

	if c.pollMaxAttempts <= 0 {
		c.pollMaxAttempts = pollMaxAttempts
	}
	if c.pollInitialDelay <= 0 {
		c.pollInitialDelay = pollInitialDelay
	}
	if c.pollMaxDelay <= 0 {
		c.pollMaxDelay = pollMaxDelay
	}

	return c
}

// Configured возвращает true, если API-ключ задан.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// TestMode возвращает true, если клиент работает в режиме mock-ответов.
func (c *Client) TestMode() bool {
	return c.apiKey == TestModeKey
}

// doJSON выполняет запрос и декодирует ответ в map.
//
// Ответ декодируется в map[string]any, а не в типизированную структуру,
// потому что провайдер меняет написание полей между версиями API —
// извлечение идентификаторов делает extract.go.
func (c *Client) doJSON(ctx context.Context, method, path string, body any) (map[string]any, error) {
	if !c.Configured() {
		return nil, ErrMissingAPIKey
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrConnection, err)
	}

	if resp.StatusCode >= 400 {
		return nil, &Error{
			HTTPStatus: resp.StatusCode,
			Body:       truncate(string(raw), maxErrorBody),
		}
	}

	if len(raw) == 0 {
		return nil, ErrEmptyResponse
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return data, nil
}

// truncate обрезает строку до указанной длины.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
