// Package client предоставляет HTTP-клиент API сервиса обработки чеков.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrRejected возвращается, если сервис ответил 400: чек некорректен или идентификатор неизвестен.
var ErrRejected = errors.New("request rejected")

// Client инкапсулирует HTTP-взаимодействие с сервисом обработки чеков.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт клиент для сервиса по указанному адресу.
func NewClient(baseURL string) *Client {
	base := strings.TrimRight(baseURL, "/")
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}

	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// ProcessReceipt отправляет JSON чека и возвращает выданный идентификатор.
func (c *Client) ProcessReceipt(ctx context.Context, receipt []byte) (string, error) {
	var result struct {
		ID string `json:"id"`
	}

	if err := c.do(ctx, http.MethodPost, "/receipts/process", bytes.NewReader(receipt), &result); err != nil {
		return "", err
	}

	return result.ID, nil
}

// GetPoints запрашивает баллы для ранее обработанного чека.
func (c *Client) GetPoints(ctx context.Context, id string) (int, error) {
	var result struct {
		Points int `json:"points"`
	}

	if err := c.do(ctx, http.MethodGet, "/receipts/"+url.PathEscape(id)+"/points", nil, &result); err != nil {
		return 0, err
	}

	return result.Points, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, dst any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: %s", ErrRejected, strings.TrimSpace(string(msg)))
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
