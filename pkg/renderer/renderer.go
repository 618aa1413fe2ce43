// Package renderer wraps the external bill document service. Rendering is
// treated as a black box that is potentially slow and failable; callers must
// surface its errors as domain failures, never crash on them.
package renderer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dinesync/pos-api/internal/domain/entity"
	"golang.org/x/time/rate"
)

// DocumentRenderer produces a settlement document for a bill and returns the
// URL where it can be fetched.
type DocumentRenderer interface {
	GenerateDocument(ctx context.Context, bill *entity.Bill) (string, error)
}

// Client calls a render endpoint over HTTP. Requests are throttled so a burst
// of billing cannot overwhelm the render service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a renderer client. requestsPerSec bounds the sustained
// request rate; timeout bounds each call.
func NewClient(baseURL string, timeout time.Duration, requestsPerSec float64) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSec), 1),
	}
}

type renderResponse struct {
	DocumentURL string `json:"document_url"`
}

// GenerateDocument posts the bill snapshot to the render service.
func (c *Client) GenerateDocument(ctx context.Context, bill *entity.Bill) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("renderer rate limit wait: %w", err)
	}

	body, err := json.Marshal(bill)
	if err != nil {
		return "", fmt.Errorf("marshal bill for rendering: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/render/bill", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build render request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("render bill %s: %w", bill.ID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("render bill %s: unexpected status %d", bill.ID, resp.StatusCode)
	}

	var out renderResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode render response: %w", err)
	}
	if out.DocumentURL == "" {
		return "", fmt.Errorf("render bill %s: empty document url", bill.ID)
	}
	return out.DocumentURL, nil
}

// NullRenderer returns a deterministic placeholder URL without touching the
// network. Used in development and tests.
type NullRenderer struct{}

// GenerateDocument returns a placeholder URL derived from the bill id.
func (NullRenderer) GenerateDocument(_ context.Context, bill *entity.Bill) (string, error) {
	return fmt.Sprintf("memory://bills/%s.pdf", bill.ID), nil
}
