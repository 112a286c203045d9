// Package crawler builds the catalog reference data by walking a vendor's
// public product API brand-by-brand. It runs as a batch job, independent of
// live order processing.
package crawler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Brand is one entry of the vendor's brand index.
type Brand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Product is one model with its nested color and size variants, as the
// vendor API returns it.
type Product struct {
	Model     string  `json:"model"`
	Material  string  `json:"material"`
	Gender    string  `json:"gender"`
	Wholesale float64 `json:"wholesale"`
	MSRP      float64 `json:"msrp"`
	Colors    []struct {
		Code  string `json:"code"`
		Name  string `json:"name"`
		Sizes []struct {
			Eye     int    `json:"eye"`
			Bridge  int    `json:"bridge"`
			Temple  int    `json:"temple"`
			SKU     string `json:"sku"`
			UPC     string `json:"upc"`
			EAN     string `json:"ean"`
			InStock bool   `json:"in_stock"`
			Status  string `json:"status"`
		} `json:"sizes"`
	} `json:"colors"`
}

// ProductAPI is the vendor API surface the crawler consumes.
type ProductAPI interface {
	Brands(ctx context.Context) ([]Brand, error)
	Products(ctx context.Context, brandID string) ([]Product, error)
}

// APIClient is the HTTP implementation of ProductAPI.
type APIClient struct {
	baseURL    string
	client     *http.Client
	maxRetries int
	logger     *slog.Logger
}

// NewAPIClient builds a client with per-request timeout and bounded
// retries on transient failure.
func NewAPIClient(baseURL string, timeout time.Duration, maxRetries int, logger *slog.Logger) *APIClient {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &APIClient{
		baseURL:    baseURL,
		client:     &http.Client{Timeout: timeout},
		maxRetries: maxRetries,
		logger:     logger,
	}
}

func (c *APIClient) Brands(ctx context.Context) ([]Brand, error) {
	var resp struct {
		Brands []Brand `json:"brands"`
	}
	if err := c.getJSON(ctx, "/brands", &resp); err != nil {
		return nil, err
	}
	return resp.Brands, nil
}

func (c *APIClient) Products(ctx context.Context, brandID string) ([]Product, error) {
	var resp struct {
		Products []Product `json:"products"`
	}
	if err := c.getJSON(ctx, "/brands/"+brandID+"/products", &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

// getJSON issues a GET and decodes the JSON body, retrying 5xx and network
// errors with exponential backoff. 4xx responses are not retried.
func (c *APIClient) getJSON(ctx context.Context, path string, out any) error {
	reqID := uuid.New().String()
	url := c.baseURL + path

	wait := time.Second
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Debug("crawler.http.retry", "req_id", reqID, "attempt", attempt, "wait", wait)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
			wait *= 2
		}

		start := time.Now()
		raw, status, err := c.doGet(ctx, url)
		if err != nil {
			c.logger.Warn("crawler.http.error", "req_id", reqID, "url", url, "error", err,
				"elapsed_ms", time.Since(start).Milliseconds())
			lastErr = err
			continue
		}
		if status/100 == 5 {
			lastErr = fmt.Errorf("server error: status %d", status)
			continue
		}
		if status/100 != 2 {
			return fmt.Errorf("GET %s: status %d", url, status)
		}
		c.logger.Debug("crawler.http.response", "req_id", reqID, "url", url, "status", status,
			"bytes", len(raw), "elapsed_ms", time.Since(start).Milliseconds())
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode %s: %w", url, err)
		}
		return nil
	}
	return fmt.Errorf("GET %s: retries exhausted: %w", url, lastErr)
}

func (c *APIClient) doGet(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return raw, resp.StatusCode, nil
}
