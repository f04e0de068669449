package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Client is the shared HTTP plumbing every vendor adapter fetches through.
// Vendor APIs here are the public, credentials-free booking-widget endpoints.
type Client struct {
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a Client with the given request timeout.
func NewClient(timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// getJSON issues a GET and decodes the 2xx body into out. A non-2xx status
// becomes an AvailabilityFetchError.
func (c *Client) getJSON(ctx context.Context, vendor, url string, header http.Header, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	return c.doJSON(vendor, req, header, out)
}

// postJSON issues a POST with a JSON body and decodes the 2xx response into out.
func (c *Client) postJSON(ctx context.Context, vendor, url string, header http.Header, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doJSON(vendor, req, header, out)
}

func (c *Client) doJSON(vendor string, req *http.Request, header http.Header, out any) error {
	for k, vals := range header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, bodyExcerptLimit))
		c.logger.Warn("vendor returned non-2xx",
			zap.String("vendor", vendor),
			zap.Int("status", resp.StatusCode),
			zap.String("url", req.URL.String()))
		return NewAvailabilityFetchError(vendor, resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Warn("vendor returned malformed body",
			zap.String("vendor", vendor), zap.Error(err))
		return err
	}
	return nil
}
