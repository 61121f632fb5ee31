package integrations

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shininet/buycraft/pkg/httputil"
	"github.com/shininet/buycraft/pkg/observability"
)

// maxBodySize bounds how much of a response body is read into memory.
const maxBodySize = 8 << 20

// Client provides shared HTTP functionality for API clients.
// It applies default headers, the retry policy and the HTTP observability
// hooks to every request.
type Client struct {
	http    *http.Client
	headers map[string]string
	retry   httputil.Policy
}

// NewClient creates a Client around httpClient with the given default headers.
// A nil httpClient is replaced by [NewHTTPClient]. Pass nil for headers if no
// default headers are needed.
func NewClient(httpClient *http.Client, retry httputil.Policy, headers map[string]string) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient()
	}
	return &Client{
		http:    httpClient,
		headers: headers,
		retry:   retry,
	}
}

// GetBytes performs an HTTP GET and returns the full response body.
// Request-specific headers override client defaults for the same key.
// Transient failures are retried according to the client's policy.
func (c *Client) GetBytes(ctx context.Context, rawURL string, headers map[string]string) ([]byte, error) {
	var body []byte
	err := c.retry.Do(ctx, func() error {
		var err error
		body, err = c.doRequest(ctx, rawURL, headers)
		return err
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) doRequest(ctx context.Context, rawURL string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	host, path := hostPath(req.URL)
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, httputil.Retryable(fmt.Errorf("%w: %v", ErrNetwork, err))
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, httputil.Retryable(fmt.Errorf("%w: read body: %v", ErrNetwork, err))
	}
	if len(data) > maxBodySize {
		return nil, fmt.Errorf("%w: response body exceeds %d bytes", ErrNetwork, maxBodySize)
	}
	return data, nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case httputil.RetryableStatus(code):
		return httputil.Retryable(fmt.Errorf("%w: status %d", ErrNetwork, code))
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}

// hostPath returns the parts of u that are safe to report. The query string
// carries credentials and is never passed to hooks.
func hostPath(u *url.URL) (string, string) {
	return u.Host, u.Path
}
