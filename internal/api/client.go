package api

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	apierrors "github.com/diogo/askweb/internal/errors"
	"github.com/diogo/askweb/internal/logger"
	"github.com/diogo/askweb/internal/models"
)

// ChatClientInterface is the surface the chat flows need from the service.
type ChatClientInterface interface {
	Ask(ctx context.Context, question string) (*models.AskResponse, error)
	SummarizePDF(ctx context.Context, fileName string, r io.Reader) (*models.SummaryResponse, error)
	Close()
}

// HTTPDoer executes a prepared request. tls_client.HttpClient satisfies it.
type HTTPDoer interface {
	Do(req *fhttp.Request) (*fhttp.Response, error)
}

// ChatClient talks to the /ask and /pdf endpoints
type ChatClient struct {
	httpClient HTTPDoer
	baseURL    string
	timeout    time.Duration
	mu         sync.RWMutex
	closed     bool
}

// ClientOption is a function that configures the client
type ClientOption func(*ChatClient)

// WithTimeout sets the transport timeout for a single request
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *ChatClient) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the transport, mainly for tests
func WithHTTPClient(doer HTTPDoer) ClientOption {
	return func(c *ChatClient) {
		c.httpClient = doer
	}
}

// NewClient creates a new ChatClient for the service at baseURL
func NewClient(baseURL string, opts ...ClientOption) (*ChatClient, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("base URL must start with http:// or https://: %s", baseURL)
	}

	client := &ChatClient{
		baseURL: baseURL,
		timeout: 300 * time.Second,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(int(client.timeout / time.Second)),
			tls_client.WithClientProfile(profiles.Chrome_120),
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// Close marks the client closed; later calls fail without touching the network
func (c *ChatClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// IsClosed returns whether the client is closed
func (c *ChatClient) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

// do sends req and returns the status and full body.
// Status codes are not checked: the service explains failures in the body.
func (c *ChatClient) do(req *fhttp.Request, endpoint string) (int, []byte, error) {
	if c.IsClosed() {
		return 0, nil, apierrors.ErrClientClosed
	}

	start := time.Now()
	logger.DebugCF("api", "Request started", map[string]interface{}{"endpoint": endpoint})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WarnCF("api", "Request failed", map[string]interface{}{
			"endpoint": endpoint,
			"error":    err.Error(),
		})
		return 0, nil, apierrors.NewNetworkError(endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, apierrors.NewNetworkError(endpoint, fmt.Errorf("failed to read response: %w", err))
	}

	logger.InfoCF("api", "Request finished", map[string]interface{}{
		"endpoint": endpoint,
		"status":   resp.StatusCode,
		"bytes":    len(body),
		"elapsed":  time.Since(start).String(),
	})
	return resp.StatusCode, body, nil
}

func (c *ChatClient) url(endpoint string) string {
	return c.baseURL + endpoint
}

// newRequest builds a POST with the common headers
func (c *ChatClient) newRequest(ctx context.Context, endpoint, contentType string, body io.Reader) (*fhttp.Request, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodPost, c.url(endpoint), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	return req, nil
}
