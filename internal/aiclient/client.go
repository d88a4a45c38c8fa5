// Package aiclient provides a lightweight HTTP client for the
// generator's AI proxy. Requests are authenticated by a project UUID
// header; long-running generations are queued by the proxy and polled
// via a status endpoint.
package aiclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sbtvjoe-max/UniChat1.1/internal/config"
)

// Client is a lightweight HTTP client for the AI proxy.
type Client struct {
	cfg        config.AIConfig
	httpClient *http.Client
}

// New creates a new AI proxy client from configuration.
func New(cfg config.AIConfig) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	httpClient := &http.Client{Timeout: timeout}
	if !cfg.VerifyTLS {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return &Client{cfg: cfg, httpClient: httpClient}
}

// Result holds a successful proxy response.
type Result struct {
	StatusCode int
	// Data is the decoded JSON body (map or list), or the raw body
	// string when the proxy returned something other than JSON.
	Data any
}

// Request performs a raw POST to the AI proxy. The path defaults to the
// configured responses path; the project UUID header is always injected
// and the project UUID is added to the payload when absent.
func (c *Client) Request(ctx context.Context, path string, payload map[string]any) (*Result, error) {
	resolvedPath := path
	if resolvedPath == "" {
		resolvedPath = c.responsesPath()
	}
	if resolvedPath == "" {
		return nil, &ProxyError{
			Code:    "project_id_missing",
			Message: "PROJECT_ID is not defined; cannot resolve AI proxy endpoint",
		}
	}

	if c.cfg.ProjectUUID == "" {
		return nil, &ProxyError{
			Code:    "project_uuid_missing",
			Message: "PROJECT_UUID is not defined; aborting AI request",
		}
	}

	body := make(map[string]any, len(payload)+1)
	for k, v := range payload {
		body[k] = v
	}
	if _, ok := body["project_uuid"]; !ok {
		body["project_uuid"] = c.cfg.ProjectUUID
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL(resolvedPath), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(c.projectHeader(), c.cfg.ProjectUUID)

	return c.do(req)
}

// FetchStatus fetches the status of a queued AI request.
func (c *Client) FetchStatus(ctx context.Context, requestID string) (*Result, error) {
	if c.cfg.ProjectUUID == "" {
		return nil, &ProxyError{
			Code:    "project_uuid_missing",
			Message: "PROJECT_UUID is not defined; aborting status check",
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(c.statusPath(requestID)), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(c.projectHeader(), c.cfg.ProjectUUID)

	return c.do(req)
}

// do executes the request and decodes the JSON response.
func (c *Client) do(req *http.Request) (*Result, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ProxyError{Code: "request_failed", Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var decoded any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			decoded = nil
		}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if decoded == nil {
			return &Result{StatusCode: resp.StatusCode, Data: string(raw)}, nil
		}
		return &Result{StatusCode: resp.StatusCode, Data: decoded}, nil
	}

	message := "AI proxy request failed"
	if m, ok := decoded.(map[string]any); ok {
		if s, ok := m["error"].(string); ok && s != "" {
			message = s
		} else if s, ok := m["message"].(string); ok && s != "" {
			message = s
		}
	} else if len(raw) > 0 {
		message = string(raw)
	}

	return nil, &ProxyError{
		Code:       "proxy_error",
		StatusCode: resp.StatusCode,
		Message:    message,
		Payload:    decoded,
	}
}

// responsesPath resolves the responses endpoint: the configured path,
// or one derived from the project ID.
func (c *Client) responsesPath() string {
	if c.cfg.ResponsesPath != "" {
		return c.cfg.ResponsesPath
	}
	if c.cfg.ProjectID != "" {
		return fmt.Sprintf("/projects/%s/ai-request", c.cfg.ProjectID)
	}
	return ""
}

// statusPath resolves the status endpoint for a queued request.
func (c *Client) statusPath(requestID string) string {
	base := strings.TrimRight(c.responsesPath(), "/")
	if base == "" {
		return fmt.Sprintf("/ai-request/%s/status", requestID)
	}
	if !strings.HasSuffix(base, "/ai-request") {
		base += "/ai-request"
	}
	return fmt.Sprintf("%s/%s/status", base, requestID)
}

// buildURL joins a path with the configured base URL. Absolute URLs
// pass through untouched.
func (c *Client) buildURL(path string) string {
	trimmed := strings.TrimSpace(path)
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return trimmed
	}
	base := c.cfg.BaseURL
	if base == "" {
		base = "https://flatlogic.com"
	}
	if strings.HasPrefix(trimmed, "/") {
		return base + trimmed
	}
	return base + "/" + trimmed
}

func (c *Client) projectHeader() string {
	if c.cfg.ProjectHeader != "" {
		return c.cfg.ProjectHeader
	}
	return "project-uuid"
}

// ProxyError represents an AI proxy error response.
type ProxyError struct {
	Code       string // machine-readable error class
	StatusCode int    // HTTP status, 0 when the request never completed
	Message    string
	Payload    any // decoded error body when the proxy returned one
}

func (e *ProxyError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("ai proxy error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("ai proxy error (%s): %s", e.Code, e.Message)
}

// IsTimeout returns true if the error is a poll timeout.
func IsTimeout(err error) bool {
	if perr, ok := err.(*ProxyError); ok {
		return perr.Code == "timeout"
	}
	return false
}
