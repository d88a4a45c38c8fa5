package aiclient

import (
	"context"
	"encoding/json"
	"strconv"
	"time"
)

// PollOptions controls how AwaitResponse polls the status endpoint.
type PollOptions struct {
	Interval time.Duration // default 5s
	Timeout  time.Duration // default 5m
}

// CreateResponse submits a Responses-API-shaped request to the proxy.
// "input" must be a non-empty list. The configured default model is
// filled in when the caller sets none. When the proxy queues the
// request instead of answering inline, the status endpoint is polled
// until the generation completes.
func (c *Client) CreateResponse(ctx context.Context, params map[string]any, opts PollOptions) (*Result, error) {
	input, ok := params["input"].([]any)
	if !ok || len(input) == 0 {
		return nil, &ProxyError{
			Code:    "input_missing",
			Message: `parameter "input" is required and must be a non-empty list`,
		}
	}

	payload := make(map[string]any, len(params)+1)
	for k, v := range params {
		payload[k] = v
	}
	if _, ok := payload["model"]; !ok {
		model := c.cfg.DefaultModel
		if model == "" {
			model = "gpt-5-mini"
		}
		payload["model"] = model
	}

	initial, err := c.Request(ctx, "", payload)
	if err != nil {
		return nil, err
	}

	// Inline answer unless the proxy handed back a queued request ID.
	data, ok := initial.Data.(map[string]any)
	if !ok {
		return initial, nil
	}
	requestID, ok := idField(data, "ai_request_id")
	if !ok {
		return initial, nil
	}

	return c.AwaitResponse(ctx, requestID, opts)
}

// AwaitResponse polls the status endpoint until the queued request
// reaches a terminal state or the poll deadline passes.
func (c *Client) AwaitResponse(ctx context.Context, requestID string, opts PollOptions) (*Result, error) {
	interval := opts.Interval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	if timeout < interval {
		timeout = interval
	}

	deadline := time.Now().Add(timeout)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := c.FetchStatus(ctx, requestID)
		if err != nil {
			return nil, err
		}

		if data, ok := res.Data.(map[string]any); ok {
			switch data["status"] {
			case "success":
				if response, ok := data["response"]; ok {
					return &Result{StatusCode: 200, Data: response}, nil
				}
				return &Result{StatusCode: 200, Data: data}, nil
			case "failed":
				message := "AI request failed"
				if s, ok := stringField(data, "error"); ok {
					message = s
				}
				return nil, &ProxyError{
					Code:       "request_failed",
					StatusCode: 500,
					Message:    message,
					Payload:    data,
				}
			}
		}

		if time.Now().After(deadline) {
			return nil, &ProxyError{
				Code:    "timeout",
				Message: "timed out waiting for AI response",
			}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
	}
}

func stringField(m map[string]any, key string) (string, bool) {
	s, ok := m[key].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// idField reads a request ID that the proxy may encode as a string or
// a JSON number.
func idField(m map[string]any, key string) (string, bool) {
	switch v := m[key].(type) {
	case string:
		return v, v != ""
	case float64:
		return strconv.FormatInt(int64(v), 10), true
	case json.Number:
		return v.String(), true
	}
	return "", false
}
