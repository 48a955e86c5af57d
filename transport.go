package paychangu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

type request struct {
	method string
	path   string
	body   any
}

func (c *Client) get(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, request{method: http.MethodGet, path: path})
}

func (c *Client) post(ctx context.Context, path string, body any) (*Response, error) {
	return c.do(ctx, request{method: http.MethodPost, path: path, body: body})
}

// do sends exactly one request and classifies the answer by status code.
func (c *Client) do(ctx context.Context, req request) (*Response, error) {
	var payload io.Reader
	withBody := req.body != nil && (req.method == http.MethodPost || req.method == http.MethodPut)
	if withBody {
		b, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("paychangu: encode %s body: %w", req.path, err)
		}
		payload = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, payload)
	if err != nil {
		return nil, fmt.Errorf("paychangu: build %s request: %w", req.path, err)
	}
	httpReq.Header = c.header.Clone()
	if withBody {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, connectionError(err, 0)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, connectionError(err, resp.StatusCode)
	}

	c.logger.LogAttrs(ctx, slog.LevelDebug, "paychangu request",
		slog.String("method", req.method),
		slog.String("path", req.path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	return classify(resp.StatusCode, raw)
}

func connectionError(err error, status int) *APIError {
	return &APIError{
		Kind:       KindAPI,
		Message:    "Connection error: " + err.Error(),
		StatusCode: status,
		Err:        err,
	}
}

func classify(status int, raw []byte) (*Response, error) {
	if status >= 200 && status < 300 {
		resp := &Response{StatusCode: status, raw: raw}
		if len(bytes.TrimSpace(raw)) == 0 {
			return resp, nil
		}
		if err := json.Unmarshal(raw, &resp.Body); err != nil {
			return nil, &APIError{
				Kind:       KindAPI,
				Message:    "Invalid JSON response",
				Body:       string(raw),
				StatusCode: status,
				Err:        err,
			}
		}
		return resp, nil
	}

	kind := kindForStatus(status)
	return nil, &APIError{
		Kind:       kind,
		Message:    remoteMessage(raw, kind.fallbackMessage()),
		Body:       string(raw),
		StatusCode: status,
	}
}

// remoteMessage extracts the "message" field of a JSON object body.
// Structured messages, such as per-field validation maps, are returned as
// compact JSON.
func remoteMessage(raw []byte, fallback string) string {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return fallback
	}
	msg, ok := obj["message"]
	if !ok || string(msg) == "null" {
		return fallback
	}

	var s string
	if err := json.Unmarshal(msg, &s); err == nil {
		if s == "" {
			return fallback
		}
		return s
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, msg); err != nil {
		return fallback
	}
	return compact.String()
}
