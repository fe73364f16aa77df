// Package upstream talks to the extraction API that turns a public
// platform URL into raw media JSON. It owns all transport concerns:
// timeouts, retries, headers and the response envelope. The payloads
// themselves stay untyped; normalization happens elsewhere.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/ovrica/sget/internal/config"
	"github.com/ovrica/sget/internal/platform"
)

// StatusError is a non-2xx reply from the extraction API
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.Code)
}

// APIError is a logical failure reported inside a 200 reply
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client calls the extraction API
type Client struct {
	base      string
	userAgent string
	authToken string
	http      *retryablehttp.Client
}

// New builds a client from config: bounded wall-clock timeout per
// call, limited retries with linear backoff, and no retry on 404
// (a missing post stays missing).
func New(cfg *config.Config) *Client {
	rc := retryablehttp.NewClient()
	rc.Logger = nil
	rc.RetryMax = cfg.Retries
	rc.RetryWaitMin = time.Second
	rc.RetryWaitMax = time.Duration(cfg.Retries+1) * time.Second
	rc.HTTPClient.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	rc.Backoff = func(min, _ time.Duration, attemptNum int, _ *http.Response) time.Duration {
		return min * time.Duration(attemptNum+1)
	}
	rc.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		if err != nil {
			return true, nil
		}
		if resp.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return resp.StatusCode < 200 || resp.StatusCode >= 300, nil
	}

	return &Client{
		base:      strings.TrimRight(cfg.APIBase, "/"),
		userAgent: cfg.UserAgent,
		authToken: cfg.Twitter.AuthToken,
		http:      rc,
	}
}

// Fetch calls the platform's extraction endpoint for the target URL
// and returns the raw payload. The envelope ({success, data, error})
// is unwrapped here; list payloads are folded into a "medias" key so
// every platform hands the pipeline the same shape.
func (c *Client) Fetch(ctx context.Context, p platform.Platform, target string) (map[string]any, error) {
	endpoint := fmt.Sprintf("%s%s?url=%s", c.base, p.Endpoint(), url.QueryEscape(target))

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	for k, v := range p.Headers() {
		req.Header.Set(k, v)
	}
	if c.authToken != "" && p.Name() == "twitter" {
		req.Header.Set("X-Auth-Token", c.authToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode}
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		return nil, &APIError{Message: "upstream returned a non-JSON response"}
	}

	var body any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode upstream response: %w", err)
	}
	return unwrap(body)
}

// unwrap peels the {success, data, error} envelope if present.
func unwrap(body any) (map[string]any, error) {
	obj, ok := body.(map[string]any)
	if !ok {
		// Some extractors reply with a bare list of media objects
		if arr, ok := body.([]any); ok {
			return map[string]any{"medias": arr}, nil
		}
		return nil, &APIError{Message: "unexpected upstream payload shape"}
	}

	success, enveloped := obj["success"].(bool)
	if !enveloped {
		return obj, nil
	}
	if !success {
		return nil, &APIError{Message: upstreamMessage(obj)}
	}

	switch data := obj["data"].(type) {
	case map[string]any:
		return data, nil
	case []any:
		return map[string]any{"medias": data}, nil
	default:
		return nil, nil
	}
}

func upstreamMessage(obj map[string]any) string {
	for _, key := range []string{"error", "message"} {
		if s, ok := obj[key].(string); ok && s != "" {
			return s
		}
	}
	return "failed to fetch media data"
}

// Health probes the extraction API's /health endpoint
func (c *Client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("upstream unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Code: resp.StatusCode}
	}
	return nil
}
