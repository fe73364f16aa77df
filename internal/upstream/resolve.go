package upstream

import (
	"context"
	"net/http"
	"strings"
)

// ResolveShortURL expands shortened share links (t.co and friends) by
// following redirects and returning the final URL. Full status URLs
// pass through untouched, and any failure falls back to the input:
// a bad expansion is the upstream's problem to report, not ours.
func (c *Client) ResolveShortURL(ctx context.Context, rawURL string) string {
	if strings.Contains(rawURL, "/status/") ||
		strings.Contains(rawURL, "twitter.com/") ||
		strings.Contains(rawURL, "x.com/") {
		return rawURL
	}
	if !strings.Contains(rawURL, "t.co") && len(rawURL) >= 30 {
		return rawURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return rawURL
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.HTTPClient.Do(req)
	if err != nil {
		return rawURL
	}
	defer resp.Body.Close()

	if resp.Request != nil && resp.Request.URL != nil {
		return resp.Request.URL.String()
	}
	return rawURL
}
