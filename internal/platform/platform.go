// Package platform describes the supported social platforms: which
// hostnames they own, how their URLs are validated, where the upstream
// extraction API lives and how their responses are normalized.
package platform

import (
	"net/url"
	"time"

	"github.com/ovrica/sget/internal/media"
)

// Platform is one supported social platform
type Platform interface {
	// Name is the stable identifier used in routes and logs
	Name() string

	// Match reports whether the parsed URL belongs to this platform
	Match(u *url.URL) bool

	// Validate rejects URLs that do not look like a shareable link
	// for this platform. Returns nil when the URL is acceptable.
	Validate(rawURL string) error

	// Endpoint is the upstream API path that extracts this platform
	Endpoint() string

	// Headers returns extra request headers the upstream expects,
	// or nil
	Headers() map[string]string

	// CacheMaxAge is how long successful responses may be cached
	CacheMaxAge() time.Duration

	// Profile tunes the normalization pipeline for this platform
	Profile() media.Profile
}
