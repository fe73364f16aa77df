package platform

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/ovrica/sget/internal/media"
)

var tweetIDPattern = regexp.MustCompile(`(?:twitter\.com|x\.com)/\w+/status/(\d+)`)
var statusIDPattern = regexp.MustCompile(`status/(\d+)`)

// TwitterPlatform handles Twitter/X status links and t.co short-links
type TwitterPlatform struct{}

func (p *TwitterPlatform) Name() string {
	return "twitter"
}

func (p *TwitterPlatform) Match(u *url.URL) bool {
	host := u.Hostname()
	return strings.HasSuffix(host, "twitter.com") ||
		host == "x.com" || host == "www.x.com" ||
		host == "t.co"
}

func (p *TwitterPlatform) Validate(rawURL string) error {
	if !strings.Contains(rawURL, "twitter.com") &&
		!strings.Contains(rawURL, "x.com") &&
		!strings.Contains(rawURL, "t.co/") {
		return fmt.Errorf("please provide a valid Twitter/X URL")
	}
	return nil
}

func (p *TwitterPlatform) Endpoint() string {
	return "/api/twitter/download"
}

func (p *TwitterPlatform) Headers() map[string]string {
	return nil
}

func (p *TwitterPlatform) CacheMaxAge() time.Duration {
	return 5 * time.Minute
}

func (p *TwitterPlatform) Profile() media.Profile {
	return media.Profile{DefaultTitle: "Twitter Video"}
}

// NeedsResolve reports whether the URL is a shortened share link that
// must be expanded before the upstream call
func (p *TwitterPlatform) NeedsResolve(rawURL string) bool {
	if strings.Contains(rawURL, "/status/") {
		return false
	}
	return strings.Contains(rawURL, "t.co/") || len(rawURL) < 30
}

// TweetID extracts the numeric status ID from a resolved URL, or ""
func TweetID(rawURL string) string {
	if m := tweetIDPattern.FindStringSubmatch(rawURL); m != nil {
		return m[1]
	}
	if m := statusIDPattern.FindStringSubmatch(rawURL); m != nil {
		return m[1]
	}
	return ""
}

func init() {
	Register(&TwitterPlatform{},
		"twitter.com",
		"www.twitter.com",
		"mobile.twitter.com",
		"x.com",
		"www.x.com",
		"t.co",
	)
}
