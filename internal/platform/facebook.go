package platform

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ovrica/sget/internal/media"
)

// FacebookPlatform handles Facebook video and reel links
type FacebookPlatform struct{}

func (p *FacebookPlatform) Name() string {
	return "facebook"
}

func (p *FacebookPlatform) Match(u *url.URL) bool {
	host := u.Hostname()
	return strings.HasSuffix(host, "facebook.com") || host == "fb.watch"
}

func (p *FacebookPlatform) Validate(rawURL string) error {
	if !strings.Contains(rawURL, "facebook.com") && !strings.Contains(rawURL, "fb.watch") {
		return fmt.Errorf("please provide a valid Facebook URL")
	}
	return nil
}

func (p *FacebookPlatform) Endpoint() string {
	return "/api/facebook-insta/download"
}

func (p *FacebookPlatform) Headers() map[string]string {
	return nil
}

func (p *FacebookPlatform) CacheMaxAge() time.Duration {
	return 10 * time.Minute
}

func (p *FacebookPlatform) Profile() media.Profile {
	return media.Profile{DefaultTitle: "Facebook Video"}
}

func init() {
	Register(&FacebookPlatform{},
		"facebook.com",
		"www.facebook.com",
		"m.facebook.com",
		"web.facebook.com",
		"fb.watch",
	)
}
