package platform

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ovrica/sget/internal/media"
)

// InstagramPlatform handles Instagram posts, reels and stories
type InstagramPlatform struct{}

func (p *InstagramPlatform) Name() string {
	return "instagram"
}

func (p *InstagramPlatform) Match(u *url.URL) bool {
	host := u.Hostname()
	return strings.HasSuffix(host, "instagram.com") || host == "instagr.am"
}

func (p *InstagramPlatform) Validate(rawURL string) error {
	if !strings.Contains(rawURL, "instagram.com") && !strings.Contains(rawURL, "instagr.am") {
		return fmt.Errorf("please provide a valid Instagram URL")
	}
	return nil
}

// Endpoint is shared with Facebook; the upstream serves both Meta
// properties from the same extractor.
func (p *InstagramPlatform) Endpoint() string {
	return "/api/facebook-insta/download"
}

func (p *InstagramPlatform) Headers() map[string]string {
	return nil
}

func (p *InstagramPlatform) CacheMaxAge() time.Duration {
	return 10 * time.Minute
}

func (p *InstagramPlatform) Profile() media.Profile {
	return media.Profile{DefaultTitle: "Instagram Post"}
}

func init() {
	Register(&InstagramPlatform{},
		"instagram.com",
		"www.instagram.com",
		"instagr.am",
	)
}
