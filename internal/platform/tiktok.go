package platform

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ovrica/sget/internal/media"
)

// TikTokPlatform handles TikTok video links, including the share
// short-links (vm.tiktok.com / vt.tiktok.com)
type TikTokPlatform struct{}

func (p *TikTokPlatform) Name() string {
	return "tiktok"
}

func (p *TikTokPlatform) Match(u *url.URL) bool {
	return strings.HasSuffix(u.Hostname(), "tiktok.com")
}

func (p *TikTokPlatform) Validate(rawURL string) error {
	if !strings.Contains(rawURL, "tiktok.com") {
		return fmt.Errorf("please provide a valid TikTok URL")
	}
	return nil
}

func (p *TikTokPlatform) Endpoint() string {
	return "/api/tiktok/download"
}

func (p *TikTokPlatform) Headers() map[string]string {
	return nil
}

func (p *TikTokPlatform) CacheMaxAge() time.Duration {
	return 10 * time.Minute
}

func (p *TikTokPlatform) Profile() media.Profile {
	return media.Profile{DefaultTitle: "TikTok Video"}
}

func init() {
	Register(&TikTokPlatform{},
		"tiktok.com",
		"www.tiktok.com",
		"vm.tiktok.com",
		"vt.tiktok.com",
	)
}
