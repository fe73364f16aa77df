package platform

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ovrica/sget/internal/media"
)

// YouTubePlatform handles YouTube watch links and youtu.be short-links
type YouTubePlatform struct{}

func (p *YouTubePlatform) Name() string {
	return "youtube"
}

func (p *YouTubePlatform) Match(u *url.URL) bool {
	host := strings.ToLower(u.Hostname())
	return host == "youtube.com" ||
		host == "www.youtube.com" ||
		host == "youtu.be" ||
		host == "m.youtube.com" ||
		host == "music.youtube.com"
}

func (p *YouTubePlatform) Validate(rawURL string) error {
	if !strings.Contains(rawURL, "youtube.com") && !strings.Contains(rawURL, "youtu.be") {
		return fmt.Errorf("please provide a valid YouTube URL")
	}
	return nil
}

func (p *YouTubePlatform) Endpoint() string {
	return "/api/youtube/download"
}

func (p *YouTubePlatform) Headers() map[string]string {
	return nil
}

func (p *YouTubePlatform) CacheMaxAge() time.Duration {
	return time.Hour
}

func (p *YouTubePlatform) Profile() media.Profile {
	return media.Profile{
		ArrayKeys:    []string{"formats", "medias", "links", "urls", "videos", "qualities"},
		DefaultTitle: "YouTube Video",
	}
}

func init() {
	Register(&YouTubePlatform{},
		"youtube.com",
		"www.youtube.com",
		"youtu.be",
		"m.youtube.com",
		"music.youtube.com",
	)
}
