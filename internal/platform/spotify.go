package platform

import (
	"fmt"
	"net/url"
	"regexp"
	"time"

	"github.com/ovrica/sget/internal/media"
)

var spotifyURLPattern = regexp.MustCompile(`^https?://open\.spotify\.com/(track|album|playlist|artist)/[a-zA-Z0-9]+`)

// SpotifyPlatform handles Spotify track, album, playlist and artist links
type SpotifyPlatform struct{}

func (p *SpotifyPlatform) Name() string {
	return "spotify"
}

func (p *SpotifyPlatform) Match(u *url.URL) bool {
	return u.Hostname() == "open.spotify.com"
}

func (p *SpotifyPlatform) Validate(rawURL string) error {
	if !spotifyURLPattern.MatchString(rawURL) {
		return fmt.Errorf("please provide a valid Spotify URL (track, album, playlist, or artist)")
	}
	return nil
}

func (p *SpotifyPlatform) Endpoint() string {
	return "/api/spotify"
}

// Headers carries the referer the upstream's own extraction partner
// checks before serving audio links
func (p *SpotifyPlatform) Headers() map[string]string {
	return map[string]string{
		"Referer": "https://spotify.downloaderize.com/",
		"Origin":  "https://spotify.downloaderize.com",
	}
}

func (p *SpotifyPlatform) CacheMaxAge() time.Duration {
	return time.Hour
}

func (p *SpotifyPlatform) Profile() media.Profile {
	return media.Profile{
		ArrayKeys:    []string{"downloadLinks", "medias", "links", "urls"},
		DefaultTitle: "Spotify Track",
	}
}

func init() {
	Register(&SpotifyPlatform{}, "open.spotify.com")
}
