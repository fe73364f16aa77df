package upstream

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"

	"github.com/ovrica/sget/internal/config"
)

// Extensions that mark a network request as media traffic
var (
	videoExts = []string{".m3u8", ".mp4", ".webm", ".mov"}
	audioExts = []string{".mp3", ".m4a", ".aac"}
	imageExts = []string{".jpg", ".jpeg", ".png", ".webp"}
)

const sniffWindow = 15 * time.Second

// Sniffer loads a page in a headless browser and captures the media
// URLs the player requests. It is the fallback source when the
// extraction API has nothing: the payload it produces goes through
// the same normalization pipeline as an API response.
type Sniffer struct {
	visible bool
}

// NewSniffer creates a browser sniffer. visible turns headless off,
// which helps against pages that block automation.
func NewSniffer(visible bool) *Sniffer {
	return &Sniffer{visible: visible}
}

type capture struct {
	mu     sync.Mutex
	videos []string
	audios []string
	images []string
	seen   map[string]bool
	done   chan struct{}
	closed bool
}

func (c *capture) add(reqURL string) {
	lower := strings.ToLower(reqURL)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.seen[reqURL] {
		return
	}

	switch {
	case hasAnyExt(lower, videoExts):
		c.seen[reqURL] = true
		c.videos = append(c.videos, reqURL)
		if !c.closed {
			c.closed = true
			close(c.done)
		}
	case hasAnyExt(lower, audioExts):
		c.seen[reqURL] = true
		c.audios = append(c.audios, reqURL)
	case hasAnyExt(lower, imageExts):
		c.seen[reqURL] = true
		c.images = append(c.images, reqURL)
	}
}

func hasAnyExt(lower string, exts []string) bool {
	for _, ext := range exts {
		if strings.Contains(lower, ext) {
			return true
		}
	}
	return false
}

// Sniff loads the page and returns a raw payload with whatever media
// traffic was observed, shaped like an extraction API response.
func (s *Sniffer) Sniff(rawURL string) (map[string]any, error) {
	if _, err := url.Parse(rawURL); err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	l := s.createLauncher(!s.visible)
	defer l.Cleanup()

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}
	defer browser.Close()

	page, err := stealth.Page(browser)
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	defer page.Close()

	_ = proto.NetworkEnable{}.Call(page)

	netcap := &capture{seen: make(map[string]bool), done: make(chan struct{})}
	listenerReady := make(chan struct{})

	go func() {
		wait := page.EachEvent(func(e *proto.NetworkRequestWillBeSent) {
			netcap.add(e.Request.URL)
		})
		close(listenerReady)
		wait()
	}()
	<-listenerReady

	_ = page.Navigate(rawURL)
	_ = page.WaitLoad()

	select {
	case <-netcap.done:
		// First video request seen; give trailing audio/image
		// requests a moment to land
		time.Sleep(500 * time.Millisecond)
	case <-time.After(sniffWindow):
	}

	netcap.mu.Lock()
	defer netcap.mu.Unlock()
	if len(netcap.videos) == 0 && len(netcap.audios) == 0 && len(netcap.images) == 0 {
		return nil, fmt.Errorf("no media traffic observed on %s", rawURL)
	}

	return s.payload(page, netcap), nil
}

// payload shapes captured traffic like an extraction API response so
// the normalization pipeline can consume it unchanged.
func (s *Sniffer) payload(page *rod.Page, netcap *capture) map[string]any {
	raw := map[string]any{}

	if title := pageTitle(page); title != "" {
		raw["title"] = title
	}

	if len(netcap.videos) > 0 {
		medias := make([]any, 0, len(netcap.videos))
		for _, v := range netcap.videos {
			medias = append(medias, map[string]any{"url": v, "quality": "best"})
		}
		raw["medias"] = medias
	}
	if len(netcap.audios) > 0 {
		raw["audio"] = map[string]any{"url": netcap.audios[0]}
	}
	if len(netcap.images) > 0 {
		images := make([]any, 0, len(netcap.images))
		for _, img := range netcap.images {
			images = append(images, img)
		}
		raw["images"] = images
	}
	return raw
}

func pageTitle(page *rod.Page) string {
	result, err := page.Eval(`() => document.title`)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(result.Value.String())
}

func (s *Sniffer) createLauncher(headless bool) *launcher.Launcher {
	return launcher.New().
		Headless(headless).
		UserDataDir(s.userDataDir()).
		Set("no-sandbox").
		Set("disable-gpu").
		Set("disable-dev-shm-usage")
}

func (s *Sniffer) userDataDir() string {
	configDir, err := config.ConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "sget-browser")
	}
	return filepath.Join(configDir, "browser")
}
