package server

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/ovrica/sget/internal/media"
	"github.com/ovrica/sget/internal/platform"
	"github.com/ovrica/sget/internal/upstream"
)

// apiResponse is the uniform envelope. Failures after validation are
// still HTTP 200 so clients only branch on the success flag.
type apiResponse struct {
	Success bool          `json:"success"`
	Data    *media.Result `json:"data,omitempty"`
	Error   string        `json:"error,omitempty"`
}

type downloadRequest struct {
	URL string `json:"url"`
}

func fail(msg string) apiResponse {
	return apiResponse{Success: false, Error: msg}
}

func (s *Server) handleDownload(c *gin.Context) {
	p := platform.ByName(c.Param("platform"))
	if p == nil {
		c.JSON(http.StatusBadRequest, fail("unsupported platform"))
		return
	}

	target := c.Query("url")
	if target == "" && c.Request.Method == http.MethodPost {
		var body downloadRequest
		if err := c.ShouldBindJSON(&body); err == nil {
			target = body.URL
		}
	}
	if target == "" {
		c.JSON(http.StatusBadRequest, fail("URL parameter is required"))
		return
	}
	if err := p.Validate(target); err != nil {
		c.JSON(http.StatusBadRequest, fail(err.Error()))
		return
	}

	ctx := c.Request.Context()

	// Share links must be expanded before the upstream sees them
	if tw, ok := p.(*platform.TwitterPlatform); ok && tw.NeedsResolve(target) {
		target = s.client.ResolveShortURL(ctx, target)
		if err := p.Validate(target); err != nil {
			c.JSON(http.StatusOK, fail("could not resolve the shortened link to a Twitter/X status"))
			return
		}
	}

	raw, err := s.client.Fetch(ctx, p, target)
	if err != nil && s.sniffer != nil {
		if sniffed, serr := s.sniffer.Sniff(target); serr == nil {
			raw, err = sniffed, nil
		}
	}
	if err != nil {
		c.JSON(http.StatusOK, fail(userMessage(err)))
		return
	}

	result := media.Normalize(raw, p.Profile())
	if result == nil {
		c.JSON(http.StatusOK, fail("Media found but no download URLs available. The content might be restricted."))
		return
	}

	maxAge := int(p.CacheMaxAge().Seconds())
	c.Header("Cache-Control", fmt.Sprintf("public, s-maxage=%d, stale-while-revalidate=%d", maxAge, maxAge*2))
	c.JSON(http.StatusOK, apiResponse{Success: true, Data: result})
}

func (s *Server) handleHealth(c *gin.Context) {
	if err := s.client.Health(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "upstream": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// userMessage maps transport and upstream failures to the messages
// shown to end users
func userMessage(err error) string {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}

	var statusErr *upstream.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("Failed to fetch media (Status: %d)", statusErr.Code)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "Request timeout. Please try again."
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return "Cannot connect to the media service. Please try again later."
	}

	return "An unexpected error occurred. Please try again."
}
