package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ovrica/sget/internal/config"
	"github.com/ovrica/sget/internal/platform"
)

func testClient(baseURL string) *Client {
	cfg := config.Default()
	cfg.APIBase = baseURL
	cfg.TimeoutSeconds = 5
	return New(cfg)
}

func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

func TestFetchUnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/youtube/download", r.URL.Path)
		require.Equal(t, "https://youtu.be/abc", r.URL.Query().Get("url"))
		require.Equal(t, "application/json", r.Header.Get("Accept"))
		jsonHandler(200, `{"success":true,"data":{"title":"Clip","formats":[{"url":"http://a/1.mp4"}]}}`)(w, r)
	}))
	defer srv.Close()

	raw, err := testClient(srv.URL).Fetch(context.Background(), platform.ByName("youtube"), "https://youtu.be/abc")
	require.NoError(t, err)
	require.Equal(t, "Clip", raw["title"])
	require.Len(t, raw["formats"], 1)
}

func TestFetchWrapsListPayload(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(200, `{"success":true,"data":[{"url":"http://a/1.mp4"}]}`))
	defer srv.Close()

	raw, err := testClient(srv.URL).Fetch(context.Background(), platform.ByName("twitter"), "https://x.com/u/status/1")
	require.NoError(t, err)
	require.Len(t, raw["medias"], 1)
}

func TestFetchBarePayloadPassesThrough(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(200, `{"title":"Bare","medias":[{"url":"http://a/1.mp4"}]}`))
	defer srv.Close()

	raw, err := testClient(srv.URL).Fetch(context.Background(), platform.ByName("tiktok"), "https://www.tiktok.com/@u/video/1")
	require.NoError(t, err)
	require.Equal(t, "Bare", raw["title"])
}

func TestFetchUpstreamLogicalFailure(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(200, `{"success":false,"error":"video is private"}`))
	defer srv.Close()

	_, err := testClient(srv.URL).Fetch(context.Background(), platform.ByName("tiktok"), "https://www.tiktok.com/@u/video/1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "video is private", apiErr.Message)
}

func TestFetchDoesNotRetry404(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		jsonHandler(http.StatusNotFound, `{"success":false}`)(w, r)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Fetch(context.Background(), platform.ByName("youtube"), "https://youtu.be/abc")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusNotFound, statusErr.Code)
	require.Equal(t, int32(1), calls.Load())
}

func TestFetchRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		jsonHandler(200, `{"success":true,"data":{"title":"Recovered"}}`)(w, r)
	}))
	defer srv.Close()

	raw, err := testClient(srv.URL).Fetch(context.Background(), platform.ByName("youtube"), "https://youtu.be/abc")
	require.NoError(t, err)
	require.Equal(t, "Recovered", raw["title"])
	require.Equal(t, int32(2), calls.Load())
}

func TestFetchRejectsNonJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>nope</html>"))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Fetch(context.Background(), platform.ByName("twitter"), "https://x.com/u/status/1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
}

func TestFetchSendsPlatformHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "https://spotify.downloaderize.com/", r.Header.Get("Referer"))
		jsonHandler(200, `{"success":true,"data":{"title":"Song"}}`)(w, r)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Fetch(context.Background(), platform.ByName("spotify"), "https://open.spotify.com/track/abc")
	require.NoError(t, err)
}

func TestResolveShortURL(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/s", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/u/status/12345", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/u/status/12345", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := testClient(srv.URL)
	got := c.ResolveShortURL(context.Background(), srv.URL+"/s")
	require.Equal(t, srv.URL+"/u/status/12345", got)

	// Full status URLs pass through without a request
	full := "https://twitter.com/user/status/1234567890"
	require.Equal(t, full, c.ResolveShortURL(context.Background(), full))
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	require.NoError(t, testClient(srv.URL).Health(context.Background()))

	down := testClient("http://127.0.0.1:1")
	require.Error(t, down.Health(context.Background()))
}
