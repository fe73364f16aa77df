package platform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchByHostname(t *testing.T) {
	cases := []struct {
		url  string
		name string
	}{
		{"https://www.youtube.com/watch?v=abc123", "youtube"},
		{"https://youtu.be/abc123", "youtube"},
		{"https://music.youtube.com/watch?v=abc123", "youtube"},
		{"https://www.tiktok.com/@user/video/123", "tiktok"},
		{"https://vm.tiktok.com/ZMabcdef/", "tiktok"},
		{"https://twitter.com/user/status/123", "twitter"},
		{"https://x.com/user/status/123", "twitter"},
		{"https://t.co/abcdef", "twitter"},
		{"https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC", "spotify"},
		{"https://www.facebook.com/watch?v=123", "facebook"},
		{"https://fb.watch/abcdef/", "facebook"},
		{"https://www.instagram.com/reel/abc/", "instagram"},
	}
	for _, tc := range cases {
		p := Match(tc.url)
		require.NotNil(t, p, "url=%q", tc.url)
		require.Equal(t, tc.name, p.Name(), "url=%q", tc.url)
	}
}

func TestMatchUnknownHost(t *testing.T) {
	require.Nil(t, Match("https://example.com/video/1"))
	require.Nil(t, Match("://not a url"))
}

func TestByName(t *testing.T) {
	for _, name := range []string{"facebook", "instagram", "tiktok", "twitter", "spotify", "youtube"} {
		p := ByName(name)
		require.NotNil(t, p, "name=%q", name)
		require.Equal(t, name, p.Name())
	}
	require.Nil(t, ByName("myspace"))
}

func TestList(t *testing.T) {
	require.Len(t, List(), 6)
}

func TestValidateRules(t *testing.T) {
	require.NoError(t, ByName("facebook").Validate("https://fb.watch/abc/"))
	require.Error(t, ByName("facebook").Validate("https://example.com/x"))

	require.NoError(t, ByName("spotify").Validate("https://open.spotify.com/album/37i9dQZF1DXcBWIGoYBM5M"))
	require.Error(t, ByName("spotify").Validate("https://open.spotify.com/show/12345"))
	require.Error(t, ByName("spotify").Validate("https://spotify.com/track/abc"))

	require.NoError(t, ByName("twitter").Validate("https://x.com/user/status/1234567890"))
	require.Error(t, ByName("twitter").Validate("https://example.com/status/1"))

	require.NoError(t, ByName("youtube").Validate("https://youtu.be/abc"))
	require.Error(t, ByName("youtube").Validate("https://vimeo.com/123"))
}

func TestTweetID(t *testing.T) {
	require.Equal(t, "1234567890", TweetID("https://twitter.com/user/status/1234567890"))
	require.Equal(t, "42", TweetID("https://x.com/someone/status/42?s=20"))
	require.Equal(t, "7", TweetID("https://mobile.twitter.com/a/status/7"))
	require.Equal(t, "", TweetID("https://x.com/someone"))
}

func TestTwitterNeedsResolve(t *testing.T) {
	tw := ByName("twitter").(*TwitterPlatform)
	require.True(t, tw.NeedsResolve("https://t.co/abcdef"))
	require.False(t, tw.NeedsResolve("https://twitter.com/user/status/1234567890123456789"))
}
