package media

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildVideoSortedByTierDescending(t *testing.T) {
	got := Build([]Candidate{
		{URL: "http://a/360.mp4", Quality: "360p"},
		{URL: "http://a/4k.mp4", Quality: "2160p"},
		{URL: "http://a/720.mp4", Quality: "720p"},
	})
	require.Len(t, got, 3)
	require.Equal(t, "http://a/4k.mp4", got[0].URL)
	require.Equal(t, "http://a/720.mp4", got[1].URL)
	require.Equal(t, "http://a/360.mp4", got[2].URL)
}

func TestBuildSortIsStableForEqualTiers(t *testing.T) {
	got := Build([]Candidate{
		{URL: "http://a/first.mp4", Quality: "720p"},
		{URL: "http://a/second.mp4", Quality: "720p60"},
		{URL: "http://a/third.mp4", Quality: "720p"},
	})
	require.Equal(t, "http://a/first.mp4", got[0].URL)
	require.Equal(t, "http://a/second.mp4", got[1].URL)
	require.Equal(t, "http://a/third.mp4", got[2].URL)
}

func TestBuildVideoLabels(t *testing.T) {
	yes := true
	cases := []struct {
		c    Candidate
		text string
	}{
		{Candidate{URL: "http://a/1", Quality: "720p"}, "720p 🎬"},
		{Candidate{URL: "http://a/2", Quality: "360p"}, "360p"},
		{Candidate{URL: "http://a/3", Quality: "1080p", Ext: "mp4"}, "1080p 🎬 .mp4"},
		{Candidate{URL: "http://a/4", Quality: "480p", Ext: "mp4", Size: "12.3 MB"}, "480p .mp4 (12.3 MB)"},
		{Candidate{URL: "http://a/5"}, "Standard"},
		{Candidate{URL: "http://a/6", Quality: "HD"}, "HD 🎬"},
		{Candidate{URL: "http://a/7", Quality: "720p", NoWatermark: &yes}, "720p 🎬 (No Watermark)"},
	}
	for _, tc := range cases {
		got := Build([]Candidate{tc.c})
		require.Len(t, got, 1)
		require.Equal(t, tc.text, got[0].Text)
	}
}

func TestBuildAudioLabels(t *testing.T) {
	cases := []struct {
		quality string
		ext     string
		text    string
	}{
		{"320", "mp3", "High Quality (320kbps) 🎵 - MP3"},
		{"128", "mp3", "Standard Quality (128kbps) 🎵 - MP3"},
		{"high", "m4a", "High Quality 🎵 - M4A"},
		{"standard", "", "Standard Quality 🎵 - MP3"},
		{"unknown", "", "Audio 🎵 - MP3"},
		{"vbr", "ogg", "Audio (vbr) 🎵 - OGG"},
		{"", "", "Audio 🎵 - MP3"},
	}
	for _, tc := range cases {
		got := Build([]Candidate{{URL: "http://a/x", Quality: tc.quality, Ext: tc.ext, Kind: KindAudio}})
		require.Len(t, got, 1)
		require.Equal(t, tc.text, got[0].Text, "quality=%q", tc.quality)
	}
}

func TestBuildImageLabelsAreIndexed(t *testing.T) {
	got := Build([]Candidate{
		{URL: "http://a/1.jpg", Kind: KindImage},
		{URL: "http://a/2.jpg", Kind: KindImage},
	})
	require.Equal(t, "Image 1 📸", got[0].Text)
	require.Equal(t, "Image 2 📸", got[1].Text)
}

func TestBuildConcatenationOrder(t *testing.T) {
	got := Build([]Candidate{
		{URL: "http://a/img.jpg", Kind: KindImage},
		{URL: "http://a/song.mp3", Kind: KindAudio},
		{URL: "http://a/vid.mp4", Quality: "720p"},
	})
	require.Len(t, got, 3)
	require.Equal(t, "http://a/vid.mp4", got[0].URL, "video first")
	require.Equal(t, "http://a/song.mp3", got[1].URL, "then audio")
	require.Equal(t, "http://a/img.jpg", got[2].URL, "then images")
}

func TestBuildSkipsUnusableURLs(t *testing.T) {
	got := Build([]Candidate{
		{URL: "", Quality: "720p"},
		{URL: "ftp://a/x.mp4", Quality: "720p"},
	})
	require.Empty(t, got)
}
