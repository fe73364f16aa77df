package media

import (
	"fmt"
	"sort"
	"strings"
)

// audioPhrases maps bitrate fragments and quality words to the
// descriptive phrases shown to users. Scanned in order; numeric
// bitrates must come before the generic words.
var audioPhrases = []struct {
	sub    string
	phrase string
}{
	{"320", "High Quality (320kbps)"},
	{"256", "High Quality (256kbps)"},
	{"192", "Good Quality (192kbps)"},
	{"160", "Standard Quality (160kbps)"},
	{"128", "Standard Quality (128kbps)"},
	{"96", "Low Quality (96kbps)"},
	{"high", "High Quality"},
	{"medium", "Medium Quality"},
	{"low", "Low Quality"},
	{"standard", "Standard Quality"},
	{"unknown", "Audio"},
}

// Build converts classified candidates into the final downloads list:
// videos sorted by quality descending, then audio, then images.
func Build(candidates []Candidate) []Download {
	var videos, audios, images []Candidate
	for _, c := range candidates {
		if _, ok := usableURL(c.URL); !ok {
			continue
		}
		switch c.Kind {
		case KindAudio:
			audios = append(audios, c)
		case KindImage:
			images = append(images, c)
		default:
			videos = append(videos, c)
		}
	}

	// Stable keeps discovery order for equal tiers
	sort.SliceStable(videos, func(i, j int) bool {
		return Classify(videos[i].Quality).Tier > Classify(videos[j].Quality).Tier
	})

	downloads := make([]Download, 0, len(videos)+len(audios)+len(images))
	for _, v := range videos {
		downloads = append(downloads, Download{Text: videoLabel(v), URL: v.URL})
	}
	for _, a := range audios {
		downloads = append(downloads, Download{Text: audioLabel(a), URL: a.URL})
	}
	for i, img := range images {
		downloads = append(downloads, Download{Text: fmt.Sprintf("Image %d 📸", i+1), URL: img.URL})
	}
	return downloads
}

func videoLabel(c Candidate) string {
	cls := Classify(c.Quality)

	var b strings.Builder
	b.WriteString(cls.Label)
	if cls.HD {
		b.WriteString(" 🎬")
	}
	if c.Ext != "" {
		b.WriteString(" .")
		b.WriteString(strings.ToLower(c.Ext))
	}
	if c.Size != "" {
		fmt.Fprintf(&b, " (%s)", c.Size)
	}
	if c.NoWatermark != nil && *c.NoWatermark {
		b.WriteString(" (No Watermark)")
	}
	return b.String()
}

func audioLabel(c Candidate) string {
	ext := strings.ToUpper(c.Ext)
	if ext == "" {
		ext = "MP3"
	}

	q := strings.ToLower(c.Quality)
	for _, row := range audioPhrases {
		if strings.Contains(q, row.sub) {
			return fmt.Sprintf("%s 🎵 - %s", row.phrase, ext)
		}
	}

	if q != "" {
		return fmt.Sprintf("Audio (%s) 🎵 - %s", c.Quality, ext)
	}
	return fmt.Sprintf("Audio 🎵 - %s", ext)
}
