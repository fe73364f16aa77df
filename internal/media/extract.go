package media

import "strings"

// DefaultArrayKeys is the order in which structured media arrays are
// probed when a platform profile does not override it.
var DefaultArrayKeys = []string{"medias", "formats", "downloadLinks", "links", "urls", "videos", "qualities"}

// directFieldKeys are probed one by one after the structured arrays.
// Key order decides emission order, which matters for tie-breaking.
var directFieldKeys = []string{"url", "video_url", "videoUrl", "download_url", "downloadUrl", "hd", "sd", "hdUrl", "sdUrl"}

// imageArrayKeys hold lists of still images; the singular forms are
// only consulted when none of the arrays yield anything.
var (
	imageArrayKeys    = []string{"images", "photos", "pictures"}
	imageSingularKeys = []string{"image", "picture"}
)

// Extract walks a raw platform response through an ordered list of
// shape probes and returns every usable media candidate, deduplicated
// by URL. It never fails: values of unexpected shape are skipped
// field by field, and an empty result is a valid outcome.
func Extract(raw map[string]any, arrayKeys []string) []Candidate {
	if len(arrayKeys) == 0 {
		arrayKeys = DefaultArrayKeys
	}

	st := newExtractState()
	extractArrays(raw, arrayKeys, st)
	extractDirectFields(raw, st)
	extractImages(raw, st)
	extractAudio(raw, st)
	return st.out
}

type extractState struct {
	seen map[string]bool
	out  []Candidate
}

func newExtractState() *extractState {
	return &extractState{seen: make(map[string]bool)}
}

// add accepts a candidate unless its URL is unusable or already taken.
// First occurrence wins, regardless of which probe produced it.
func (s *extractState) add(c Candidate) {
	u, ok := usableURL(c.URL)
	if !ok || s.seen[u] {
		return
	}
	c.URL = u
	s.seen[u] = true
	s.out = append(s.out, c)
}

// extractArrays consumes the first non-empty structured array among
// the profile's keys. Only one array is read; the remaining keys are
// mirrors of the same links on every upstream observed so far.
func extractArrays(raw map[string]any, keys []string, st *extractState) {
	for _, key := range keys {
		arr, ok := raw[key].([]any)
		if !ok || len(arr) == 0 {
			continue
		}
		matched := false
		for _, entry := range arr {
			c, ok := candidateFromEntry(entry)
			if !ok {
				continue
			}
			matched = true
			st.add(c)
		}
		if matched {
			return
		}
	}
}

func candidateFromEntry(entry any) (Candidate, bool) {
	switch v := entry.(type) {
	case string:
		if _, ok := usableURL(v); !ok {
			return Candidate{}, false
		}
		return Candidate{URL: v, Quality: "standard"}, true
	case map[string]any:
		u, ok := firstUsableURL(v, "url", "link", "download_url", "downloadUrl")
		if !ok {
			return Candidate{}, false
		}
		c := Candidate{
			URL:     u,
			Quality: stringField(v, "quality", "label", "resolution"),
			Ext:     stringField(v, "extension", "ext", "format"),
			Size:    stringField(v, "size", "formattedSize", "filesize"),
			Kind:    kindFromEntry(v),
		}
		if c.Quality == "" {
			c.Quality = "standard"
		}
		if wm, ok := watermarkFlag(v); ok {
			c.NoWatermark = &wm
		}
		return c, true
	default:
		return Candidate{}, false
	}
}

func kindFromEntry(v map[string]any) Kind {
	t := strings.ToLower(stringField(v, "type", "kind", "mimeType", "mime_type"))
	ext := strings.ToLower(stringField(v, "extension", "ext", "format"))
	switch {
	case strings.Contains(t, "audio"), ext == "mp3", ext == "m4a", ext == "aac":
		return KindAudio
	case strings.Contains(t, "image"), strings.Contains(t, "photo"):
		return KindImage
	default:
		return KindVideo
	}
}

func watermarkFlag(v map[string]any) (noWatermark bool, ok bool) {
	if b, o := v["no_watermark"].(bool); o {
		return b, true
	}
	if b, o := v["noWatermark"].(bool); o {
		return b, true
	}
	if b, o := v["watermark"].(bool); o {
		return !b, true
	}
	return false, false
}

// extractDirectFields emits one candidate per known top-level URL key.
// hd/sd keys carry their own quality; everything else is standard.
func extractDirectFields(raw map[string]any, st *extractState) {
	for _, key := range directFieldKeys {
		u, ok := usableURL(raw[key])
		if !ok {
			continue
		}
		st.add(Candidate{URL: u, Quality: directFieldQuality(key), Kind: KindVideo})
	}
}

func directFieldQuality(key string) string {
	switch key {
	case "hd", "hdUrl":
		return "HD"
	case "sd", "sdUrl":
		return "SD"
	default:
		return ""
	}
}

func extractImages(raw map[string]any, st *extractState) {
	found := false
	for _, key := range imageArrayKeys {
		arr, ok := raw[key].([]any)
		if !ok {
			continue
		}
		for _, entry := range arr {
			if u, ok := imageURL(entry); ok {
				found = true
				st.add(Candidate{URL: u, Kind: KindImage})
			}
		}
	}
	if found {
		return
	}
	for _, key := range imageSingularKeys {
		if u, ok := usableURL(raw[key]); ok {
			st.add(Candidate{URL: u, Kind: KindImage})
			return
		}
	}
}

func imageURL(entry any) (string, bool) {
	switch v := entry.(type) {
	case string:
		return usableURL(v)
	case map[string]any:
		return firstUsableURL(v, "url", "src", "link")
	default:
		return "", false
	}
}

func extractAudio(raw map[string]any, st *extractState) {
	switch v := raw["audio"].(type) {
	case string:
		if u, ok := usableURL(v); ok {
			st.add(Candidate{URL: u, Kind: KindAudio})
		}
	case map[string]any:
		if u, ok := firstUsableURL(v, "url", "link"); ok {
			st.add(Candidate{
				URL:     u,
				Quality: stringField(v, "quality"),
				Ext:     stringField(v, "extension", "ext"),
				Kind:    KindAudio,
			})
		}
	}
}

func firstUsableURL(v map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		if u, ok := usableURL(v[key]); ok {
			return u, true
		}
	}
	return "", false
}

func stringField(v map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := v[key].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
