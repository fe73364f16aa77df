package media

// Profile tunes normalization for one platform: which structured array
// keys to probe first and what to call the content when the upstream
// says nothing.
type Profile struct {
	ArrayKeys     []string
	DefaultTitle  string
	DefaultAuthor string
}

// Fallback chains for the metadata fields. Consulted left to right;
// the first present non-empty string wins.
var (
	titleKeys     = []string{"title", "caption", "description"}
	thumbnailKeys = []string{"thumbnail", "cover", "image"}
	authorKeys    = []string{"author", "artist", "channel", "uploader", "username"}
	durationKeys  = []string{"duration"}
)

// Normalize reshapes one raw platform response into the canonical
// result. It returns nil when the input is unusable or when no
// downloadable media is found; metadata without downloads is modeled
// as absence, never as an empty list.
func Normalize(raw map[string]any, p Profile) *Result {
	if len(raw) == 0 {
		return nil
	}

	downloads := Build(Extract(raw, p.ArrayKeys))
	if len(downloads) == 0 {
		return nil
	}

	return &Result{
		Title:     firstPresent(raw, titleKeys, p.DefaultTitle),
		Thumbnail: firstPresent(raw, thumbnailKeys, ""),
		Author:    firstPresent(raw, authorKeys, p.DefaultAuthor),
		Duration:  firstPresent(raw, durationKeys, ""),
		Downloads: downloads,
	}
}

func firstPresent(raw map[string]any, keys []string, def string) string {
	for _, key := range keys {
		if s, ok := raw[key].(string); ok && s != "" {
			return s
		}
	}
	return def
}
