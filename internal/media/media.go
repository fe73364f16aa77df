package media

import "strings"

// Kind is the category of a media candidate
type Kind int

const (
	KindVideo Kind = iota
	KindAudio
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindAudio:
		return "audio"
	case KindImage:
		return "image"
	default:
		return "video"
	}
}

// Candidate is a provisionally extracted media reference before it is
// confirmed usable and formatted
type Candidate struct {
	URL         string
	Quality     string // raw quality string as found, "" if absent
	Ext         string // raw extension as found, "" if absent
	Size        string // human-readable size if the upstream provides one
	Kind        Kind
	NoWatermark *bool // nil when the upstream says nothing about watermarks
}

// Download is the canonical user-facing unit: a human-readable label
// plus a direct fetch URL
type Download struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Result is the normalized shape returned for every platform
type Result struct {
	Title     string     `json:"title"`
	Thumbnail string     `json:"thumbnail"`
	Author    string     `json:"author"`
	Duration  string     `json:"duration"`
	Downloads []Download `json:"downloads"`
}

// usableURL reports whether a raw value is a fetchable URL.
// Everything that is not an http(s)-prefixed string is rejected.
func usableURL(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "http") {
		return "", false
	}
	return s, true
}
