package media

import "strings"

// Tier is a discrete quality rank used for sorting and HD classification.
// Higher is better; TierUnknown sorts last.
type Tier int

const (
	TierUnknown Tier = 0
	Tier144p    Tier = 3
	Tier240p    Tier = 4
	Tier360p    Tier = 5
	Tier480p    Tier = 6
	Tier720p    Tier = 7
	Tier1080p   Tier = 8
	Tier1440p   Tier = 9
	Tier4K      Tier = 10
)

// tierTable is scanned in order, highest resolution first, so that a
// label like "1440x2160" resolves to the larger match.
var tierTable = []struct {
	subs []string
	tier Tier
}{
	{[]string{"2160", "4k"}, Tier4K},
	{[]string{"1440"}, Tier1440p},
	{[]string{"1080"}, Tier1080p},
	{[]string{"720"}, Tier720p},
	{[]string{"480"}, Tier480p},
	{[]string{"360"}, Tier360p},
	{[]string{"240"}, Tier240p},
	{[]string{"144"}, Tier144p},
}

// Class is the outcome of classifying a raw quality string
type Class struct {
	Tier  Tier
	HD    bool
	Label string
}

// Classify maps a raw quality/label string to a tier, an HD flag and a
// display label. It never fails; unrecognized input yields TierUnknown
// and the input echoed back (or "Standard" when empty).
func Classify(raw string) Class {
	c := Class{Tier: TierUnknown, Label: displayLabel(raw)}
	q := strings.ToLower(raw)
	if q == "" {
		return c
	}

	for _, row := range tierTable {
		for _, sub := range row.subs {
			if strings.Contains(q, sub) {
				c.Tier = row.tier
				c.HD = row.tier >= Tier720p
				return c
			}
		}
	}

	// No numeric tier, but the upstream still calls it HD
	if strings.Contains(q, "hd") || strings.Contains(q, "high") {
		c.HD = true
	}
	return c
}

func displayLabel(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "standard":
		return "Standard"
	default:
		return raw
	}
}
