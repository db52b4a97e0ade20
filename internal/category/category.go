package category

import "strings"

// All is the selector sentinel that keeps every category.
const All = "All"

// Default is assigned when no keyword matches the tags string.
const Default = "General"

// Rule maps a tag keyword to a display category.
type Rule struct {
	Keyword  string
	Category string
}

// Rules is the ordered keyword table used to derive a single display
// category from an event's comma-joined tags string. Matching is a
// case-insensitive substring check and the first hit wins, so the
// order of entries is part of the data. Keep keywords specific enough
// not to shadow later entries ("party" must come before any keyword it
// contains, for example).
var Rules = []Rule{
	{Keyword: "soccer", Category: "Sports"},
	{Keyword: "athletic", Category: "Sports"},
	{Keyword: "basketball", Category: "Sports"},
	{Keyword: "volleyball", Category: "Sports"},
	{Keyword: "sport", Category: "Sports"},
	{Keyword: "intramural", Category: "Sports"},
	{Keyword: "music", Category: "Music"},
	{Keyword: "concert", Category: "Music"},
	{Keyword: "band", Category: "Music"},
	{Keyword: "acapella", Category: "Music"},
	{Keyword: "party", Category: "Social"},
	{Keyword: "theater", Category: "Arts"},
	{Keyword: "theatre", Category: "Arts"},
	{Keyword: "film", Category: "Arts"},
	{Keyword: "paint", Category: "Arts"},
	{Keyword: "gallery", Category: "Arts"},
	{Keyword: "career", Category: "Career"},
	{Keyword: "job", Category: "Career"},
	{Keyword: "resume", Category: "Career"},
	{Keyword: "hiring", Category: "Career"},
	{Keyword: "network", Category: "Career"},
	{Keyword: "hackathon", Category: "Tech"},
	{Keyword: "coding", Category: "Tech"},
	{Keyword: "tech", Category: "Tech"},
	{Keyword: "robotics", Category: "Tech"},
	{Keyword: "lecture", Category: "Academic"},
	{Keyword: "seminar", Category: "Academic"},
	{Keyword: "workshop", Category: "Academic"},
	{Keyword: "study", Category: "Academic"},
	{Keyword: "research", Category: "Academic"},
	{Keyword: "club", Category: "Social"},
	{Keyword: "social", Category: "Social"},
	{Keyword: "food", Category: "Social"},
	{Keyword: "movie", Category: "Social"},
}

// Derive returns the display category for a comma-joined tags string.
func Derive(tags string) string {
	t := strings.ToLower(tags)
	for _, r := range Rules {
		if strings.Contains(t, r.Keyword) {
			return r.Category
		}
	}
	return Default
}
