package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name string
		tags string
		want string
	}{
		{"single keyword", "soccer", "Sports"},
		{"first match wins", "music,athletic", "Sports"},
		{"case insensitive", "MUSIC", "Music"},
		{"substring match", "intramurals", "Sports"},
		{"party before arts keywords", "party", "Social"},
		{"career", "career,networking", "Career"},
		{"tech", "hackathon", "Tech"},
		{"academic", "study group", "Academic"},
		{"arts", "film screening", "Arts"},
		{"no match", "unicycling", "General"},
		{"empty", "", "General"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Derive(tt.tags))
		})
	}
}

func TestDerive_RulesOrderIsSafe(t *testing.T) {
	// No keyword may shadow a later entry via substring containment,
	// otherwise the later rule is unreachable.
	for i, outer := range Rules {
		for _, inner := range Rules[i+1:] {
			if outer.Category == inner.Category {
				continue
			}
			assert.NotContains(t, inner.Keyword, outer.Keyword,
				"rule %q (%s) shadows %q (%s)", outer.Keyword, outer.Category, inner.Keyword, inner.Category)
		}
	}
}
