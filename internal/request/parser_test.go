package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTitle(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		wantItem  string
		wantChar  string
		wantMatch bool
	}{
		{
			name:      "item for character",
			title:     "Fine Plate Vambraces for Koada",
			wantItem:  "Fine Plate Vambraces",
			wantChar:  "Koada",
			wantMatch: true,
		},
		{
			name:      "character needs item",
			title:     "Koada needs Fine Plate Vambraces",
			wantItem:  "Fine Plate Vambraces",
			wantChar:  "Koada",
			wantMatch: true,
		},
		{
			name:      "request prefix with dash",
			title:     "request: Fine Plate Vambraces - Koada",
			wantItem:  "Fine Plate Vambraces",
			wantChar:  "Koada",
			wantMatch: true,
		},
		{
			name:      "request prefix without colon",
			title:     "Request Fine Plate Vambraces - Koada",
			wantItem:  "Fine Plate Vambraces",
			wantChar:  "Koada",
			wantMatch: true,
		},
		{
			name:      "en dash separator",
			title:     "request: Words of Crippling Force – Jonlin",
			wantItem:  "Words of Crippling Force",
			wantChar:  "Jonlin",
			wantMatch: true,
		},
		{
			name:      "case insensitive keyword",
			title:     "Ceramic Lined Pouch FOR Bonkar",
			wantItem:  "Ceramic Lined Pouch",
			wantChar:  "Bonkar",
			wantMatch: true,
		},
		{
			name:      "surrounding whitespace trimmed",
			title:     "  Spell: Gate for Mira  ",
			wantItem:  "Spell: Gate",
			wantChar:  "Mira",
			wantMatch: true,
		},
		{
			name:      "no recognized format",
			title:     "Selling assorted gems, PST",
			wantMatch: false,
		},
		{
			name:      "empty title",
			title:     "",
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, character, ok := ParseTitle(tt.title)
			assert.Equal(t, tt.wantMatch, ok)
			if tt.wantMatch {
				assert.Equal(t, tt.wantItem, item)
				assert.Equal(t, tt.wantChar, character)
			}
		})
	}
}

// A title matching more than one pattern resolves by pattern order, so the
// "for" form wins over the "needs" form.
func TestParseTitlePatternPriority(t *testing.T) {
	item, character, ok := ParseTitle("Velium needs for Thurgadin")

	assert.True(t, ok)
	assert.Equal(t, "Velium needs", item)
	assert.Equal(t, "Thurgadin", character)
}
