package catalog

import "strings"

// Filter narrows a listing. The zero value matches every item. Category and
// Search combine with AND when both are set.
type Filter struct {
	// Category matches items whose category equals this value. The plural
	// browse alias GAMES is accepted for GAME.
	Category string

	// Search matches items whose title contains this text, case-insensitively.
	Search string
}

// categoryAliases maps browse-view labels onto the category values items
// actually carry.
var categoryAliases = map[string]string{
	"GAMES": CategoryGame,
}

func (f Filter) normalizedCategory() string {
	if alias, ok := categoryAliases[f.Category]; ok {
		return alias
	}
	return f.Category
}

// Matches reports whether the item passes the filter.
func (f Filter) Matches(item Item) bool {
	if category := f.normalizedCategory(); category != "" && item.Category != category {
		return false
	}

	if f.Search != "" && !strings.Contains(strings.ToLower(item.Title), strings.ToLower(f.Search)) {
		return false
	}

	return true
}
