// Package catalogmem provides the in-memory catalog source. The release
// listing is small and fixed per deployment, so items are validated once at
// construction and served from memory after that.
package catalogmem

import (
	"context"
	"fmt"

	"github.com/voidbay/paygate/internal/catalog"
	"github.com/voidbay/paygate/internal/pkg/validator"
)

var _ catalog.ItemSource = (*Source)(nil)

// Source serves a fixed set of catalog items.
type Source struct {
	items []catalog.Item
}

// NewSource validates the given items and creates a source serving them.
func NewSource(items []catalog.Item) (*Source, error) {
	for i, item := range items {
		if err := validator.Validate(item); err != nil {
			return nil, fmt.Errorf("catalog item %d (%q): %w", i, item.ID, err)
		}
	}

	return &Source{items: items}, nil
}

// ListItems returns a copy of the catalog so callers cannot mutate the source.
func (s *Source) ListItems(ctx context.Context) ([]catalog.Item, error) {
	items := make([]catalog.Item, len(s.items))
	copy(items, s.items)
	return items, nil
}
