package catalog

import (
	"context"
	"errors"
	"fmt"
)

// ErrItemNotFound is returned by Get when no catalog item carries the
// requested ID.
var ErrItemNotFound = errors.New("catalog item not found")

// ItemSource provides the catalog's items. The service treats the source as
// authoritative and applies filtering on top of whatever it returns.
type ItemSource interface {
	ListItems(ctx context.Context) ([]Item, error)
}

// Service is the catalog read surface.
type Service interface {
	// List returns the items passing the filter, preserving source order.
	List(ctx context.Context, filter Filter) ([]Item, error)

	// Get returns the item with the given ID, or ErrItemNotFound.
	Get(ctx context.Context, id string) (Item, error)
}

type service struct {
	source ItemSource
}

var _ Service = (*service)(nil)

// New creates the catalog service on top of the given source.
func New(source ItemSource) *service {
	return &service{source: source}
}

func (s *service) List(ctx context.Context, filter Filter) ([]Item, error) {
	items, err := s.source.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing catalog items: %w", err)
	}

	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if filter.Matches(item) {
			filtered = append(filtered, item)
		}
	}

	return filtered, nil
}

func (s *service) Get(ctx context.Context, id string) (Item, error) {
	items, err := s.source.ListItems(ctx)
	if err != nil {
		return Item{}, fmt.Errorf("listing catalog items: %w", err)
	}

	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}

	return Item{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
}
