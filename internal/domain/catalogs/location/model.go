// Package location provides the storage Location catalog: the physical places
// a restaurant keeps stock in (walk-in, freezer, dry storage, bar).
package location

import (
	"context"

	"github.com/maxgambino/tandem-inventory/internal/core/entity"
	"github.com/maxgambino/tandem-inventory/internal/core/id"
)

// Location represents one storage place of a restaurant.
type Location struct {
	entity.Catalog

	// Memo is a free-text annotation ("behind the kitchen", "temp -18C")
	Memo *string `db:"memo" json:"memo,omitempty"`
}

// New creates a new Location with required fields.
func New(restaurantID id.ID, code, name string) *Location {
	return &Location{
		Catalog: entity.NewCatalog(restaurantID, code, name),
	}
}

// Validate implements entity.Validatable interface.
func (l *Location) Validate(ctx context.Context) error {
	return l.Catalog.Validate(ctx)
}
