package location

import (
	"context"

	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/domain"
)

// Repository defines the interface for Location persistence.
type Repository interface {
	domain.CatalogRepository[*Location]

	// ListActive returns all non-deleted locations of a restaurant in name
	// order, without pagination. Used by the stock view projection.
	ListActive(ctx context.Context, restaurantID id.ID) ([]*Location, error)
}
