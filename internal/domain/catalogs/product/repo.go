package product

import (
	"context"

	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/domain"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	domain.CatalogRepository[*Product]

	// ListActive returns all non-deleted products of a restaurant in name
	// order, without pagination. Used by the stock view projection, which
	// needs the complete catalog.
	ListActive(ctx context.Context, restaurantID id.ID) ([]*Product, error)
}
