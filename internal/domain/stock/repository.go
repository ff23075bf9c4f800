package stock

import (
	"context"

	"github.com/maxgambino/tandem-inventory/internal/core/id"
)

// Repository defines persistence for the movement ledger. The store is
// append-only: there is no update or delete operation.
type Repository interface {
	// Append inserts one movement. The movement must already carry its
	// identity and timestamp (see NewMovement).
	Append(ctx context.Context, movement Movement) error

	// ListByRestaurant returns the full movement history for one restaurant.
	ListByRestaurant(ctx context.Context, restaurantID id.ID) ([]Movement, error)

	// ListByProduct returns movement history for one product, newest first.
	ListByProduct(ctx context.Context, restaurantID, productID id.ID, filter HistoryFilter) ([]Movement, error)
}

// HistoryFilter bounds movement history queries.
type HistoryFilter struct {
	LocationID *id.ID
	Type       *MovementType
	Limit      int
	Offset     int
}

// CatalogProvider supplies the known products and locations of a restaurant
// for the stock view projection.
type CatalogProvider interface {
	ListProducts(ctx context.Context, restaurantID id.ID) ([]ProductInfo, error)
	ListLocations(ctx context.Context, restaurantID id.ID) ([]LocationInfo, error)
}
