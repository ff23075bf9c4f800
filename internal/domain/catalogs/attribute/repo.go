package attribute

import (
	"context"

	"github.com/maxgambino/tandem-inventory/internal/core/id"
)

// Repository defines persistence for attributes and their product values.
type Repository interface {
	Create(ctx context.Context, attr *Attribute) error
	GetByID(ctx context.Context, attrID id.ID) (*Attribute, error)
	Update(ctx context.Context, attr *Attribute) error
	Delete(ctx context.Context, attrID id.ID) error
	List(ctx context.Context, restaurantID id.ID) ([]*Attribute, error)

	// MaxPosition returns the highest position among the tenant's
	// attributes, or -1 when none exist.
	MaxPosition(ctx context.Context, restaurantID id.ID) (int, error)

	// Reorder rewrites positions to match the given id ordering.
	Reorder(ctx context.Context, restaurantID id.ID, orderedIDs []id.ID) error

	// Assign upserts a value for (product, attribute).
	Assign(ctx context.Context, value *ProductValue) error
	Unassign(ctx context.Context, productID, attrID id.ID) error
	ListByProduct(ctx context.Context, restaurantID, productID id.ID) ([]*ProductAttribute, error)
}
