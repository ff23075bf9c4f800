package entity

import (
	"context"

	"github.com/maxgambino/tandem-inventory/internal/core/apperror"
	"github.com/maxgambino/tandem-inventory/internal/core/id"
)

// Catalog is the base type for reference data owned by one restaurant:
// products, storage locations, suppliers, attributes.
type Catalog struct {
	BaseEntity

	// RestaurantID scopes the record to its owning restaurant (tenant).
	RestaurantID id.ID `db:"restaurant_id" json:"restaurantId"`

	// Code is a human-readable identifier, unique within a restaurant.
	// Auto-generated from a sequence when not supplied.
	Code string `db:"code" json:"code"`

	// Name is the display name
	Name string `db:"name" json:"name"`
}

// NewCatalog creates a new Catalog with generated ID.
func NewCatalog(restaurantID id.ID, code, name string) Catalog {
	return Catalog{
		BaseEntity:   NewBaseEntity(),
		RestaurantID: restaurantID,
		Code:         code,
		Name:         name,
	}
}

// Validate implements Validatable interface.
func (c *Catalog) Validate(ctx context.Context) error {
	if id.IsNil(c.RestaurantID) {
		return apperror.NewMissingTenant()
	}
	if c.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}

	// Code can be auto-generated, so it's optional at creation.

	return nil
}
