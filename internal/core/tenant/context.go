// Package tenant carries the restaurant scope of a request.
//
// The platform is shared-schema multi-tenant: every tenant-owned table has a
// restaurant_id column, and every tenant-scoped query takes the restaurant ID
// as an explicit argument. This package only transports the resolved ID from
// the HTTP middleware down to handlers; repositories never read it implicitly.
package tenant

import (
	"context"

	"github.com/maxgambino/tandem-inventory/internal/core/apperror"
	"github.com/maxgambino/tandem-inventory/internal/core/id"
)

type restaurantKey struct{}

// WithRestaurant adds the resolved restaurant ID to the context.
func WithRestaurant(ctx context.Context, restaurantID id.ID) context.Context {
	return context.WithValue(ctx, restaurantKey{}, restaurantID)
}

// RestaurantID returns the restaurant ID from context, or Nil if absent.
func RestaurantID(ctx context.Context) id.ID {
	if v, ok := ctx.Value(restaurantKey{}).(id.ID); ok {
		return v
	}
	return id.Nil()
}

// RequireRestaurant returns the restaurant ID from context or a
// MISSING_TENANT error when the request carries no tenant scope.
func RequireRestaurant(ctx context.Context) (id.ID, error) {
	restaurantID := RestaurantID(ctx)
	if id.IsNil(restaurantID) {
		return id.Nil(), apperror.NewMissingTenant()
	}
	return restaurantID, nil
}
