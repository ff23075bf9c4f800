package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/maxgambino/tandem-inventory/internal/core/apperror"
	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/core/tenant"
)

// HeaderRestaurantID carries the tenant scope when it is not in the query.
const HeaderRestaurantID = "X-Restaurant-ID"

// Restaurant resolves the tenant scope of the request and stores it in the
// request context. The restaurantId query parameter wins over the header.
//
// A request without a tenant passes through with an empty scope; endpoints
// that need one fail with MISSING_TENANT at the service layer, so the error
// carries the same code whether the tenant was dropped at the HTTP edge or
// deeper in.
func Restaurant() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Query("restaurantId")
		if raw == "" {
			raw = c.GetHeader(HeaderRestaurantID)
		}
		if raw == "" {
			c.Next()
			return
		}

		restaurantID, err := id.Parse(raw)
		if err != nil {
			_ = c.Error(apperror.NewValidation("invalid restaurantId format").
				WithDetail("restaurantId", raw))
			c.Abort()
			return
		}

		ctx := tenant.WithRestaurant(c.Request.Context(), restaurantID)
		c.Request = c.Request.WithContext(ctx)
		c.Set("restaurant_id", restaurantID.String())

		c.Next()
	}
}
