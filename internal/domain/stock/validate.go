package stock

import (
	"github.com/maxgambino/tandem-inventory/internal/core/apperror"
	"github.com/maxgambino/tandem-inventory/internal/core/id"
)

// ValidateInput checks the structural rules for a candidate movement.
// Rules are applied in order, first failure wins, and each failure carries a
// distinct machine-readable code.
//
// Only shape is checked here: whether the referenced product and locations
// actually exist is the catalog layer's concern. This keeps the check pure and
// side-effect free.
func ValidateInput(input Input) error {
	// 1. Required fields.
	if id.IsNil(input.RestaurantID) {
		return apperror.NewMissingTenant()
	}
	if id.IsNil(input.ProductID) {
		return apperror.NewIntake(apperror.CodeMissingField, "productId is required").
			WithDetail("field", "productId")
	}
	if input.Type == "" {
		return apperror.NewIntake(apperror.CodeMissingField, "type is required").
			WithDetail("field", "type")
	}
	if input.Quantity == nil {
		return apperror.NewIntake(apperror.CodeMissingField, "quantity is required").
			WithDetail("field", "quantity")
	}

	// 2. Known movement type.
	if !input.Type.IsValid() {
		return apperror.NewIntake(apperror.CodeInvalidType, "unknown movement type").
			WithDetail("type", string(input.Type))
	}

	// 3. Strictly positive magnitude.
	if !input.Quantity.IsPositive() {
		return apperror.NewIntake(apperror.CodeInvalidQuantity, "quantity must be greater than zero").
			WithDetail("quantity", input.Quantity.String())
	}

	// 4. Per-type location requirements.
	hasFrom := input.FromLocationID != nil && !id.IsNil(*input.FromLocationID)
	hasTo := input.ToLocationID != nil && !id.IsNil(*input.ToLocationID)

	switch input.Type {
	case TypeInbound:
		if !hasTo {
			return apperror.NewIntake(apperror.CodeMissingDestination, "toLocationId is required for IN movements").
				WithDetail("field", "toLocationId")
		}
	case TypeOutbound:
		if !hasFrom {
			return apperror.NewIntake(apperror.CodeMissingSource, "fromLocationId is required for OUT movements").
				WithDetail("field", "fromLocationId")
		}
	case TypeTransfer:
		if !hasFrom || !hasTo {
			return apperror.NewIntake(apperror.CodeMissingEndpoint, "fromLocationId and toLocationId are required for TRANSFER movements")
		}
	case TypeAdjustment:
		if !hasFrom && !hasTo {
			return apperror.NewIntake(apperror.CodeMissingEndpoint, "fromLocationId or toLocationId is required for ADJUSTMENT movements")
		}
	}

	return nil
}
