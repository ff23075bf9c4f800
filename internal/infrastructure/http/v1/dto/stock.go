package dto

import (
	"time"

	"github.com/maxgambino/tandem-inventory/internal/core/apperror"
	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/core/types"
	"github.com/maxgambino/tandem-inventory/internal/domain/stock"
)

// RecordMovementRequest is the request body for appending a ledger movement.
//
// Fields carry no binding tags: missing and malformed fields are rejected by
// the intake validator with machine-readable codes, not generic binding errors.
type RecordMovementRequest struct {
	RestaurantID   string          `json:"restaurantId"`
	ProductID      string          `json:"productId"`
	Type           string          `json:"type"`
	Quantity       *types.Quantity `json:"quantity"`
	FromLocationID *string         `json:"fromLocationId"`
	ToLocationID   *string         `json:"toLocationId"`
	Note           string          `json:"note"`
}

// ToInput converts the request into a candidate movement. Malformed uuids are
// a validation error; absent optional ids stay absent.
//
// restaurantID is the tenant resolved from the request scope; a body
// restaurantId fills it in when the scope carried none and must match it
// otherwise.
func (r *RecordMovementRequest) ToInput(restaurantID id.ID) (stock.Input, error) {
	if r.RestaurantID != "" {
		bodyID, err := id.Parse(r.RestaurantID)
		if err != nil {
			return stock.Input{}, apperror.NewValidation("invalid uuid format").
				WithDetail("field", "restaurantId").
				WithDetail("value", r.RestaurantID)
		}
		if id.IsNil(restaurantID) {
			restaurantID = bodyID
		} else if bodyID != restaurantID {
			return stock.Input{}, apperror.NewValidation("restaurantId does not match request scope").
				WithDetail("field", "restaurantId")
		}
	}

	input := stock.Input{
		RestaurantID: restaurantID,
		Type:         stock.MovementType(r.Type),
		Quantity:     r.Quantity,
		Note:         r.Note,
	}

	if r.ProductID != "" {
		productID, err := id.Parse(r.ProductID)
		if err != nil {
			return stock.Input{}, apperror.NewValidation("invalid uuid format").
				WithDetail("field", "productId").
				WithDetail("value", r.ProductID)
		}
		input.ProductID = productID
	}

	fromID, err := parseOptionalID(r.FromLocationID, "fromLocationId")
	if err != nil {
		return stock.Input{}, err
	}
	input.FromLocationID = fromID

	toID, err := parseOptionalID(r.ToLocationID, "toLocationId")
	if err != nil {
		return stock.Input{}, err
	}
	input.ToLocationID = toID

	return input, nil
}

// MovementResponse is the response body for one ledger movement.
type MovementResponse struct {
	ID             string         `json:"id"`
	ProductID      string         `json:"productId"`
	Type           string         `json:"type"`
	Quantity       types.Quantity `json:"quantity"`
	FromLocationID *string        `json:"fromLocationId,omitempty"`
	ToLocationID   *string        `json:"toLocationId,omitempty"`
	Note           *string        `json:"note,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// FromMovement creates response DTO from a ledger fact.
func FromMovement(m stock.Movement) *MovementResponse {
	return &MovementResponse{
		ID:             m.ID.String(),
		ProductID:      m.ProductID.String(),
		Type:           string(m.Type),
		Quantity:       m.Quantity,
		FromLocationID: formatOptionalID(m.FromLocationID),
		ToLocationID:   formatOptionalID(m.ToLocationID),
		Note:           m.Note,
		CreatedAt:      m.CreatedAt,
	}
}

// FromMovements maps a movement history slice.
func FromMovements(movements []stock.Movement) []*MovementResponse {
	out := make([]*MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, FromMovement(m))
	}
	return out
}

// LocationQuantityResponse is one cell of a stock view row.
type LocationQuantityResponse struct {
	LocationID   string         `json:"locationId"`
	LocationName string         `json:"locationName"`
	Qty          types.Quantity `json:"qty"`
}

// StockItemResponse is one row of the stock view: a product with its quantity
// at every known location, zero-filled.
type StockItemResponse struct {
	ID        string                     `json:"id"`
	Name      string                     `json:"name"`
	SKU       string                     `json:"sku"`
	Unit      string                     `json:"unit"`
	Locations []LocationQuantityResponse `json:"locations"`
	TotalQty  types.Quantity             `json:"totalQty"`
}

// FromItemViews maps the projected stock grid.
func FromItemViews(views []stock.ItemView) []*StockItemResponse {
	out := make([]*StockItemResponse, 0, len(views))
	for _, v := range views {
		cells := make([]LocationQuantityResponse, 0, len(v.Locations))
		for _, cell := range v.Locations {
			cells = append(cells, LocationQuantityResponse{
				LocationID:   cell.LocationID.String(),
				LocationName: cell.LocationName,
				Qty:          cell.Qty,
			})
		}
		out = append(out, &StockItemResponse{
			ID:        v.ID.String(),
			Name:      v.Name,
			SKU:       v.SKU,
			Unit:      v.Unit,
			Locations: cells,
			TotalQty:  v.TotalQty,
		})
	}
	return out
}
