package stock

import (
	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/core/types"
)

// ItemKey addresses one cell of the stock grid.
type ItemKey struct {
	ProductID  id.ID
	LocationID id.ID
}

// Aggregate folds a movement history into per-(product, location) on-hand
// quantities. Missing map entries behave as zero.
//
// The fold is addition over fixed-point quantities, so the result is invariant
// under any permutation of the input and never fails: a movement whose needed
// location side is absent simply contributes nothing for that side. Intake
// validation makes such records unreachable for new writes, but histories that
// predate a validation rule must still aggregate.
//
// Callers pre-filter by restaurant; the reducer itself is tenant-agnostic.
func Aggregate(movements []Movement) map[ItemKey]types.Quantity {
	quantities := make(map[ItemKey]types.Quantity)

	add := func(productID id.ID, locationID *id.ID, delta types.Quantity) {
		if locationID == nil || id.IsNil(*locationID) {
			return
		}
		key := ItemKey{ProductID: productID, LocationID: *locationID}
		quantities[key] = quantities[key].Add(delta)
	}

	for _, m := range movements {
		switch m.Type {
		case TypeInbound:
			add(m.ProductID, m.ToLocationID, m.Quantity)
		case TypeOutbound:
			add(m.ProductID, m.FromLocationID, m.Quantity.Neg())
		case TypeAdjustment:
			// Convention: toLocation set means a positive correction,
			// otherwise fromLocation means a negative one. Neither set is a
			// defined no-op, not an error.
			if m.ToLocationID != nil && !id.IsNil(*m.ToLocationID) {
				add(m.ProductID, m.ToLocationID, m.Quantity)
			} else {
				add(m.ProductID, m.FromLocationID, m.Quantity.Neg())
			}
		case TypeTransfer:
			add(m.ProductID, m.FromLocationID, m.Quantity.Neg())
			add(m.ProductID, m.ToLocationID, m.Quantity)
		}
	}

	return quantities
}

// ProductInfo is the slice of the product catalog the projection needs.
type ProductInfo struct {
	ID   id.ID
	Name string
	SKU  string
	Unit string
}

// LocationInfo is the slice of the location catalog the projection needs.
type LocationInfo struct {
	ID   id.ID
	Name string
}

// LocationQuantity is one cell of a stock view row.
type LocationQuantity struct {
	LocationID   id.ID          `json:"locationId"`
	LocationName string         `json:"locationName"`
	Qty          types.Quantity `json:"qty"`
}

// ItemView is one row of the stock view: a product with its quantity at every
// known location.
type ItemView struct {
	ID        id.ID              `json:"id"`
	Name      string             `json:"name"`
	SKU       string             `json:"sku"`
	Unit      string             `json:"unit"`
	Locations []LocationQuantity `json:"locations"`
	TotalQty  types.Quantity     `json:"totalQty"`
}

// Project zips aggregated quantities against the full product × location
// cross-product, in catalog iteration order. Every product gets a row and
// every row gets a cell per location, zero-filled where no movements exist,
// so consumers never special-case products without history.
func Project(products []ProductInfo, locations []LocationInfo, quantities map[ItemKey]types.Quantity) []ItemView {
	views := make([]ItemView, 0, len(products))

	for _, p := range products {
		row := ItemView{
			ID:        p.ID,
			Name:      p.Name,
			SKU:       p.SKU,
			Unit:      p.Unit,
			Locations: make([]LocationQuantity, 0, len(locations)),
		}

		for _, loc := range locations {
			qty := quantities[ItemKey{ProductID: p.ID, LocationID: loc.ID}]
			row.Locations = append(row.Locations, LocationQuantity{
				LocationID:   loc.ID,
				LocationName: loc.Name,
				Qty:          qty,
			})
			row.TotalQty = row.TotalQty.Add(qty)
		}

		views = append(views, row)
	}

	return views
}
