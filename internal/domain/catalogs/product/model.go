// Package product provides the Product catalog: the items a restaurant keeps
// in stock. The catalog Code doubles as the product SKU.
package product

import (
	"context"

	"github.com/maxgambino/tandem-inventory/internal/core/entity"
	"github.com/maxgambino/tandem-inventory/internal/core/id"
)

// Product represents one stocked item of a restaurant.
type Product struct {
	entity.Catalog

	// Barcode is the item barcode (EAN-13, etc.)
	Barcode *string `db:"barcode" json:"barcode,omitempty"`

	// Unit is the unit of measure the quantity is counted in ("kg", "L", "pc")
	Unit *string `db:"unit" json:"unit,omitempty"`

	// DefaultLocationID is the storage location the item usually lives at
	DefaultLocationID *id.ID `db:"default_location_id" json:"defaultLocationId,omitempty"`

	// SupplierID is the preferred supplier for restocking
	SupplierID *id.ID `db:"supplier_id" json:"supplierId,omitempty"`
}

// New creates a new Product with required fields. Code (SKU) may be empty;
// the service generates one on create.
func New(restaurantID id.ID, sku, name string) *Product {
	return &Product{
		Catalog: entity.NewCatalog(restaurantID, sku, name),
	}
}

// SKU returns the product SKU (the catalog code).
func (p *Product) SKU() string {
	return p.Code
}

// UnitOrEmpty returns the unit of measure or "".
func (p *Product) UnitOrEmpty() string {
	if p.Unit == nil {
		return ""
	}
	return *p.Unit
}

// Validate implements entity.Validatable interface.
func (p *Product) Validate(ctx context.Context) error {
	return p.Catalog.Validate(ctx)
}
