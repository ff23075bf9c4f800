package dto

import (
	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/domain/catalogs/product"
)

// --- Request DTOs ---

// CreateProductRequest is the request body for creating a product.
// SKU is optional; the service assigns a sequential one when absent.
type CreateProductRequest struct {
	SKU               string  `json:"sku"`
	Name              string  `json:"name" binding:"required"`
	Barcode           *string `json:"barcode"`
	Unit              *string `json:"unit"`
	DefaultLocationID *string `json:"defaultLocationId"`
	SupplierID        *string `json:"supplierId"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateProductRequest) ToEntity(restaurantID id.ID) (*product.Product, error) {
	p := product.New(restaurantID, r.SKU, r.Name)
	p.Barcode = r.Barcode
	p.Unit = r.Unit

	var err error
	if p.DefaultLocationID, err = parseOptionalID(r.DefaultLocationID, "defaultLocationId"); err != nil {
		return nil, err
	}
	if p.SupplierID, err = parseOptionalID(r.SupplierID, "supplierId"); err != nil {
		return nil, err
	}

	return p, nil
}

// UpdateProductRequest is the request body for updating a product.
type UpdateProductRequest struct {
	SKU               string  `json:"sku"`
	Name              string  `json:"name" binding:"required"`
	Barcode           *string `json:"barcode"`
	Unit              *string `json:"unit"`
	DefaultLocationID *string `json:"defaultLocationId"`
	SupplierID        *string `json:"supplierId"`
	Version           int     `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateProductRequest) ApplyTo(p *product.Product) error {
	if r.SKU != "" {
		p.Code = r.SKU
	}
	p.Name = r.Name
	p.Barcode = r.Barcode
	p.Unit = r.Unit
	p.Version = r.Version

	var err error
	if p.DefaultLocationID, err = parseOptionalID(r.DefaultLocationID, "defaultLocationId"); err != nil {
		return err
	}
	if p.SupplierID, err = parseOptionalID(r.SupplierID, "supplierId"); err != nil {
		return err
	}

	return nil
}

// --- Response DTOs ---

// ProductResponse is the response body for a product.
type ProductResponse struct {
	CatalogResponse
	SKU               string  `json:"sku"`
	Barcode           *string `json:"barcode,omitempty"`
	Unit              *string `json:"unit,omitempty"`
	DefaultLocationID *string `json:"defaultLocationId,omitempty"`
	SupplierID        *string `json:"supplierId,omitempty"`
}

// FromProduct creates response DTO from domain entity.
func FromProduct(p *product.Product) *ProductResponse {
	return &ProductResponse{
		CatalogResponse:   FromCatalog(p.Catalog),
		SKU:               p.SKU(),
		Barcode:           p.Barcode,
		Unit:              p.Unit,
		DefaultLocationID: formatOptionalID(p.DefaultLocationID),
		SupplierID:        formatOptionalID(p.SupplierID),
	}
}
