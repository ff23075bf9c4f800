package dto

import (
	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/domain/catalogs/supplier"
)

// CreateSupplierRequest is the request body for creating a supplier.
type CreateSupplierRequest struct {
	Code  string  `json:"code"`
	Name  string  `json:"name" binding:"required"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateSupplierRequest) ToEntity(restaurantID id.ID) *supplier.Supplier {
	sup := supplier.New(restaurantID, r.Code, r.Name)
	sup.Email = r.Email
	sup.Phone = r.Phone
	return sup
}

// UpdateSupplierRequest is the request body for updating a supplier.
type UpdateSupplierRequest struct {
	Code    string  `json:"code"`
	Name    string  `json:"name" binding:"required"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Version int     `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateSupplierRequest) ApplyTo(sup *supplier.Supplier) {
	if r.Code != "" {
		sup.Code = r.Code
	}
	sup.Name = r.Name
	sup.Email = r.Email
	sup.Phone = r.Phone
	sup.Version = r.Version
}

// SupplierResponse is the response body for a supplier.
type SupplierResponse struct {
	CatalogResponse
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// FromSupplier creates response DTO from domain entity.
func FromSupplier(sup *supplier.Supplier) *SupplierResponse {
	return &SupplierResponse{
		CatalogResponse: FromCatalog(sup.Catalog),
		Email:           sup.Email,
		Phone:           sup.Phone,
	}
}
