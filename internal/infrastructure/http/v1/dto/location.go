package dto

import (
	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/domain/catalogs/location"
)

// CreateLocationRequest is the request body for creating a storage location.
type CreateLocationRequest struct {
	Code string  `json:"code"`
	Name string  `json:"name" binding:"required"`
	Memo *string `json:"memo"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateLocationRequest) ToEntity(restaurantID id.ID) *location.Location {
	loc := location.New(restaurantID, r.Code, r.Name)
	loc.Memo = r.Memo
	return loc
}

// UpdateLocationRequest is the request body for updating a storage location.
type UpdateLocationRequest struct {
	Code    string  `json:"code"`
	Name    string  `json:"name" binding:"required"`
	Memo    *string `json:"memo"`
	Version int     `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateLocationRequest) ApplyTo(loc *location.Location) {
	if r.Code != "" {
		loc.Code = r.Code
	}
	loc.Name = r.Name
	loc.Memo = r.Memo
	loc.Version = r.Version
}

// LocationResponse is the response body for a storage location.
type LocationResponse struct {
	CatalogResponse
	Memo *string `json:"memo,omitempty"`
}

// FromLocation creates response DTO from domain entity.
func FromLocation(loc *location.Location) *LocationResponse {
	return &LocationResponse{
		CatalogResponse: FromCatalog(loc.Catalog),
		Memo:            loc.Memo,
	}
}
