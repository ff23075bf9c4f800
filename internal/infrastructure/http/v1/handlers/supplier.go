package handlers

import (
	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/domain/catalogs/supplier"
	"github.com/maxgambino/tandem-inventory/internal/infrastructure/http/v1/dto"
)

// SupplierHTTPHandler is the catalog handler specialized for suppliers.
type SupplierHTTPHandler = CatalogHandler[
	*supplier.Supplier,
	dto.CreateSupplierRequest,
	dto.UpdateSupplierRequest,
]

// NewSupplierHandler wires the supplier service into the generic catalog handler.
func NewSupplierHandler(
	base *BaseHandler,
	service *supplier.Service,
) *SupplierHTTPHandler {

	config := CatalogHandlerConfig[
		*supplier.Supplier,
		dto.CreateSupplierRequest,
		dto.UpdateSupplierRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "supplier",

		MapCreateDTO: func(req dto.CreateSupplierRequest, restaurantID id.ID) (*supplier.Supplier, error) {
			return req.ToEntity(restaurantID), nil
		},

		MapUpdateDTO: func(req dto.UpdateSupplierRequest, existing *supplier.Supplier) (*supplier.Supplier, error) {
			req.ApplyTo(existing)
			return existing, nil
		},

		MapToDTO: func(sup *supplier.Supplier) any {
			return dto.FromSupplier(sup)
		},
	}

	return NewCatalogHandler(base, config)
}
