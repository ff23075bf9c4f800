package handlers

import (
	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/domain/catalogs/product"
	"github.com/maxgambino/tandem-inventory/internal/infrastructure/http/v1/dto"
)

// ProductHTTPHandler is the catalog handler specialized for products.
type ProductHTTPHandler = CatalogHandler[
	*product.Product,
	dto.CreateProductRequest,
	dto.UpdateProductRequest,
]

// NewProductHandler wires the product service into the generic catalog handler.
func NewProductHandler(
	base *BaseHandler,
	service *product.Service,
) *ProductHTTPHandler {

	config := CatalogHandlerConfig[
		*product.Product,
		dto.CreateProductRequest,
		dto.UpdateProductRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "product",

		MapCreateDTO: func(req dto.CreateProductRequest, restaurantID id.ID) (*product.Product, error) {
			return req.ToEntity(restaurantID)
		},

		MapUpdateDTO: func(req dto.UpdateProductRequest, existing *product.Product) (*product.Product, error) {
			if err := req.ApplyTo(existing); err != nil {
				return nil, err
			}
			return existing, nil
		},

		MapToDTO: func(p *product.Product) any {
			return dto.FromProduct(p)
		},
	}

	return NewCatalogHandler(base, config)
}
