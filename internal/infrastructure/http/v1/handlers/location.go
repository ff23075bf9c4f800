package handlers

import (
	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/domain/catalogs/location"
	"github.com/maxgambino/tandem-inventory/internal/infrastructure/http/v1/dto"
)

// LocationHTTPHandler is the catalog handler specialized for locations.
type LocationHTTPHandler = CatalogHandler[
	*location.Location,
	dto.CreateLocationRequest,
	dto.UpdateLocationRequest,
]

// NewLocationHandler wires the location service into the generic catalog handler.
func NewLocationHandler(
	base *BaseHandler,
	service *location.Service,
) *LocationHTTPHandler {

	config := CatalogHandlerConfig[
		*location.Location,
		dto.CreateLocationRequest,
		dto.UpdateLocationRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "location",

		MapCreateDTO: func(req dto.CreateLocationRequest, restaurantID id.ID) (*location.Location, error) {
			return req.ToEntity(restaurantID), nil
		},

		MapUpdateDTO: func(req dto.UpdateLocationRequest, existing *location.Location) (*location.Location, error) {
			req.ApplyTo(existing)
			return existing, nil
		},

		MapToDTO: func(l *location.Location) any {
			return dto.FromLocation(l)
		},
	}

	return NewCatalogHandler(base, config)
}
