package catalog_repo

import (
	"context"
	"fmt"

	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/domain/stock"
)

// Compile-time check.
var _ stock.CatalogProvider = (*StockCatalogProvider)(nil)

// StockCatalogProvider adapts the product and location repositories to the
// catalog slice the stock projection needs.
type StockCatalogProvider struct {
	products  *ProductRepo
	locations *LocationRepo
}

// NewStockCatalogProvider creates a new provider on top of the catalog repos.
func NewStockCatalogProvider(products *ProductRepo, locations *LocationRepo) *StockCatalogProvider {
	return &StockCatalogProvider{products: products, locations: locations}
}

// ListProducts returns the restaurant's active products in name order.
func (p *StockCatalogProvider) ListProducts(ctx context.Context, restaurantID id.ID) ([]stock.ProductInfo, error) {
	products, err := p.products.ListActive(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	infos := make([]stock.ProductInfo, 0, len(products))
	for _, prod := range products {
		infos = append(infos, stock.ProductInfo{
			ID:   prod.ID,
			Name: prod.Name,
			SKU:  prod.SKU(),
			Unit: prod.UnitOrEmpty(),
		})
	}

	return infos, nil
}

// ListLocations returns the restaurant's active locations in name order.
func (p *StockCatalogProvider) ListLocations(ctx context.Context, restaurantID id.ID) ([]stock.LocationInfo, error) {
	locations, err := p.locations.ListActive(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}

	infos := make([]stock.LocationInfo, 0, len(locations))
	for _, loc := range locations {
		infos = append(infos, stock.LocationInfo{
			ID:   loc.ID,
			Name: loc.Name,
		})
	}

	return infos, nil
}
