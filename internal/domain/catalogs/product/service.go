package product

import (
	"context"
	"fmt"

	"github.com/maxgambino/tandem-inventory/internal/core/apperror"
	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/core/numerator"
	"github.com/maxgambino/tandem-inventory/internal/core/tx"
	"github.com/maxgambino/tandem-inventory/internal/domain"
)

// Service provides business logic for the Product catalog.
type Service struct {
	*domain.CatalogService[*Product]
	repo      Repository
	numerator numerator.Generator
}

// NewService creates a new Product service.
func NewService(repo Repository, txManager tx.Manager, gen numerator.Generator) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "product",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      gen,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

// prepareForCreate generates a SKU when absent and enforces its uniqueness.
func (s *Service) prepareForCreate(ctx context.Context, p *Product) error {
	if p.Code == "" {
		code, err := s.numerator.NextCode(ctx, numerator.DefaultConfig("PRD"), p.RestaurantID)
		if err != nil {
			return fmt.Errorf("generate sku: %w", err)
		}
		p.Code = code
		return nil
	}

	exists, err := s.repo.ExistsByCode(ctx, p.RestaurantID, p.Code)
	if err != nil {
		return fmt.Errorf("check sku: %w", err)
	}
	if exists {
		return apperror.NewDuplicate("product", "sku", p.Code)
	}
	return nil
}

// ListActive returns the complete non-deleted catalog of a restaurant.
func (s *Service) ListActive(ctx context.Context, restaurantID id.ID) ([]*Product, error) {
	if id.IsNil(restaurantID) {
		return nil, apperror.NewMissingTenant()
	}
	return s.repo.ListActive(ctx, restaurantID)
}
