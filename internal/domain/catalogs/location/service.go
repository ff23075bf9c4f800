package location

import (
	"context"
	"fmt"

	"github.com/maxgambino/tandem-inventory/internal/core/apperror"
	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/core/numerator"
	"github.com/maxgambino/tandem-inventory/internal/core/tx"
	"github.com/maxgambino/tandem-inventory/internal/domain"
)

// Service provides business logic for the Location catalog.
type Service struct {
	*domain.CatalogService[*Location]
	repo      Repository
	numerator numerator.Generator
}

// NewService creates a new Location service.
func NewService(repo Repository, txManager tx.Manager, gen numerator.Generator) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Location]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "location",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      gen,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

// prepareForCreate generates a code when absent.
func (s *Service) prepareForCreate(ctx context.Context, l *Location) error {
	if l.Code != "" {
		return nil
	}
	code, err := s.numerator.NextCode(ctx, numerator.DefaultConfig("LOC"), l.RestaurantID)
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}
	l.Code = code
	return nil
}

// ListActive returns all non-deleted locations of a restaurant.
func (s *Service) ListActive(ctx context.Context, restaurantID id.ID) ([]*Location, error) {
	if id.IsNil(restaurantID) {
		return nil, apperror.NewMissingTenant()
	}
	return s.repo.ListActive(ctx, restaurantID)
}
