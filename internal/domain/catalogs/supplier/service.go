package supplier

import (
	"context"
	"fmt"

	"github.com/maxgambino/tandem-inventory/internal/core/numerator"
	"github.com/maxgambino/tandem-inventory/internal/core/tx"
	"github.com/maxgambino/tandem-inventory/internal/domain"
)

// Service provides business logic for the Supplier catalog.
type Service struct {
	*domain.CatalogService[*Supplier]
	repo      Repository
	numerator numerator.Generator
}

// NewService creates a new Supplier service.
func NewService(repo Repository, txManager tx.Manager, gen numerator.Generator) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Supplier]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "supplier",
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
func (s *Service) prepareForCreate(ctx context.Context, sup *Supplier) error {
	if sup.Code != "" {
		return nil
	}
	code, err := s.numerator.NextCode(ctx, numerator.DefaultConfig("SUP"), sup.RestaurantID)
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}
	sup.Code = code
	return nil
}
