package stock

import (
	"context"
	"fmt"

	"github.com/maxgambino/tandem-inventory/internal/core/apperror"
	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/core/tx"
	"github.com/maxgambino/tandem-inventory/pkg/logger"
)

// Service orchestrates the ledger and the catalog into the stock read model
// and guards the intake path.
type Service struct {
	repo      Repository
	catalog   CatalogProvider
	txManager tx.Manager
}

// NewService creates a new stock service.
func NewService(repo Repository, catalog CatalogProvider, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		catalog:   catalog,
		txManager: txManager,
	}
}

// StockView computes the dense product × location grid for one restaurant.
// Any collaborator failure propagates unmodified; a partial or empty grid is
// never returned on error.
func (s *Service) StockView(ctx context.Context, restaurantID id.ID) ([]ItemView, error) {
	if id.IsNil(restaurantID) {
		return nil, apperror.NewMissingTenant()
	}

	products, err := s.catalog.ListProducts(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	locations, err := s.catalog.ListLocations(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}

	movements, err := s.repo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}

	return Project(products, locations, Aggregate(movements)), nil
}

// RecordMovement validates a candidate movement and appends it to the ledger.
// Rejected input leaves the store untouched; there is no partial success.
func (s *Service) RecordMovement(ctx context.Context, input Input) (Movement, error) {
	if err := ValidateInput(input); err != nil {
		return Movement{}, err
	}

	movement := NewMovement(input)

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Append(ctx, movement); err != nil {
			return fmt.Errorf("append movement: %w", err)
		}
		return nil
	})
	if err != nil {
		return Movement{}, err
	}

	logger.Info(ctx, "recorded stock movement",
		"movement_id", movement.ID,
		"product_id", movement.ProductID,
		"type", movement.Type,
		"quantity", movement.Quantity,
	)

	return movement, nil
}

// MovementHistory returns the ledger entries for one product, newest first.
func (s *Service) MovementHistory(ctx context.Context, restaurantID, productID id.ID, filter HistoryFilter) ([]Movement, error) {
	if id.IsNil(restaurantID) {
		return nil, apperror.NewMissingTenant()
	}
	if id.IsNil(productID) {
		return nil, apperror.NewValidation("productId is required").
			WithDetail("field", "productId")
	}
	return s.repo.ListByProduct(ctx, restaurantID, productID, filter)
}
