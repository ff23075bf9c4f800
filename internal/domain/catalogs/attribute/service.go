package attribute

import (
	"context"
	"fmt"
	"time"

	"github.com/maxgambino/tandem-inventory/internal/core/apperror"
	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/core/tenant"
	"github.com/maxgambino/tandem-inventory/internal/core/tx"
	"github.com/maxgambino/tandem-inventory/pkg/logger"
)

// Service provides business logic for tenant-defined attributes.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new attribute service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// Create validates and persists a new attribute at the end of the ordering.
func (s *Service) Create(ctx context.Context, attr *Attribute) error {
	if err := attr.Validate(ctx); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		max, err := s.repo.MaxPosition(txCtx, attr.RestaurantID)
		if err != nil {
			return fmt.Errorf("resolve position: %w", err)
		}
		attr.Position = max + 1
		if err := s.repo.Create(txCtx, attr); err != nil {
			return fmt.Errorf("create attribute: %w", err)
		}
		logger.Info(txCtx, "attribute created",
			"attribute_id", attr.ID, "name", attr.Name, "kind", attr.Kind)
		return nil
	})
}

// GetByID fetches an attribute, verifying tenant ownership.
func (s *Service) GetByID(ctx context.Context, restaurantID, attrID id.ID) (*Attribute, error) {
	attr, err := s.repo.GetByID(ctx, attrID)
	if err != nil {
		return nil, err
	}
	if attr.RestaurantID != restaurantID {
		return nil, apperror.NewNotFound("attribute", attrID.String())
	}
	return attr, nil
}

// Update renames an attribute or changes its kind.
func (s *Service) Update(ctx context.Context, attr *Attribute) error {
	if err := attr.Validate(ctx); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return s.repo.Update(txCtx, attr)
	})
}

// Delete removes an attribute and all of its product values.
func (s *Service) Delete(ctx context.Context, restaurantID, attrID id.ID) error {
	if _, err := s.GetByID(ctx, restaurantID, attrID); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, attrID)
	})
}

// List returns the tenant's attributes ordered by position.
func (s *Service) List(ctx context.Context, restaurantID id.ID) ([]*Attribute, error) {
	if id.IsNil(restaurantID) {
		return nil, apperror.NewMissingTenant()
	}
	return s.repo.List(ctx, restaurantID)
}

// Reorder rewrites the tenant's attribute ordering. Every attribute of the
// tenant must appear exactly once in orderedIDs.
func (s *Service) Reorder(ctx context.Context, restaurantID id.ID, orderedIDs []id.ID) error {
	if id.IsNil(restaurantID) {
		return apperror.NewMissingTenant()
	}
	existing, err := s.repo.List(ctx, restaurantID)
	if err != nil {
		return err
	}
	if len(orderedIDs) != len(existing) {
		return apperror.NewValidation("reorder must include every attribute").
			WithDetail("expected", len(existing)).
			WithDetail("got", len(orderedIDs))
	}
	known := make(map[id.ID]struct{}, len(existing))
	for _, a := range existing {
		known[a.ID] = struct{}{}
	}
	for _, attrID := range orderedIDs {
		if _, ok := known[attrID]; !ok {
			return apperror.NewNotFound("attribute", attrID.String())
		}
		delete(known, attrID)
	}
	return s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return s.repo.Reorder(txCtx, restaurantID, orderedIDs)
	})
}

// Assign sets a typed value for (product, attribute), replacing any existing
// one. The value field must match the attribute's kind.
func (s *Service) Assign(ctx context.Context, input AssignInput) (*ProductValue, error) {
	restaurantID, err := tenant.RequireRestaurant(ctx)
	if err != nil {
		return nil, err
	}
	attr, err := s.GetByID(ctx, restaurantID, input.AttributeID)
	if err != nil {
		return nil, err
	}

	value := &ProductValue{
		ID:          id.New(),
		ProductID:   input.ProductID,
		AttributeID: input.AttributeID,
		CreatedAt:   time.Now().UTC(),
	}
	switch attr.Kind {
	case KindNumber:
		if input.ValueNumber == nil {
			return nil, apperror.NewValidation("number value required").
				WithDetail("attribute", attr.Name)
		}
		value.ValueNumber = input.ValueNumber
	case KindDate:
		if input.ValueDate == nil {
			return nil, apperror.NewValidation("date value required").
				WithDetail("attribute", attr.Name)
		}
		value.ValueDate = input.ValueDate
	case KindText, KindSelection, KindBarcode:
		if input.ValueText == nil {
			return nil, apperror.NewValidation("text value required").
				WithDetail("attribute", attr.Name)
		}
		value.ValueText = input.ValueText
	}

	err = s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return s.repo.Assign(txCtx, value)
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Unassign removes a product's value for the given attribute.
func (s *Service) Unassign(ctx context.Context, restaurantID, productID, attrID id.ID) error {
	if _, err := s.GetByID(ctx, restaurantID, attrID); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return s.repo.Unassign(txCtx, productID, attrID)
	})
}

// ListByProduct returns the product's assigned attributes with values,
// ordered by attribute position.
func (s *Service) ListByProduct(ctx context.Context, restaurantID, productID id.ID) ([]*ProductAttribute, error) {
	if id.IsNil(restaurantID) {
		return nil, apperror.NewMissingTenant()
	}
	return s.repo.ListByProduct(ctx, restaurantID, productID)
}
