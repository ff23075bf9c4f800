// Package supplier provides the Supplier catalog: the vendors a restaurant
// orders stock from.
package supplier

import (
	"context"
	"regexp"

	"github.com/maxgambino/tandem-inventory/internal/core/apperror"
	"github.com/maxgambino/tandem-inventory/internal/core/entity"
	"github.com/maxgambino/tandem-inventory/internal/core/id"
)

// Supplier represents one vendor of a restaurant.
type Supplier struct {
	entity.Catalog

	// Email is the ordering contact address
	Email *string `db:"email" json:"email,omitempty"`

	// Phone is the ordering contact number
	Phone *string `db:"phone" json:"phone,omitempty"`
}

// New creates a new Supplier with required fields.
func New(restaurantID id.ID, code, name string) *Supplier {
	return &Supplier{
		Catalog: entity.NewCatalog(restaurantID, code, name),
	}
}

// Validate implements entity.Validatable interface.
func (s *Supplier) Validate(ctx context.Context) error {
	if err := s.Catalog.Validate(ctx); err != nil {
		return err
	}

	if s.Email != nil && *s.Email != "" && !isValidEmail(*s.Email) {
		return apperror.NewValidation("invalid email address").
			WithDetail("field", "email").
			WithDetail("value", *s.Email)
	}

	return nil
}

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	return emailRe.MatchString(email)
}
