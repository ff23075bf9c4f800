package attribute

import (
	"context"
	"time"

	"github.com/maxgambino/tandem-inventory/internal/core/apperror"
	"github.com/maxgambino/tandem-inventory/internal/core/entity"
	"github.com/maxgambino/tandem-inventory/internal/core/id"
)

// Kind enumerates the supported attribute value kinds.
type Kind string

const (
	KindText      Kind = "text"
	KindNumber    Kind = "number"
	KindDate      Kind = "date"
	KindSelection Kind = "selection"
	KindBarcode   Kind = "barcode"
)

// IsValid reports whether the kind is one of the known values.
func (k Kind) IsValid() bool {
	switch k {
	case KindText, KindNumber, KindDate, KindSelection, KindBarcode:
		return true
	}
	return false
}

// Attribute is a tenant-defined custom field that can be assigned to products.
type Attribute struct {
	entity.BaseEntity
	RestaurantID id.ID  `db:"restaurant_id" json:"restaurantId"`
	Name         string `db:"name" json:"name"`
	Kind         Kind   `db:"kind" json:"kind"`
	Position     int    `db:"position" json:"position"`
}

// New creates an attribute appended to the end of the tenant's ordering.
// The caller assigns the final position on create.
func New(restaurantID id.ID, name string, kind Kind) *Attribute {
	return &Attribute{
		BaseEntity:   entity.NewBaseEntity(),
		RestaurantID: restaurantID,
		Name:         name,
		Kind:         kind,
	}
}

// Validate checks attribute invariants.
func (a *Attribute) Validate(ctx context.Context) error {
	if id.IsNil(a.RestaurantID) {
		return apperror.NewMissingTenant()
	}
	if a.Name == "" {
		return apperror.NewValidation("attribute name is required")
	}
	if !a.Kind.IsValid() {
		return apperror.NewValidation("unknown attribute kind").
			WithDetail("kind", string(a.Kind))
	}
	return nil
}

// ProductValue is a typed attribute value assigned to a product. Exactly one
// of the value fields is populated, matching the attribute's kind.
type ProductValue struct {
	ID          id.ID      `db:"id" json:"id"`
	ProductID   id.ID      `db:"product_id" json:"productId"`
	AttributeID id.ID      `db:"attribute_id" json:"attributeId"`
	ValueText   *string    `db:"value_text" json:"valueText,omitempty"`
	ValueNumber *float64   `db:"value_number" json:"valueNumber,omitempty"`
	ValueDate   *time.Time `db:"value_date" json:"valueDate,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
}

// ProductAttribute is an attribute joined with its value for one product.
type ProductAttribute struct {
	Attribute
	Value ProductValue `json:"value"`
}

// AssignInput carries a raw value to assign to a product. The service coerces
// it into the typed column matching the attribute kind.
type AssignInput struct {
	ProductID   id.ID
	AttributeID id.ID
	ValueText   *string
	ValueNumber *float64
	ValueDate   *time.Time
}
