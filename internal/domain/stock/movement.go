// Package stock provides the stock movement ledger and its aggregation engine.
//
// On-hand quantities are never stored: the ledger of immutable movements is the
// single source of truth and the current state is always a pure function of it.
// Every quantity shown to a client is explained by a trail of movements, and a
// full recompute is always possible.
package stock

import (
	"time"

	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/core/types"
)

// MovementType is the closed set of ledger entry kinds. The reducer, the
// validator and the projection all switch on it exhaustively; adding a kind is
// a compile-visible change at every consumption site.
type MovementType string

const (
	// TypeInbound is a receipt into toLocation (+quantity).
	TypeInbound MovementType = "IN"
	// TypeOutbound is a consumption from fromLocation (-quantity).
	TypeOutbound MovementType = "OUT"
	// TypeAdjustment is a manual correction: +quantity at toLocation when set,
	// otherwise -quantity at fromLocation.
	TypeAdjustment MovementType = "ADJUSTMENT"
	// TypeTransfer moves quantity from fromLocation to toLocation.
	TypeTransfer MovementType = "TRANSFER"
)

// IsValid reports whether t is one of the four known kinds.
func (t MovementType) IsValid() bool {
	switch t {
	case TypeInbound, TypeOutbound, TypeAdjustment, TypeTransfer:
		return true
	}
	return false
}

// Movement is one immutable, append-only ledger fact. Movements are never
// updated or deleted once written.
//
// Quantity is a positive magnitude; direction is derived from Type and which
// location side is populated, never stored as a signed value.
type Movement struct {
	ID           id.ID          `db:"id" json:"id"`
	RestaurantID id.ID          `db:"restaurant_id" json:"restaurantId"`
	ProductID    id.ID          `db:"product_id" json:"productId"`
	Type         MovementType   `db:"type" json:"type"`
	Quantity     types.Quantity `db:"quantity" json:"quantity"`

	// FromLocationID is the source of a debit (OUT, TRANSFER, negative ADJUSTMENT).
	FromLocationID *id.ID `db:"from_location_id" json:"fromLocationId,omitempty"`

	// ToLocationID is the destination of a credit (IN, TRANSFER, positive ADJUSTMENT).
	ToLocationID *id.ID `db:"to_location_id" json:"toLocationId,omitempty"`

	// Note is a free-text annotation with no semantic effect.
	Note *string `db:"note" json:"note,omitempty"`

	// CreatedAt is informational only: aggregation is order-independent and
	// must never depend on it.
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Input is a candidate movement before structural validation. Optional fields
// are pointers so the validator can tell "absent" from zero values.
type Input struct {
	RestaurantID   id.ID           `json:"restaurantId"`
	ProductID      id.ID           `json:"productId"`
	Type           MovementType    `json:"type"`
	Quantity       *types.Quantity `json:"quantity"`
	FromLocationID *id.ID          `json:"fromLocationId,omitempty"`
	ToLocationID   *id.ID          `json:"toLocationId,omitempty"`
	Note           string          `json:"note,omitempty"`
}

// NewMovement seals a validated input into an immutable ledger fact, assigning
// its identity and timestamp. Callers must validate the input first.
func NewMovement(input Input) Movement {
	m := Movement{
		ID:             id.New(),
		RestaurantID:   input.RestaurantID,
		ProductID:      input.ProductID,
		Type:           input.Type,
		Quantity:       *input.Quantity,
		FromLocationID: input.FromLocationID,
		ToLocationID:   input.ToLocationID,
		CreatedAt:      time.Now().UTC(),
	}
	if input.Note != "" {
		note := input.Note
		m.Note = &note
	}
	return m
}
