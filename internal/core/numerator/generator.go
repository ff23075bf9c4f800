// Package numerator provides domain contracts for catalog code auto-numbering.
// Implementations live in infrastructure layer.
package numerator

import (
	"context"

	"github.com/maxgambino/tandem-inventory/internal/core/id"
)

// Generator generates sequential catalog codes.
// Pattern: PREFIX-XXXXX (e.g., PRD-00001), sequenced per restaurant so that
// codes stay dense within each tenant.
type Generator interface {
	// NextCode generates the next code for the given prefix and restaurant.
	NextCode(ctx context.Context, cfg Config, restaurantID id.ID) (string, error)
}

// Config holds numbering configuration.
type Config struct {
	// Prefix added to all codes (e.g., "PRD", "LOC")
	Prefix string

	// PadWidth is the minimum number width (default 5)
	PadWidth int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(prefix string) Config {
	return Config{
		Prefix:   prefix,
		PadWidth: 5,
	}
}
