package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/core/numerator"
)

// Compile-time check.
var _ numerator.Generator = (*SequenceNumerator)(nil)

// SequenceNumerator issues catalog codes from the sys_sequences table, one
// counter per (restaurant, prefix). The UPSERT increments and reads the
// counter in a single statement, so concurrent callers serialize on the row
// and never observe the same value.
//
// Codes are gapless only as long as the enclosing transaction commits; a
// rolled-back create burns its number, which is acceptable for display codes.
type SequenceNumerator struct {
	txManager *TxManager
}

// NewSequenceNumerator creates a new sequence-backed code generator.
func NewSequenceNumerator(txManager *TxManager) *SequenceNumerator {
	return &SequenceNumerator{txManager: txManager}
}

// NextCode generates the next code for the given prefix and restaurant.
func (n *SequenceNumerator) NextCode(ctx context.Context, cfg numerator.Config, restaurantID id.ID) (string, error) {
	prefix := strings.ToUpper(strings.TrimSpace(cfg.Prefix))
	if prefix == "" {
		return "", fmt.Errorf("numerator prefix is empty")
	}

	padWidth := cfg.PadWidth
	if padWidth <= 0 {
		padWidth = 5
	}

	sql := `
		INSERT INTO sys_sequences (restaurant_id, prefix, value)
		VALUES ($1, $2, 1)
		ON CONFLICT (restaurant_id, prefix)
		DO UPDATE SET value = sys_sequences.value + 1
		RETURNING value
	`

	var value int64
	querier := n.txManager.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, sql, restaurantID, prefix).Scan(&value); err != nil {
		return "", fmt.Errorf("next sequence value for %s: %w", prefix, err)
	}

	return fmt.Sprintf("%s-%0*d", prefix, padWidth, value), nil
}
