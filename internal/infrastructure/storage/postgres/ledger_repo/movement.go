// Package ledger_repo provides the PostgreSQL implementation of the stock
// movement ledger. Rows are append-only; nothing here updates or deletes.
package ledger_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/maxgambino/tandem-inventory/internal/domain/stock"
	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/infrastructure/storage/postgres"
)

const movementsTable = "reg_stock_movements"

var movementCols = []string{
	"id", "restaurant_id", "product_id", "type", "quantity",
	"from_location_id", "to_location_id", "note", "created_at",
}

// Compile-time check.
var _ stock.Repository = (*MovementRepo)(nil)

// MovementRepo implements stock.Repository.
type MovementRepo struct {
	txManager *postgres.TxManager
	builder   squirrel.StatementBuilderType
}

// NewMovementRepo creates a new movement ledger repository.
func NewMovementRepo(txManager *postgres.TxManager) *MovementRepo {
	return &MovementRepo{
		txManager: txManager,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Append inserts one movement.
func (r *MovementRepo) Append(ctx context.Context, m stock.Movement) error {
	q := r.builder.Insert(movementsTable).
		Columns(movementCols...).
		Values(
			m.ID, m.RestaurantID, m.ProductID, m.Type, m.Quantity,
			m.FromLocationID, m.ToLocationID, m.Note, m.CreatedAt,
		)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}

	return nil
}

// AppendBatch bulk inserts movements using the COPY protocol. Requires an
// active transaction; used by seeding and imports.
func (r *MovementRepo) AppendBatch(ctx context.Context, movements []stock.Movement) error {
	if len(movements) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(movements))
	for _, m := range movements {
		rows = append(rows, []any{
			m.ID, m.RestaurantID, m.ProductID, m.Type, m.Quantity,
			m.FromLocationID, m.ToLocationID, m.Note, m.CreatedAt,
		})
	}

	inserter := postgres.NewBatchInserter(r.txManager)
	if _, err := inserter.CopyFromSlice(ctx, movementsTable, movementCols, rows); err != nil {
		return fmt.Errorf("copy movements: %w", err)
	}

	return nil
}

// ListByRestaurant returns the full movement history for one restaurant.
func (r *MovementRepo) ListByRestaurant(ctx context.Context, restaurantID id.ID) ([]stock.Movement, error) {
	q := r.builder.Select(movementCols...).
		From(movementsTable).
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("created_at ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var movements []stock.Movement
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &movements, sql, args...); err != nil {
		return nil, fmt.Errorf("select movements: %w", err)
	}

	return movements, nil
}

// ListByProduct returns movement history for one product, newest first.
func (r *MovementRepo) ListByProduct(ctx context.Context, restaurantID, productID id.ID, filter stock.HistoryFilter) ([]stock.Movement, error) {
	q := r.builder.Select(movementCols...).
		From(movementsTable).
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		Where(squirrel.Eq{"product_id": productID}).
		OrderBy("created_at DESC")

	if filter.LocationID != nil {
		q = q.Where(squirrel.Or{
			squirrel.Eq{"from_location_id": *filter.LocationID},
			squirrel.Eq{"to_location_id": *filter.LocationID},
		})
	}

	if filter.Type != nil {
		q = q.Where(squirrel.Eq{"type": *filter.Type})
	}

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var movements []stock.Movement
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &movements, sql, args...); err != nil {
		return nil, fmt.Errorf("select movements: %w", err)
	}

	return movements, nil
}
