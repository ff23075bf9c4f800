package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/domain/catalogs/location"
	"github.com/maxgambino/tandem-inventory/internal/infrastructure/storage/postgres"
)

const locationTable = "cat_locations"

// LocationRepo implements location.Repository.
type LocationRepo struct {
	*BaseCatalogRepo[*location.Location]
}

// NewLocationRepo creates a new location repository.
func NewLocationRepo(txManager *postgres.TxManager, audit *postgres.AuditService) *LocationRepo {
	return &LocationRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*location.Location](
			txManager,
			audit,
			locationTable,
			postgres.ExtractDBColumns[location.Location](),
			func() *location.Location { return &location.Location{} },
		),
	}
}

// ListActive returns all non-deleted locations of a restaurant in name order.
func (r *LocationRepo) ListActive(ctx context.Context, restaurantID id.ID) ([]*location.Location, error) {
	q := r.Builder().
		Select(postgres.ExtractDBColumns[location.Location]()...).
		From(locationTable).
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("name ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var locations []*location.Location
	if err := pgxscan.Select(ctx, r.Querier(ctx), &locations, sql, args...); err != nil {
		return nil, fmt.Errorf("list active locations: %w", err)
	}

	return locations, nil
}
