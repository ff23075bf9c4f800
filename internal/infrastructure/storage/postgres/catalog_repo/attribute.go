package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/maxgambino/tandem-inventory/internal/core/apperror"
	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/domain/catalogs/attribute"
	"github.com/maxgambino/tandem-inventory/internal/infrastructure/storage/postgres"
)

const (
	attributeTable      = "cat_attributes"
	attributeValueTable = "cat_attribute_values"
)

// AttributeRepo implements attribute.Repository. Attributes carry a
// tenant-wide ordering (position), so this repo does not reuse the generic
// catalog base.
type AttributeRepo struct {
	txManager *postgres.TxManager
	builder   squirrel.StatementBuilderType
}

// NewAttributeRepo creates a new attribute repository.
func NewAttributeRepo(txManager *postgres.TxManager) *AttributeRepo {
	return &AttributeRepo{
		txManager: txManager,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *AttributeRepo) querier(ctx context.Context) postgres.Querier {
	return r.txManager.GetQuerier(ctx)
}

var attributeCols = []string{"id", "deletion_mark", "version", "restaurant_id", "name", "kind", "position"}

// Create inserts a new attribute.
func (r *AttributeRepo) Create(ctx context.Context, attr *attribute.Attribute) error {
	q := r.builder.Insert(attributeTable).
		Columns(attributeCols...).
		Values(attr.ID, attr.DeletionMark, attr.Version, attr.RestaurantID, attr.Name, attr.Kind, attr.Position)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert attribute: %w", err)
	}

	return nil
}

// GetByID retrieves an attribute by ID.
func (r *AttributeRepo) GetByID(ctx context.Context, attrID id.ID) (*attribute.Attribute, error) {
	q := r.builder.Select(attributeCols...).
		From(attributeTable).
		Where(squirrel.Eq{"id": attrID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var attr attribute.Attribute
	if err := pgxscan.Get(ctx, r.querier(ctx), &attr, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("attribute", attrID.String())
		}
		return nil, fmt.Errorf("get attribute: %w", err)
	}

	return &attr, nil
}

// Update modifies an attribute with optimistic locking.
func (r *AttributeRepo) Update(ctx context.Context, attr *attribute.Attribute) error {
	q := r.builder.Update(attributeTable).
		Set("name", attr.Name).
		Set("kind", attr.Kind).
		Set("position", attr.Position).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": attr.ID}).
		Where(squirrel.Eq{"version": attr.Version})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update attribute: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification("attribute", attr.ID)
	}

	return nil
}

// Delete removes an attribute and all of its product values.
func (r *AttributeRepo) Delete(ctx context.Context, attrID id.ID) error {
	delValues := r.builder.Delete(attributeValueTable).
		Where(squirrel.Eq{"attribute_id": attrID})

	sql, args, err := delValues.ToSql()
	if err != nil {
		return fmt.Errorf("build delete values: %w", err)
	}
	if _, err := r.querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete attribute values: %w", err)
	}

	delAttr := r.builder.Delete(attributeTable).
		Where(squirrel.Eq{"id": attrID})

	sql, args, err = delAttr.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete attribute: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("attribute", attrID.String())
	}

	return nil
}

// List returns the tenant's attributes ordered by position.
func (r *AttributeRepo) List(ctx context.Context, restaurantID id.ID) ([]*attribute.Attribute, error) {
	q := r.builder.Select(attributeCols...).
		From(attributeTable).
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("position ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var attrs []*attribute.Attribute
	if err := pgxscan.Select(ctx, r.querier(ctx), &attrs, sql, args...); err != nil {
		return nil, fmt.Errorf("list attributes: %w", err)
	}

	return attrs, nil
}

// MaxPosition returns the highest position among the tenant's attributes,
// or -1 when none exist.
func (r *AttributeRepo) MaxPosition(ctx context.Context, restaurantID id.ID) (int, error) {
	q := r.builder.Select("COALESCE(MAX(position), -1)").
		From(attributeTable).
		Where(squirrel.Eq{"restaurant_id": restaurantID})

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var max int
	if err := r.querier(ctx).QueryRow(ctx, sql, args...).Scan(&max); err != nil {
		return 0, fmt.Errorf("max position: %w", err)
	}

	return max, nil
}

// Reorder rewrites positions to match the given id ordering, in a single
// round-trip.
func (r *AttributeRepo) Reorder(ctx context.Context, restaurantID id.ID, orderedIDs []id.ID) error {
	queries := make([]postgres.BatchQuery, 0, len(orderedIDs))
	for pos, attrID := range orderedIDs {
		queries = append(queries, postgres.BatchQuery{
			SQL:  fmt.Sprintf("UPDATE %s SET position = $1, version = version + 1 WHERE id = $2 AND restaurant_id = $3", attributeTable),
			Args: []any{pos, attrID, restaurantID},
		})
	}

	executor := postgres.NewBatchExecutor(r.txManager)
	if err := executor.ExecuteBatch(ctx, queries); err != nil {
		return fmt.Errorf("reorder attributes: %w", err)
	}

	return nil
}

// Assign upserts a value for (product, attribute).
func (r *AttributeRepo) Assign(ctx context.Context, value *attribute.ProductValue) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (id, product_id, attribute_id, value_text, value_number, value_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (product_id, attribute_id)
		DO UPDATE SET value_text = EXCLUDED.value_text,
			value_number = EXCLUDED.value_number,
			value_date = EXCLUDED.value_date
	`, attributeValueTable)

	_, err := r.querier(ctx).Exec(ctx, sql,
		value.ID, value.ProductID, value.AttributeID,
		value.ValueText, value.ValueNumber, value.ValueDate, value.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("assign attribute value: %w", err)
	}

	return nil
}

// Unassign removes a product's value for the given attribute.
func (r *AttributeRepo) Unassign(ctx context.Context, productID, attrID id.ID) error {
	q := r.builder.Delete(attributeValueTable).
		Where(squirrel.Eq{"product_id": productID}).
		Where(squirrel.Eq{"attribute_id": attrID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("unassign attribute value: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("attribute value", attrID.String())
	}

	return nil
}

// ListByProduct joins attributes with their values for one product, ordered
// by attribute position.
func (r *AttributeRepo) ListByProduct(ctx context.Context, restaurantID, productID id.ID) ([]*attribute.ProductAttribute, error) {
	sql := fmt.Sprintf(`
		SELECT a.id, a.deletion_mark, a.version, a.restaurant_id, a.name, a.kind, a.position,
			   v.id AS "value.id", v.product_id AS "value.product_id",
			   v.attribute_id AS "value.attribute_id",
			   v.value_text AS "value.value_text", v.value_number AS "value.value_number",
			   v.value_date AS "value.value_date", v.created_at AS "value.created_at"
		FROM %s v
		JOIN %s a ON a.id = v.attribute_id
		WHERE a.restaurant_id = $1 AND v.product_id = $2 AND a.deletion_mark = false
		ORDER BY a.position
	`, attributeValueTable, attributeTable)

	var items []*attribute.ProductAttribute
	if err := pgxscan.Select(ctx, r.querier(ctx), &items, sql, restaurantID, productID); err != nil {
		return nil, fmt.Errorf("list product attributes: %w", err)
	}

	return items, nil
}
