// Package migrations creates the database schema.
//
// Statements are idempotent (IF NOT EXISTS) so Run is safe to call on every
// startup against an already-migrated database.
package migrations

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS restaurants (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS cat_products (
		id UUID PRIMARY KEY,
		restaurant_id UUID NOT NULL REFERENCES restaurants(id),
		code TEXT NOT NULL,
		name TEXT NOT NULL,
		barcode TEXT,
		unit TEXT,
		default_location_id UUID,
		supplier_id UUID,
		deletion_mark BOOLEAN NOT NULL DEFAULT FALSE,
		version INTEGER NOT NULL DEFAULT 1,
		UNIQUE (restaurant_id, code)
	)`,

	`CREATE TABLE IF NOT EXISTS cat_locations (
		id UUID PRIMARY KEY,
		restaurant_id UUID NOT NULL REFERENCES restaurants(id),
		code TEXT NOT NULL,
		name TEXT NOT NULL,
		memo TEXT,
		deletion_mark BOOLEAN NOT NULL DEFAULT FALSE,
		version INTEGER NOT NULL DEFAULT 1,
		UNIQUE (restaurant_id, code)
	)`,

	`CREATE TABLE IF NOT EXISTS cat_suppliers (
		id UUID PRIMARY KEY,
		restaurant_id UUID NOT NULL REFERENCES restaurants(id),
		code TEXT NOT NULL,
		name TEXT NOT NULL,
		email TEXT,
		phone TEXT,
		deletion_mark BOOLEAN NOT NULL DEFAULT FALSE,
		version INTEGER NOT NULL DEFAULT 1,
		UNIQUE (restaurant_id, code)
	)`,

	`ALTER TABLE cat_products
		ADD CONSTRAINT fk_products_default_location
		FOREIGN KEY (default_location_id) REFERENCES cat_locations(id)
		NOT VALID`,

	`ALTER TABLE cat_products
		ADD CONSTRAINT fk_products_supplier
		FOREIGN KEY (supplier_id) REFERENCES cat_suppliers(id)
		NOT VALID`,

	`CREATE TABLE IF NOT EXISTS cat_attributes (
		id UUID PRIMARY KEY,
		restaurant_id UUID NOT NULL REFERENCES restaurants(id),
		name TEXT NOT NULL,
		kind TEXT NOT NULL,
		position INTEGER NOT NULL DEFAULT 0,
		deletion_mark BOOLEAN NOT NULL DEFAULT FALSE,
		version INTEGER NOT NULL DEFAULT 1
	)`,

	`CREATE TABLE IF NOT EXISTS cat_attribute_values (
		id UUID PRIMARY KEY,
		product_id UUID NOT NULL REFERENCES cat_products(id) ON DELETE CASCADE,
		attribute_id UUID NOT NULL REFERENCES cat_attributes(id) ON DELETE CASCADE,
		value_text TEXT,
		value_number DOUBLE PRECISION,
		value_date TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (product_id, attribute_id)
	)`,

	`CREATE TABLE IF NOT EXISTS reg_stock_movements (
		id UUID PRIMARY KEY,
		restaurant_id UUID NOT NULL REFERENCES restaurants(id),
		product_id UUID NOT NULL REFERENCES cat_products(id),
		type TEXT NOT NULL,
		quantity BIGINT NOT NULL,
		from_location_id UUID REFERENCES cat_locations(id),
		to_location_id UUID REFERENCES cat_locations(id),
		note TEXT,
		created_at TIMESTAMPTZ NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_movements_restaurant
		ON reg_stock_movements (restaurant_id, created_at)`,

	`CREATE INDEX IF NOT EXISTS idx_movements_product
		ON reg_stock_movements (restaurant_id, product_id, created_at DESC)`,

	`CREATE TABLE IF NOT EXISTS sys_sequences (
		restaurant_id UUID NOT NULL,
		prefix TEXT NOT NULL,
		value BIGINT NOT NULL DEFAULT 0,
		PRIMARY KEY (restaurant_id, prefix)
	)`,

	`CREATE TABLE IF NOT EXISTS sys_audit (
		id UUID PRIMARY KEY,
		restaurant_id UUID,
		entity_type TEXT NOT NULL,
		entity_id UUID NOT NULL,
		action TEXT NOT NULL,
		changes JSONB,
		changes_compressed BYTEA,
		compression_algo TEXT NOT NULL DEFAULT 'none',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_audit_entity
		ON sys_audit (entity_type, entity_id, created_at DESC)`,
}

// duplicateConstraintCode is returned when an ALTER TABLE ADD CONSTRAINT
// statement reruns; rerunning the whole schema must stay harmless.
const duplicateConstraintCode = "42710"

// Run applies the schema to the connected database.
func Run(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			if isDuplicateObject(err) {
				continue
			}
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

func isDuplicateObject(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == duplicateConstraintCode
}
