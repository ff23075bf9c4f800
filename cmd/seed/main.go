// Package main provides a CLI tool for seeding the database with demo data.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/core/tenant"
	"github.com/maxgambino/tandem-inventory/internal/core/types"
	"github.com/maxgambino/tandem-inventory/internal/domain/stock"
	"github.com/maxgambino/tandem-inventory/internal/infrastructure/storage/postgres"
	"github.com/maxgambino/tandem-inventory/internal/infrastructure/storage/postgres/ledger_repo"
	"github.com/maxgambino/tandem-inventory/internal/migrations"
	"github.com/maxgambino/tandem-inventory/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	poolCfg := postgres.DefaultPoolConfig(dbURL)
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := migrations.Run(ctx, pool.Unwrap()); err != nil {
		log.Fatalw("failed to run migrations", "error", err)
	}

	restaurantID, err := seedRestaurant(ctx, pool, log)
	if err != nil {
		log.Fatalw("failed to seed restaurant", "error", err)
	}

	if err := seedDemoData(ctx, pool, log, restaurantID); err != nil {
		log.Fatalw("failed to seed demo data", "error", err)
	}

	log.Infow("seeding completed successfully", "restaurant_id", restaurantID)
}

func seedRestaurant(ctx context.Context, pool *postgres.Pool, log *logger.Logger) (id.ID, error) {
	name := os.Getenv("SEED_RESTAURANT_NAME")
	if name == "" {
		name = "Demo Trattoria"
	}

	var existingID id.ID
	err := pool.Pool.QueryRow(ctx,
		`SELECT id FROM restaurants WHERE name = $1`,
		name,
	).Scan(&existingID)
	if err == nil {
		log.Infow("restaurant already exists", "name", name, "restaurant_id", existingID)
		return existingID, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return id.Nil(), fmt.Errorf("check restaurant exists: %w", err)
	}

	restaurantID := id.New()
	_, err = pool.Pool.Exec(ctx, `
		INSERT INTO restaurants (id, name)
		VALUES ($1, $2)
	`, restaurantID, name)
	if err != nil {
		return id.Nil(), fmt.Errorf("insert restaurant: %w", err)
	}

	log.Infow("restaurant created", "name", name, "restaurant_id", restaurantID)
	return restaurantID, nil
}

func seedDemoData(ctx context.Context, pool *postgres.Pool, log *logger.Logger, restaurantID id.ID) error {
	log.Info("seeding demo data...")

	ctx = tenant.WithRestaurant(ctx, restaurantID)

	// 1. Locations
	type locationSeed struct {
		code string
		name string
		memo string
	}

	locations := []locationSeed{
		{"LOC-00001", "Walk-in Cooler", "behind the kitchen"},
		{"LOC-00002", "Freezer", "temp -18C"},
		{"LOC-00003", "Dry Storage", ""},
		{"LOC-00004", "Bar", ""},
	}

	locationIDs := make(map[string]id.ID)

	for _, l := range locations {
		lid := id.New()
		commandTag, err := pool.Pool.Exec(ctx, `
			INSERT INTO cat_locations (id, restaurant_id, code, name, memo, version, deletion_mark)
			VALUES ($1, $2, $3, $4, NULLIF($5, ''), 1, false)
			ON CONFLICT (restaurant_id, code) DO NOTHING
		`, lid, restaurantID, l.code, l.name, l.memo)
		if err != nil {
			return fmt.Errorf("insert location %s: %w", l.code, err)
		}
		if commandTag.RowsAffected() == 0 {
			if err := pool.Pool.QueryRow(ctx,
				`SELECT id FROM cat_locations WHERE restaurant_id = $1 AND code = $2`,
				restaurantID, l.code,
			).Scan(&lid); err != nil {
				return fmt.Errorf("fetch location %s: %w", l.code, err)
			}
		}
		locationIDs[l.code] = lid
	}
	log.Infow("locations seeded", "count", len(locations))

	// 2. Suppliers
	type supplierSeed struct {
		code  string
		name  string
		email string
	}

	suppliers := []supplierSeed{
		{"SUP-00001", "Fresh Farm Produce", "orders@freshfarm.example"},
		{"SUP-00002", "Beverage Wholesale Co", "sales@bevwholesale.example"},
	}

	supplierIDs := make(map[string]id.ID)

	for _, s := range suppliers {
		sid := id.New()
		commandTag, err := pool.Pool.Exec(ctx, `
			INSERT INTO cat_suppliers (id, restaurant_id, code, name, email, version, deletion_mark)
			VALUES ($1, $2, $3, $4, NULLIF($5, ''), 1, false)
			ON CONFLICT (restaurant_id, code) DO NOTHING
		`, sid, restaurantID, s.code, s.name, s.email)
		if err != nil {
			return fmt.Errorf("insert supplier %s: %w", s.code, err)
		}
		if commandTag.RowsAffected() == 0 {
			if err := pool.Pool.QueryRow(ctx,
				`SELECT id FROM cat_suppliers WHERE restaurant_id = $1 AND code = $2`,
				restaurantID, s.code,
			).Scan(&sid); err != nil {
				return fmt.Errorf("fetch supplier %s: %w", s.code, err)
			}
		}
		supplierIDs[s.code] = sid
	}
	log.Infow("suppliers seeded", "count", len(suppliers))

	// 3. Products
	type productSeed struct {
		sku      string
		name     string
		unit     string
		location string // default location code
		supplier string // preferred supplier code
	}

	products := []productSeed{
		{"PRD-00001", "Tomatoes San Marzano", "kg", "LOC-00001", "SUP-00001"},
		{"PRD-00002", "Mozzarella di Bufala", "kg", "LOC-00001", "SUP-00001"},
		{"PRD-00003", "Olive Oil Extra Virgin", "L", "LOC-00003", "SUP-00001"},
		{"PRD-00004", "Flour Tipo 00", "kg", "LOC-00003", "SUP-00001"},
		{"PRD-00005", "House Red Wine", "L", "LOC-00004", "SUP-00002"},
	}

	productIDs := make(map[string]id.ID)

	for _, p := range products {
		pid := id.New()
		locID := locationIDs[p.location]
		supID := supplierIDs[p.supplier]
		commandTag, err := pool.Pool.Exec(ctx, `
			INSERT INTO cat_products (id, restaurant_id, code, name, unit, default_location_id, supplier_id, version, deletion_mark)
			VALUES ($1, $2, $3, $4, $5, $6, $7, 1, false)
			ON CONFLICT (restaurant_id, code) DO NOTHING
		`, pid, restaurantID, p.sku, p.name, p.unit, locID, supID)
		if err != nil {
			return fmt.Errorf("insert product %s: %w", p.sku, err)
		}
		if commandTag.RowsAffected() == 0 {
			if err := pool.Pool.QueryRow(ctx,
				`SELECT id FROM cat_products WHERE restaurant_id = $1 AND code = $2`,
				restaurantID, p.sku,
			).Scan(&pid); err != nil {
				return fmt.Errorf("fetch product %s: %w", p.sku, err)
			}
		}
		productIDs[p.sku] = pid
	}
	log.Infow("products seeded", "count", len(products))

	// 4. Opening stock: one IN movement per product into its default location
	if os.Getenv("SEED_OPENING_STOCK") == "false" {
		return nil
	}

	// Appending on rerun would double quantities; seed the ledger only once.
	var movementCount int64
	if err := pool.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM reg_stock_movements WHERE restaurant_id = $1`,
		restaurantID,
	).Scan(&movementCount); err != nil {
		return fmt.Errorf("count movements: %w", err)
	}
	if movementCount > 0 {
		log.Infow("ledger already seeded, skipping opening stock", "movements", movementCount)
		return nil
	}

	openings := map[string]string{
		"PRD-00001": "25",
		"PRD-00002": "8.5",
		"PRD-00003": "12",
		"PRD-00004": "40",
		"PRD-00005": "18",
	}

	txManager := postgres.NewTxManager(pool)
	movementRepo := ledger_repo.NewMovementRepo(txManager)

	movements := make([]stock.Movement, 0, len(products))
	for _, p := range products {
		qtyStr, ok := openings[p.sku]
		if !ok {
			continue
		}
		qty, err := types.ParseQuantity(qtyStr)
		if err != nil {
			return fmt.Errorf("parse opening quantity for %s: %w", p.sku, err)
		}
		locID := locationIDs[p.location]
		note := "opening stock"
		input := stock.Input{
			RestaurantID: restaurantID,
			ProductID:    productIDs[p.sku],
			Type:         stock.TypeInbound,
			Quantity:     &qty,
			ToLocationID: &locID,
			Note:         note,
		}
		if err := stock.ValidateInput(input); err != nil {
			return fmt.Errorf("opening movement for %s: %w", p.sku, err)
		}
		movements = append(movements, stock.NewMovement(input))
	}

	err := txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return movementRepo.AppendBatch(txCtx, movements)
	})
	if err != nil {
		return fmt.Errorf("append opening movements: %w", err)
	}
	log.Infow("opening stock seeded", "movements", len(movements))

	return nil
}
