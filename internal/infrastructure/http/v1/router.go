// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/maxgambino/tandem-inventory/internal/core/numerator"
	"github.com/maxgambino/tandem-inventory/internal/domain/catalogs/attribute"
	"github.com/maxgambino/tandem-inventory/internal/domain/catalogs/location"
	"github.com/maxgambino/tandem-inventory/internal/domain/catalogs/product"
	"github.com/maxgambino/tandem-inventory/internal/domain/catalogs/supplier"
	"github.com/maxgambino/tandem-inventory/internal/domain/stock"
	"github.com/maxgambino/tandem-inventory/internal/infrastructure/http/v1/handlers"
	"github.com/maxgambino/tandem-inventory/internal/infrastructure/http/v1/middleware"
	"github.com/maxgambino/tandem-inventory/internal/infrastructure/storage/postgres"
	"github.com/maxgambino/tandem-inventory/internal/infrastructure/storage/postgres/catalog_repo"
	"github.com/maxgambino/tandem-inventory/internal/infrastructure/storage/postgres/ledger_repo"
	"github.com/maxgambino/tandem-inventory/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks)
	Pool *postgres.Pool

	// TxManager runs all repository work
	TxManager *postgres.TxManager

	// Audit records catalog mutations
	Audit *postgres.AuditService

	// Numerator generates catalog codes
	Numerator numerator.Generator

	// Logger for request logging
	Logger *logger.Logger
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no tenant required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1 - every route below is tenant-scoped
	api := router.Group("/api/v1")
	api.Use(middleware.Restaurant())

	baseHandler := handlers.NewBaseHandler()

	// Repositories
	productRepo := catalog_repo.NewProductRepo(cfg.TxManager, cfg.Audit)
	locationRepo := catalog_repo.NewLocationRepo(cfg.TxManager, cfg.Audit)
	supplierRepo := catalog_repo.NewSupplierRepo(cfg.TxManager, cfg.Audit)
	attributeRepo := catalog_repo.NewAttributeRepo(cfg.TxManager)
	movementRepo := ledger_repo.NewMovementRepo(cfg.TxManager)

	// Services
	productService := product.NewService(productRepo, cfg.TxManager, cfg.Numerator)
	locationService := location.NewService(locationRepo, cfg.TxManager, cfg.Numerator)
	supplierService := supplier.NewService(supplierRepo, cfg.TxManager, cfg.Numerator)
	attributeService := attribute.NewService(attributeRepo, cfg.TxManager)
	stockProvider := catalog_repo.NewStockCatalogProvider(productRepo, locationRepo)
	stockService := stock.NewService(movementRepo, stockProvider, cfg.TxManager)

	// Catalog CRUD
	RegisterCatalogRoutes(api.Group("/products"), handlers.NewProductHandler(baseHandler, productService))
	RegisterCatalogRoutes(api.Group("/locations"), handlers.NewLocationHandler(baseHandler, locationService))
	RegisterCatalogRoutes(api.Group("/suppliers"), handlers.NewSupplierHandler(baseHandler, supplierService))

	// Attributes: ordered custom fields with per-product values
	attributeHandler := handlers.NewAttributeHandler(baseHandler, attributeService)
	attributes := api.Group("/attributes")
	{
		attributes.GET("", attributeHandler.List)
		attributes.POST("", attributeHandler.Create)
		attributes.PUT("/reorder", attributeHandler.Reorder)
		attributes.GET("/product/:productId", attributeHandler.ListByProduct)
		attributes.DELETE("/product/:productId/:attrId", attributeHandler.Unassign)
		attributes.GET("/:id", attributeHandler.Get)
		attributes.PUT("/:id", attributeHandler.Update)
		attributes.DELETE("/:id", attributeHandler.Delete)
		attributes.POST("/:id/assign", attributeHandler.Assign)
	}

	// Stock: the movement ledger and its projections
	stockHandler := handlers.NewStockHandler(baseHandler, stockService)
	stockGroup := api.Group("/stock")
	{
		stockGroup.GET("/items", stockHandler.Items)
		stockGroup.POST("/movements", stockHandler.RecordMovement)
		stockGroup.GET("/movements", stockHandler.History)
	}

	return router
}
