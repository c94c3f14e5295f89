package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/storecore/catalog-api/internal/api/handler"
	"github.com/storecore/catalog-api/internal/api/middleware"
	"github.com/storecore/catalog-api/internal/core/domain"
	"github.com/storecore/catalog-api/internal/core/ports"
	"github.com/storecore/catalog-api/internal/core/service"
	"github.com/storecore/catalog-api/internal/infrastructure/config"
	postgresdb "github.com/storecore/catalog-api/internal/infrastructure/db/postgres"
	redisdb "github.com/storecore/catalog-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the idempotency ledger then runs without its advisory cache.
func NewRouter(db *sql.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	productRepo := postgresdb.NewProductRepository(db)
	userRepo := postgresdb.NewUserRepository(db)
	idempotencyRepo := postgresdb.NewIdempotencyRepository(db)

	var seenKeys ports.SeenKeyCache
	if rdb != nil {
		seenKeys = redisdb.NewSeenKeyCache(rdb)
	}

	ledger := service.NewIdempotencyService(idempotencyRepo, seenKeys, log)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, time.Duration(cfg.JWTExpiration)*time.Second, log)
	productService := service.NewProductService(productRepo, ledger, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	authRequired := middleware.Auth(cfg.JWTSecret)
	readRoles := middleware.RequireRoles(domain.RoleUser, domain.RoleAdmin)

	// --- Open routes ---
	e.POST("/api/auth/token", authHandler.Token)
	e.GET("/healthz", healthHandler.Live)
	e.GET("/readyz", healthHandler.Ready)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Catalog routes ---
	products := e.Group("/api/products", authRequired)
	products.GET("", productHandler.List, readRoles)
	products.GET("/:id", productHandler.GetByID, readRoles)
	products.GET("/by-sku/:sku", productHandler.GetBySKU, readRoles)
	products.POST("", productHandler.Create)
	products.PUT("/:id/price", productHandler.ChangePrice)
	products.DELETE("/:id", productHandler.Delete)

	return e
}
