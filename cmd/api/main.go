package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/gadgetpasal/backend/docs"
	"github.com/gadgetpasal/backend/internal/config"
	"github.com/gadgetpasal/backend/internal/handler"
	"github.com/gadgetpasal/backend/internal/logger"
	"github.com/gadgetpasal/backend/internal/metrics"
	"github.com/gadgetpasal/backend/internal/repository"
	"github.com/gadgetpasal/backend/internal/retry"
	"github.com/gadgetpasal/backend/internal/scheduler"
	"github.com/gadgetpasal/backend/internal/service"
	"github.com/gadgetpasal/backend/pkg/currency"
)

// @title GadgetPasal API
// @version 1.0
// @description Storefront API for phones, laptops and accessories with EMI plans.

// @contact.name API Support
// @contact.email support@gadgetpasal.com

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// stores are the repositories selected by configuration.
type stores struct {
	products service.ProductRepositoryInterface
	orders   service.OrderRepositoryInterface
	users    service.UserRepositoryInterface
	carts    service.CartStore
	cache    service.OptionCache
	closers  []func() error
}

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx := context.Background()

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Error("failed to open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer st.close(log)

	// Initialize services
	snapshot := service.NewCatalogSnapshot()
	catalogService := service.NewCatalogService(st.products, snapshot)
	if err := catalogService.Refresh(ctx); err != nil {
		log.Warn("initial catalog load failed, reading through to storage", slog.String("error", err.Error()))
	}

	tokens := service.NewTokenManager(cfg.JWTSecret)
	userService := service.NewUserService(st.users, tokens)
	if err := userService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Error("failed to seed admin account", slog.String("error", err.Error()))
	}

	storeCurrency := currency.Currency(cfg.Currency)
	if !currency.IsValid(cfg.Currency) {
		log.Warn("unsupported currency, using default",
			slog.String("currency", cfg.Currency),
			slog.String("default", string(currency.DefaultCurrency)))
		storeCurrency = currency.DefaultCurrency
	}

	emiService := service.NewEMIService(nil, catalogService, storeCurrency)
	if st.cache != nil {
		emiService.WithOptionCache(st.cache, cfg.EMIOptionsCacheTTL)
	}
	cartService := service.NewCartService(st.carts, catalogService)
	orderService := service.NewOrderService(st.orders, cartService, emiService)
	adminService := service.NewAdminService(st.products, st.orders, catalogService)
	exportService := service.NewExportService(st.orders, emiService, storeCurrency)

	handlers := &handler.Handlers{
		Auth:    handler.NewAuthHandler(userService),
		Product: handler.NewProductHandler(catalogService),
		EMI:     handler.NewEMIHandler(emiService),
		Cart:    handler.NewCartHandler(cartService),
		Order:   handler.NewOrderHandler(orderService),
		Admin:   handler.NewAdminHandler(adminService),
		Export:  handler.NewExportHandler(exportService),
		Tokens:  tokens,
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(logger.Middleware)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if cfg.MetricsEnabled {
		r.Use(metrics.Middleware)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.MetricsEnabled {
		r.Handle("/metrics", metrics.Handler())
	}

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	handlers.Mount(r)

	refresher := scheduler.New(scheduler.Config{
		Schedule: cfg.CatalogRefreshSchedule,
		Enabled:  cfg.CatalogRefreshEnabled,
	}, catalogService, log)
	if err := refresher.Start(); err != nil {
		log.Error("failed to start catalog scheduler", slog.String("error", err.Error()))
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Handle graceful shutdown
	done := make(chan struct{})
	go func() {
		defer close(done)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("shutting down server")

		// Stop scheduler first
		<-refresher.Stop().Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown error", slog.String("error", err.Error()))
		}
	}()

	log.Info("server starting",
		slog.String("port", cfg.Port),
		slog.String("env", cfg.Env),
		slog.Bool("database", cfg.UsesDatabase()),
		slog.Bool("redis", cfg.UsesRedis()),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	<-done
}

// openStores connects PostgreSQL and Redis when configured and falls back to
// the in-memory stores otherwise.
func openStores(ctx context.Context, cfg *config.Config, log *slog.Logger) (*stores, error) {
	st := &stores{}

	if cfg.UsesDatabase() {
		var db *sqlx.DB
		err := retry.Do(ctx, retry.DefaultConfig(), log, "connect postgres", func(ctx context.Context) error {
			var err error
			db, err = sqlx.ConnectContext(ctx, "postgres", cfg.DatabaseURL)
			return err
		})
		if err != nil {
			return nil, err
		}
		st.closers = append(st.closers, db.Close)

		if err := repository.Migrate(ctx, db); err != nil {
			st.close(log)
			return nil, err
		}

		products := repository.NewProductRepository(db)
		if err := seedProducts(ctx, products, log); err != nil {
			st.close(log)
			return nil, err
		}

		st.products = products
		st.orders = repository.NewOrderRepository(db)
		st.users = repository.NewUserRepository(db)
	} else {
		log.Info("DATABASE_URL not set, using in-memory storage")
		st.products = repository.NewMemoryProductRepository(repository.DemoProducts())
		st.orders = repository.NewMemoryOrderRepository()
		st.users = repository.NewMemoryUserRepository()
	}

	if cfg.UsesRedis() {
		var client *redis.Client
		err := retry.Do(ctx, retry.DefaultConfig(), log, "connect redis", func(ctx context.Context) error {
			var err error
			client, err = repository.NewRedisClient(ctx, cfg.RedisURL)
			return err
		})
		if err != nil {
			st.close(log)
			return nil, err
		}
		st.closers = append(st.closers, client.Close)
		st.carts = repository.NewRedisCartStore(client, repository.DefaultCartTTL)
		st.cache = repository.NewRedisCache(client)
	} else {
		st.carts = repository.NewMemoryCartStore()
	}

	return st, nil
}

// seedProducts loads the demo catalog into an empty database.
func seedProducts(ctx context.Context, products *repository.ProductRepository, log *slog.Logger) error {
	count, err := products.Count(ctx)
	if err != nil || count > 0 {
		return err
	}

	for _, p := range repository.DemoProducts() {
		p := p
		if err := products.Create(ctx, &p); err != nil {
			return err
		}
	}
	log.Info("seeded demo catalog", slog.Int("products", len(repository.DemoProducts())))
	return nil
}

func (st *stores) close(log *slog.Logger) {
	for i := len(st.closers) - 1; i >= 0; i-- {
		if err := st.closers[i](); err != nil {
			log.Warn("close failed", slog.String("error", err.Error()))
		}
	}
	st.closers = nil
}
