package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	drugstoreserver "github.com/OleksandIadvigun/drugstore/go"

	ordersmemory "github.com/OleksandIadvigun/drugstore/internal/domains/orders/adapters/memory"
	ordersobs "github.com/OleksandIadvigun/drugstore/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/OleksandIadvigun/drugstore/internal/domains/orders/adapters/persistence/postgres"
	ordersworkflows "github.com/OleksandIadvigun/drugstore/internal/domains/orders/adapters/workflows"
	ordersapp "github.com/OleksandIadvigun/drugstore/internal/domains/orders/application"
	ordersports "github.com/OleksandIadvigun/drugstore/internal/domains/orders/ports"

	productsmemory "github.com/OleksandIadvigun/drugstore/internal/domains/products/adapters/memory"
	productsobs "github.com/OleksandIadvigun/drugstore/internal/domains/products/adapters/observability"
	productspostgres "github.com/OleksandIadvigun/drugstore/internal/domains/products/adapters/persistence/postgres"
	productsapp "github.com/OleksandIadvigun/drugstore/internal/domains/products/application"
	productsports "github.com/OleksandIadvigun/drugstore/internal/domains/products/ports"

	platformobservability "github.com/OleksandIadvigun/drugstore/internal/platform/observability"
	platformpostgres "github.com/OleksandIadvigun/drugstore/internal/platform/postgres"
)

// Run boots the Drugstore HTTP API with observability, repositories, and workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "drugstore-api"
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := connectDatabase(ctx, cfg, logger)
	defer cleanupDB()

	productRepo := buildProductRepository(db, logger)
	productService := productsobs.New(
		productsapp.NewService(productRepo),
		productsobs.WithLogger(logger),
		productsobs.WithTracer(instruments.Tracer("internal.products.application")),
		productsobs.WithMeter(instruments.Meter("internal.products.application")),
	)

	orderRepo := buildOrderRepository(db, logger)
	orderService := ordersobs.New(
		ordersapp.NewService(orderRepo),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	var orderWorkflows ordersports.WorkflowOrchestrator = ordersworkflows.NewInlineOrderWorkflows(orderService)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, placing orders inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		orderWorkflows = ordersworkflows.NewTemporalOrderWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	handlers := drugstoreserver.ApiHandleFunctions{
		OrderAPI:   drugstoreserver.NewOrderAPI(orderService, orderWorkflows),
		ProductAPI: drugstoreserver.NewProductAPI(productService),
	}

	router := drugstoreserver.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("Drugstore API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("Drugstore API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func connectDatabase(ctx context.Context, cfg Config, logger *slog.Logger) (*gorm.DB, func()) {
	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory repositories")
		return nil, func() {}
	}
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to memory", slog.String("error", err.Error()))
		return nil, func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to memory", slog.String("error", err.Error()))
		return nil, func() {}
	}
	logger.Info("postgres connection established")
	return db, func() { _ = sqlDB.Close() }
}

func buildProductRepository(db *gorm.DB, logger *slog.Logger) productsports.Repository {
	if db == nil {
		return productsmemory.NewRepository()
	}
	logger.Info("product repository configured with postgres")
	return productspostgres.NewRepository(db)
}

func buildOrderRepository(db *gorm.DB, logger *slog.Logger) ordersports.Repository {
	if db == nil {
		return ordersmemory.NewRepository()
	}
	logger.Info("order repository configured with postgres")
	return orderspostgres.NewRepository(db)
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	logger := workerlog.NewStructuredLogger(effectiveLogger(instruments))
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    logger,
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
