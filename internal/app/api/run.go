// Package api boots the shipping HTTP process: observability, persistence,
// sibling-service clients, and the gin router.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/microcommerce/shipping-service/internal/clients/http/httpclient"
	orderclient "github.com/microcommerce/shipping-service/internal/clients/http/order"
	productclient "github.com/microcommerce/shipping-service/internal/clients/http/product"
	"github.com/microcommerce/shipping-service/internal/platform/migrations"
	platformobservability "github.com/microcommerce/shipping-service/internal/platform/observability"
	platformpostgres "github.com/microcommerce/shipping-service/internal/platform/postgres"
	"github.com/microcommerce/shipping-service/internal/shared/apperrors"
	"github.com/microcommerce/shipping-service/internal/shipping/adapters/external/remote"
	"github.com/microcommerce/shipping-service/internal/shipping/adapters/httpapi"
	"github.com/microcommerce/shipping-service/internal/shipping/adapters/memory"
	shippingobs "github.com/microcommerce/shipping-service/internal/shipping/adapters/observability"
	shippingpostgres "github.com/microcommerce/shipping-service/internal/shipping/adapters/persistence/postgres"
	"github.com/microcommerce/shipping-service/internal/shipping/application"
	"github.com/microcommerce/shipping-service/internal/shipping/ports"
)

// Run boots the shipping HTTP API with observability and repositories wired.
func Run(ctx context.Context) error {
	const serviceName = "shipping-service"

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

	repo, cleanupRepo := buildRepository(ctx, cfg, logger)
	defer cleanupRepo()

	lookupClient := httpclient.New(cfg.LookupConnectTimeout, cfg.LookupRequestTimeout)
	products, err := productclient.NewClient(cfg.ProductServiceURL, lookupClient)
	if err != nil {
		return err
	}
	orders, err := orderclient.NewClient(cfg.OrderServiceURL, lookupClient)
	if err != nil {
		return err
	}

	coreService := application.NewService(application.Dependencies{
		Repository: repo,
		Products:   remote.NewProductLookup(products),
		Orders:     remote.NewOrderLookup(orders),
	})
	service := shippingobs.New(
		coreService,
		shippingobs.WithLogger(logger),
		shippingobs.WithTracer(instruments.Tracer("internal.shipping.application")),
		shippingobs.WithMeter(instruments.Meter("internal.shipping.application")),
	)

	responder := apperrors.NewResponder(logger)
	api := httpapi.NewShippingAPI(service, responder)
	router := httpapi.NewRouter(api, otelgin.Middleware(serviceName))

	addr := ":" + cfg.Port
	logger.Info("shipping API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("shipping API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// buildRepository prefers PostgreSQL when a DSN is configured and falls back
// to the in-memory store otherwise.
func buildRepository(ctx context.Context, cfg Config, logger *slog.Logger) (ports.Repository, func()) {
	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to the in-memory repository")
		return memory.NewRepository(), func() {}
	}
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to memory", slog.String("error", err.Error()))
		return memory.NewRepository(), func() {}
	}
	if err := migrations.Run(db); err != nil {
		logger.Warn("failed to run migrations, falling back to memory", slog.String("error", err.Error()))
		return memory.NewRepository(), func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to memory", slog.String("error", err.Error()))
		return memory.NewRepository(), func() {}
	}
	logger.Info("order item repository configured with postgres")
	return shippingpostgres.NewRepository(db), func() { _ = sqlDB.Close() }
}
