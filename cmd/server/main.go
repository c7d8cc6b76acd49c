package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nats-io/nats.go"

	"github.com/wicaksana/atelier/internal"
	"github.com/wicaksana/atelier/internal/billing"
	"github.com/wicaksana/atelier/internal/events"
	"github.com/wicaksana/atelier/internal/handler"
	"github.com/wicaksana/atelier/internal/handler/admin"
	"github.com/wicaksana/atelier/internal/handler/storefront"
	"github.com/wicaksana/atelier/internal/middleware"
	"github.com/wicaksana/atelier/internal/postgres"
	"github.com/wicaksana/atelier/internal/routes"
	"github.com/wicaksana/atelier/internal/service"
	"github.com/wicaksana/atelier/internal/telemetry"
)

func run() error {
	ctx := context.Background()

	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	logger.Info().Msg("connecting to database")
	sqlDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return fmt.Errorf("database ping failed: %w", err)
	}

	logger.Info().Msg("running database migrations")
	if err := internal.RunMigrations(sqlDB); err != nil {
		sqlDB.Close()
		return fmt.Errorf("migration failed: %w", err)
	}
	sqlDB.Close()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}
	defer pool.Close()

	store := postgres.NewStore(pool)

	var publisher events.Publisher = events.NopPublisher{}
	var stream events.Stream
	if cfg.NATSURL != "" {
		conn, err := nats.Connect(cfg.NATSURL,
			nats.MaxReconnects(-1),
			nats.ReconnectWait(2*time.Second),
		)
		if err != nil {
			return fmt.Errorf("nats connection failed: %w", err)
		}
		defer conn.Drain()
		publisher = events.NewNATSPublisher(conn, logger)
		stream = events.NewNATSStream(conn, logger)
		logger.Info().Str("url", cfg.NATSURL).Msg("connected to nats")
	} else {
		logger.Info().Msg("NATS_URL not set, event publishing disabled")
	}

	var provider billing.Provider
	if cfg.Stripe.SecretKey != "" {
		provider = billing.NewStripeProvider(cfg.Stripe.SecretKey)
		logger.Info().Msg("stripe billing provider initialized")
	} else {
		provider = billing.NewMockProvider()
		logger.Warn().Msg("STRIPE_SECRET_KEY not set, using mock billing provider")
	}

	metrics := telemetry.NewBusinessMetrics("atelier")

	productService := service.NewProductService(store)
	cartService := service.NewCartService(store, metrics)
	voucherService := service.NewVoucherService(store, metrics)
	checkoutService := service.NewCheckoutService(store, provider, publisher, metrics)
	blogService := service.NewBlogService(store)
	contentService := service.NewContentService(store, publisher, metrics)
	settingsService := service.NewSettingsService(store, publisher, stream)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.ErrorHandler(logger)

	httpMetrics := middleware.NewMetrics("atelier")
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(logger))
	e.Use(httpMetrics.Middleware())

	routes.Register(e, routes.Deps{
		Products: storefront.NewProductHandler(productService, metrics),
		Cart:     storefront.NewCartHandler(cartService),
		Checkout: storefront.NewCheckoutHandler(checkoutService, cartService, voucherService),
		Content:  storefront.NewContentHandler(contentService, blogService),
		Settings: storefront.NewSettingsHandler(settingsService),

		AdminProducts: admin.NewProductHandler(productService),
		AdminVouchers: admin.NewVoucherHandler(voucherService),
		AdminContent:  admin.NewContentHandler(contentService, blogService, settingsService),

		AdminToken: cfg.AdminToken,
		Metrics:    httpMetrics,

		Healthcheck: func(c echo.Context) error {
			if err := store.Ping(c.Request().Context()); err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "database unreachable")
			}
			return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
		},
	})

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
