package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/shopeasy/shopeasy-commerce-service/internal/cart"
	"github.com/shopeasy/shopeasy-commerce-service/internal/config"
	"github.com/shopeasy/shopeasy-commerce-service/internal/events"
	"github.com/shopeasy/shopeasy-commerce-service/internal/handlers"
	"github.com/shopeasy/shopeasy-commerce-service/internal/logging"
	"github.com/shopeasy/shopeasy-commerce-service/internal/metrics"
	"github.com/shopeasy/shopeasy-commerce-service/internal/payment"
	"github.com/shopeasy/shopeasy-commerce-service/internal/repository"
	"github.com/shopeasy/shopeasy-commerce-service/internal/server"
	"github.com/shopeasy/shopeasy-commerce-service/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	cfg := config.Load()

	logger := logging.New(logging.Options{
		Service: "shopeasy-commerce-service",
		Level:   cfg.Log.Level,
	})

	logger.Info("starting shopeasy-commerce-service", "port", cfg.Server.Port)

	store, err := repository.Open(cfg.Database, logging.Component(logger, "repository"))
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.RunMigrations(cfg.Database.MigrationsPath); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var historyCache repository.HistoryCache
	if cfg.Features.EnableOrderCaching {
		redisCache := repository.NewRedisHistoryCache(cfg.Redis, logging.Component(logger, "cache"))
		defer redisCache.Close()
		historyCache = redisCache
	}

	var publisher service.EventPublisher = events.NoopPublisher{}
	if cfg.Features.EnableOrderEvents {
		kafkaPublisher := events.NewKafkaPublisher(cfg.Kafka, logging.Component(logger, "events"))
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	provider := payment.New(cfg.Payment, logging.Component(logger, "payment"))
	m := metrics.New(prometheus.NewRegistry())
	carts := cart.NewStore()

	catalogSvc := service.NewCatalogService(store, logging.Component(logger, "catalog"))
	authSvc := service.NewAuthService(store, logging.Component(logger, "auth"))
	cartSvc := service.NewCartService(carts, store, logging.Component(logger, "cart"))
	checkoutSvc := service.NewCheckoutService(carts, store, historyCache, provider, publisher, m, logging.Component(logger, "checkout"))
	orderSvc := service.NewOrderService(store, historyCache, logging.Component(logger, "orders"))

	// Retention cleanup runs once at startup; a failure is logged but never
	// blocks serving traffic.
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	if _, err := orderSvc.PurgeExpired(startupCtx, cfg.Orders.RetentionWindow); err != nil {
		logger.Error("order retention cleanup failed", "error", err)
	}
	cancelStartup()

	h := handlers.NewHandlers(catalogSvc, authSvc, cartSvc, checkoutSvc, orderSvc, cfg, logging.Component(logger, "handlers"))
	srv := server.New(h, m, cfg)

	go func() {
		logger.Info("server listening",
			"port", cfg.Server.Port,
			"order_caching", cfg.Features.EnableOrderCaching,
			"order_events", cfg.Features.EnableOrderEvents,
			"payment_provider", cfg.Payment.Provider)
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}

	logger.Info("server exited")
}
