package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httpapi "overcooked-cart/cart-svc/internal/api/http"
	"overcooked-cart/cart-svc/internal/cart"
	"overcooked-cart/cart-svc/internal/service"
	"overcooked-cart/cart-svc/internal/storage"
	"overcooked-cart/config"
)

func main() {
	cfg := config.Load()

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	if err := storage.RunMigrations(cfg.PostgresDSN(), logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	db := config.MustInitPostgres(cfg, logger)
	defer db.Close()
	repo := storage.NewPostgresRepository(db)

	var carts service.CartStore
	rdb, err := config.InitRedis(cfg)
	if err != nil {
		logger.Warn("redis unavailable, carts will live in memory", zap.String("addr", cfg.RedisAddr()), zap.Error(err))
		carts = cart.NewMemoryStores()
	} else {
		carts = storage.NewRedisCache(rdb, cfg.CartTTL)
	}
	defer rdb.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var publisher service.EventPublisher
	if cfg.KafkaBroker != "" {
		writer := config.NewKafkaWriter(cfg, cfg.CartEventsTopic)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	} else {
		logger.Info("KAFKA_BROKER not set, cart events are disabled")
	}

	cartSvc := service.NewCartService(
		repo,
		repo,
		carts,
		publisher,
		service.DefaultQRGenerator{BaseURL: cfg.QRBaseURL},
		cfg.TaxRate,
		logger,
	)

	if cfg.KafkaBroker != "" {
		reader := config.NewKafkaReader(cfg, cfg.OrderEventsTopic)
		defer reader.Close()
		go service.NewConsumer(reader, cartSvc, logger).Start(ctx)
	}

	handler := httpapi.NewHandler(cartSvc, service.NewMenuService(repo))
	if err := httpapi.StartServer(ctx, ":"+cfg.Port, httpapi.NewRouter(handler), logger); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
