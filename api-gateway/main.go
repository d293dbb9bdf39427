package main

import (
	"log"
	"net/http"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"overcooked-cart/api-gateway/internal/gateway"
	"overcooked-cart/config"
)

func main() {
	cfg := config.LoadGateway()

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	gw := gateway.NewGateway(gateway.Config{
		CartSvcURL: cfg.CartSvcURL,
	}, &http.Client{Timeout: cfg.UpstreamTimeout}, logger)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	handler := c.Handler(gw.SetupRoutes())

	logger.Info("api gateway starting", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Fatal("gateway stopped", zap.Error(err))
	}
}
