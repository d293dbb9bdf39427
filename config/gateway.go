package config

import "time"

type GatewayConfig struct {
	Port            string
	CartSvcURL      string
	UpstreamTimeout time.Duration
	LogLevel        string
}

func LoadGateway() GatewayConfig {
	return GatewayConfig{
		Port:            getEnv("GATEWAY_PORT", "8080"),
		CartSvcURL:      getEnv("CART_SVC_URL", "http://localhost:8084"),
		UpstreamTimeout: parseDuration(getEnv("UPSTREAM_TIMEOUT", "15s"), 15*time.Second),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}
