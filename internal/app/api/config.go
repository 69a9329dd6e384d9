package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Default endpoints of the sibling services, matching their local dev ports.
const (
	defaultProductServiceURL = "http://localhost:8500/product-service/api/products"
	defaultOrderServiceURL   = "http://localhost:8300/order-service/api/orders"

	defaultConnectTimeout = 5 * time.Second
	defaultRequestTimeout = 10 * time.Second
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port                 string
	PostgresDSN          string
	ProductServiceURL    string
	OrderServiceURL      string
	LookupConnectTimeout time.Duration
	LookupRequestTimeout time.Duration
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:                 envDefault("PORT", "8600"),
		PostgresDSN:          strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		ProductServiceURL:    envDefault("PRODUCT_SERVICE_URL", defaultProductServiceURL),
		OrderServiceURL:      envDefault("ORDER_SERVICE_URL", defaultOrderServiceURL),
		LookupConnectTimeout: defaultConnectTimeout,
		LookupRequestTimeout: defaultRequestTimeout,
	}
	var err error
	if cfg.LookupConnectTimeout, err = secondsEnv("LOOKUP_CONNECT_TIMEOUT_SECONDS", defaultConnectTimeout); err != nil {
		return Config{}, err
	}
	if cfg.LookupRequestTimeout, err = secondsEnv("LOOKUP_REQUEST_TIMEOUT_SECONDS", defaultRequestTimeout); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func secondsEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", key)
	}
	return time.Duration(seconds) * time.Second, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
