package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config is the whole application configuration, loaded from env.
type Config struct {
	Port string

	// Either DatabaseURL or the discrete POSTGRES_* values.
	DatabaseURL      string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
	PostgresSSLMode  string

	JWTSecret string

	// Cart backend. Empty RedisAddr keeps carts in process memory.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Order event stream. Empty means events are disabled.
	KafkaBrokers []string

	// Delivery pricing. A zero fee makes total equal subtotal.
	DeliveryFee           float64
	FreeDeliveryThreshold float64

	// Seed admin account, created at startup when set.
	AdminUsername string
	AdminPassword string

	GoEnv string // dev/prod
	FEURL string // front URL, for CORS
}

func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "8080"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "tunitest"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getenv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		GoEnv: getenv("GO_ENV", "dev"),
		FEURL: os.Getenv("FE_URL"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("REDIS_DB must be number: %w", err)
		}
		cfg.RedisDB = n
	}

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	fee, err := parseFloat("DELIVERY_FEE", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.DeliveryFee = fee

	threshold, err := parseFloat("FREE_DELIVERY_THRESHOLD", 100)
	if err != nil {
		return Config{}, err
	}
	cfg.FreeDeliveryThreshold = threshold

	return cfg, nil
}

// DSN builds the postgres connection string. DATABASE_URL wins.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode,
	)
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func parseFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	if f < 0 {
		return 0, fmt.Errorf("%s must be >= 0", key)
	}
	return f, nil
}
