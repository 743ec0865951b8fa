package config

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env  string
	Port int

	// Empty means the in-memory credential store is used.
	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret string
	TokenTTL  time.Duration

	RatesURL     string
	RatesTTL     time.Duration
	RatesRefresh time.Duration

	OTELEndpoint string
}

// Load reads configuration from the environment. A .env file is applied
// first when present. A missing JWT_SECRET is a fatal configuration error:
// the service must never start without a signing key.
func Load() Config {
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	return Config{
		Env:           getEnv("APP_ENV", "dev"),
		Port:          getEnvInt("PORT", 8080),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		JWTSecret:     secret,
		TokenTTL:      getEnvDuration("TOKEN_TTL", 7*24*time.Hour),
		RatesURL:      getEnv("RATES_URL", "https://bank.gov.ua/NBUStatService/v1/statdirectory/exchange?json"),
		RatesTTL:      getEnvDuration("RATES_TTL", 10*time.Minute),
		RatesRefresh:  getEnvDuration("RATES_REFRESH", 5*time.Minute),
		OTELEndpoint:  os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		num, err := strconv.Atoi(v)

		if err != nil {
			log.Fatalf("bad %s: %v", key, err)
		}

		return num
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)

		if err != nil {
			log.Fatalf("bad %s: %v", key, err)
		}

		return d
	}
	return fallback
}
