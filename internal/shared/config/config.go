package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Auth     AuthConfig
}

type DatabaseConfig struct {
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	MaxRetries int
}

type AppConfig struct {
	Port string
	Env  string
}

type RedisConfig struct {
	Addr     string
	CacheTTL time.Duration
}

type KafkaConfig struct {
	Broker             string
	ConsumerGroupID    string
	OutboxPollInterval time.Duration
}

type AuthConfig struct {
	RBACModelPath string
}

// Load reads .env when present and then the process environment. Missing
// optional values fall back to defaults; malformed numbers are an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	maxRetries, err := strconv.Atoi(getEnv("DB_MAX_RETRIES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_RETRIES: %w", err)
	}

	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	pollInterval, err := time.ParseDuration(getEnv("OUTBOX_POLL_INTERVAL", "3s"))
	if err != nil {
		return nil, fmt.Errorf("invalid OUTBOX_POLL_INTERVAL: %w", err)
	}

	return &Config{
		Database: DatabaseConfig{
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", ""),
			Name:       getEnv("DB_NAME", "payroll"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			MaxRetries: maxRetries,
		},
		App: AppConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			CacheTTL: cacheTTL,
		},
		Kafka: KafkaConfig{
			Broker:             getEnv("KAFKA_BROKER", ""),
			ConsumerGroupID:    getEnv("KAFKA_CONSUMER_GROUP", "go-payroll-cache"),
			OutboxPollInterval: pollInterval,
		},
		Auth: AuthConfig{
			RBACModelPath: getEnv("RBAC_MODEL_PATH", ""),
		},
	}, nil
}

func (c *Config) RequireKafka() error {
	if c.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
