package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string

	// StorageBackend selects the repository implementation: "postgres" or "memory".
	StorageBackend string

	// SequenceBackend selects the counter store behind the identifier
	// issuer: "postgres", "redis" or "memory".
	SequenceBackend string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Enabled bool
	Brokers []string
}

func Load() (*Config, error) {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:            appPort,
		Env:             getEnv("APP_ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		StorageBackend:  getEnv("STORAGE_BACKEND", "postgres"),
		SequenceBackend: getEnv("SEQUENCE_BACKEND", "postgres"),
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "dayflow"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	config.Redis = RedisConfig{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       redisDB,
	}

	kafkaEnabled, err := strconv.ParseBool(getEnv("KAFKA_ENABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid KAFKA_ENABLED: %w", err)
	}

	config.Kafka = KafkaConfig{
		Enabled: kafkaEnabled,
		Brokers: getEnvSlice("KAFKA_BROKERS"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.App.StorageBackend {
	case "postgres", "memory":
	default:
		return fmt.Errorf("unsupported STORAGE_BACKEND: %s", c.App.StorageBackend)
	}

	switch c.App.SequenceBackend {
	case "postgres", "redis", "memory":
	default:
		return fmt.Errorf("unsupported SEQUENCE_BACKEND: %s", c.App.SequenceBackend)
	}

	// The postgres and memory counters ride on the storage backend's
	// connection, so they must match it. Redis stands alone.
	if c.App.SequenceBackend != "redis" && c.App.SequenceBackend != c.App.StorageBackend {
		return fmt.Errorf("SEQUENCE_BACKEND %s requires STORAGE_BACKEND %s",
			c.App.SequenceBackend, c.App.SequenceBackend)
	}

	if c.App.StorageBackend == "postgres" && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required when KAFKA_ENABLED=true")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string = strings.Split(value, ",")
	return result
}
