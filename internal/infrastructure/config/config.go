package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type KafkaConfig struct {
	Brokers []string
}

type AuthConfig struct {
	JWTSecret string
	Issuer    string
}

type TracingConfig struct {
	Endpoint string
	Insecure bool
}

type Config struct {
	GRPCPort       int
	HTTPPort       int
	DB             DatabaseConfig
	Kafka          KafkaConfig
	Auth           AuthConfig
	Tracing        TracingConfig
	LogLevel       string
	LogFormat      string
	ServiceName    string
	MigrationsDir  string
	InitialCapital decimal.Decimal
}

func (c Config) Validate() {
	if c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required")
	}
	if c.Auth.JWTSecret == "" {
		panic("JWT_SECRET environment variable is required")
	}
}

func Load() Config {
	return Config{
		GRPCPort: getEnvInt("GRPC_PORT", 9094),
		HTTPPort: getEnvInt("HTTP_PORT", 8094),
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "tiendafacil"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "tiendafacil_lending"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		Kafka: KafkaConfig{
			Brokers: []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			Issuer:    getEnv("JWT_ISSUER", "tienda-gateway"),
		},
		Tracing: TracingConfig{
			Endpoint: getEnv("OTLP_ENDPOINT", "localhost:4317"),
			Insecure: getEnvBool("OTLP_INSECURE", true),
		},
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		ServiceName:    "lending-service",
		MigrationsDir:  getEnv("MIGRATIONS_DIR", "internal/infrastructure/postgres/migrations"),
		InitialCapital: getEnvDecimal("INITIAL_CAPITAL", decimal.Zero),
	}
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func (c Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name, c.DB.SSLMode)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	}
	return fallback
}
