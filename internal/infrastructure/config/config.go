package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type JWTConfig struct {
	Issuer     string
	HMACSecret string
}

type Config struct {
	GRPCPort         int
	HTTPPort         int
	DB               DatabaseConfig
	Kafka            KafkaConfig
	JWT              JWTConfig
	LogLevel         string
	EnableReflection bool
	ServiceName      string
}

func (c Config) Validate() {
	if c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required")
	}
	if c.JWT.HMACSecret == "" {
		panic("JWT_HMAC_SECRET environment variable is required")
	}
}

func Load() Config {
	return Config{
		GRPCPort: getEnvInt("GRPC_PORT", 9095),
		HTTPPort: getEnvInt("HTTP_PORT", 8095),
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "bib"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "bib_onboarding"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 10),
		},
		Kafka: KafkaConfig{
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			Topic:   getEnv("KAFKA_TOPIC", "onboarding.events"),
		},
		JWT: JWTConfig{
			Issuer:     getEnv("JWT_ISSUER", "bib-auth"),
			HMACSecret: getEnv("JWT_HMAC_SECRET", ""),
		},
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		EnableReflection: getEnvBool("GRPC_REFLECTION", false),
		ServiceName:      "onboarding-service",
	}
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
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
