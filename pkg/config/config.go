package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server Server
	Engine Engine
	Events Events
	Sentry Sentry
}

// Server holds HTTP server configuration
type Server struct {
	Port         string
	Environment  string
	ServiceName  string
	ReadTimeout  int
	WriteTimeout int
	CORSOrigins  string // Comma-separated list of allowed origins
}

// Engine holds fraud scoring thresholds. Defaults match the scoring
// contract the rest of the CrediScore platform expects; override with care.
type Engine struct {
	FraudThreshold       int     // risk score above which a review is fraudulent
	LowReputation        int     // user reputation below this is penalized
	ReceiptConfidenceMin float64 // extraction confidence below this is penalized
}

// Events holds NATS event publishing configuration
type Events struct {
	URL     string
	Subject string
	Enabled bool
}

// Sentry holds Sentry error reporting configuration
type Sentry struct {
	DSN     string
	Enabled bool
}

// Load loads configuration from environment variables
func Load(serviceName string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Server: Server{
			Port:         getEnv("PORT", "8000"),
			Environment:  getEnv("ENVIRONMENT", "development"),
			ServiceName:  serviceName,
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 10),
			CORSOrigins:  getEnv("CORS_ORIGINS", "http://localhost:3000"),
		},
		Engine: Engine{
			FraudThreshold:       getEnvAsInt("FRAUD_THRESHOLD", 60),
			LowReputation:        getEnvAsInt("LOW_REPUTATION_THRESHOLD", 30),
			ReceiptConfidenceMin: getEnvAsFloat("RECEIPT_CONFIDENCE_MIN", 0.5),
		},
		Events: Events{
			URL:     getEnv("NATS_URL", "nats://localhost:4222"),
			Subject: getEnv("NATS_SUBJECT", "fraud.review.scored"),
			Enabled: getEnvAsBool("NATS_ENABLED", false),
		},
		Sentry: Sentry{
			DSN:     getEnv("SENTRY_DSN", ""),
			Enabled: getEnvAsBool("SENTRY_ENABLED", false),
		},
	}

	return cfg, nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
