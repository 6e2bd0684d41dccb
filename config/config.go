// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// AI providers understood by AI_PROVIDER.
const (
	AIProviderGemini = "gemini"
	AIProviderOpenAI = "openai"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	AI        AIConfig
	Market    MarketConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
	LogLevel     string
}

// DatabaseConfig holds database configuration. An empty URL selects the embedded SQLite file.
type DatabaseConfig struct {
	URL             string
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Seed            bool
}

// RedisConfig holds Redis configuration. An empty URL selects the in-process
// cache, bounded by MemoryCacheSize.
type RedisConfig struct {
	URL                    string
	Password               string
	DB                     int
	RecommendationCacheTTL time.Duration
	MemoryCacheSize        int
}

// AIConfig holds the advisor provider configuration.
type AIConfig struct {
	Provider      string
	GeminiAPIKey  string
	GeminiModel   string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	Timeout       time.Duration
	Temperature   float64
}

// MarketConfig holds the market data refresh configuration.
type MarketConfig struct {
	RefreshEnabled  bool
	RefreshSchedule string
	BCBBaseURL      string
	BCBTimeout      time.Duration
}

// RateLimitConfig holds the limits applied to the AI backed routes.
type RateLimitConfig struct {
	Enabled     bool
	MaxRequests int
	Window      time.Duration
}

// Load loads configuration from environment variables.
func Load() *Config {
	env := getEnv("ENV", "development")

	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 60*time.Second),
			Environment:  env,
			LogLevel:     getEnv("LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			SQLitePath:      getEnv("DATABASE_SQLITE_PATH", "dindin.db"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			Seed:            getEnvAsBool("DB_SEED", true),
		},
		Redis: RedisConfig{
			URL:                    getEnv("REDIS_URL", ""),
			Password:               getEnv("REDIS_PASSWORD", ""),
			DB:                     getEnvAsInt("REDIS_DB", 0),
			RecommendationCacheTTL: getEnvAsDuration("RECOMMENDATION_CACHE_TTL", 6*time.Hour),
			MemoryCacheSize:        getEnvAsInt("RECOMMENDATION_CACHE_SIZE", 1000),
		},
		AI: AIConfig{
			Provider:      getEnv("AI_PROVIDER", AIProviderGemini),
			GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
			GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash-lite"),
			OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
			OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			Timeout:       getEnvAsDuration("AI_TIMEOUT", 30*time.Second),
			Temperature:   getEnvAsFloat("AI_TEMPERATURE", 0.7),
		},
		Market: MarketConfig{
			RefreshEnabled:  getEnvAsBool("MARKET_REFRESH_ENABLED", false),
			RefreshSchedule: getEnv("MARKET_REFRESH_SCHEDULE", "0 0 */6 * * *"),
			BCBBaseURL:      getEnv("BCB_BASE_URL", "https://api.bcb.gov.br/dados/serie"),
			BCBTimeout:      getEnvAsDuration("BCB_TIMEOUT", 10*time.Second),
		},
		RateLimit: RateLimitConfig{
			// Skipped in E2E mode and in the test environment.
			Enabled:     os.Getenv("E2E_MODE") != "true" && env != "test",
			MaxRequests: getEnvAsInt("CHAT_RATE_LIMIT", 20),
			Window:      getEnvAsDuration("CHAT_RATE_WINDOW", time.Minute),
		},
	}
}

// IsProduction reports whether the server runs in production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
