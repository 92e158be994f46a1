package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	SMTP      SMTPConfig
	Auth      AuthConfig
	Assistant AssistantConfig
	Cache     CacheConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	OtelEnabled        bool
	OtelEndpoint       string
	RateLimitMax       int
	RateLimitWindow    time.Duration
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host         string
	Port         int
	Email        string
	Password     string
	SenderName   string
	NotifyInbox  string // contractor inbox that receives new contact submissions
	NotifyEnable bool
}

type AuthConfig struct {
	JwtSecret      string
	AccessTokenTTL time.Duration
}

type AssistantConfig struct {
	Provider     string // "openai" (threads API) or "eino" (chat completions)
	BaseURL      string
	APIKey       string
	AssistantID  string
	Model        string
	SystemPrompt string
	Greeting     string // first widget message, empty to skip
	PollInterval time.Duration
	Timeout      time.Duration
}

type CacheConfig struct {
	Driver    string // "memory" or "redis"
	ThreadTTL time.Duration
}

const defaultSystemPrompt = "You are the friendly assistant of a family-owned roofing and home-improvement contractor. " +
	"Answer questions about roofing, gutters, siding and repairs, keep answers short, and invite the visitor " +
	"to leave their name and phone number for a free estimate."

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			OtelEnabled:        getEnvAsBool("OTEL_ENABLED", false),
			OtelEndpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			RateLimitMax:       getEnvAsInt("RATE_LIMIT_MAX", 20),
			RateLimitWindow:    getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:         getEnv("SMTP_HOST", ""),
			Port:         getEnvAsInt("SMTP_PORT", 587),
			Email:        getEnv("SMTP_EMAIL", ""),
			Password:     getEnv("SMTP_PASSWORD", ""),
			SenderName:   getEnv("SMTP_SENDER_NAME", "Roofing Website"),
			NotifyInbox:  getEnv("CONTACT_NOTIFY_INBOX", ""),
			NotifyEnable: getEnvAsBool("CONTACT_NOTIFY_ENABLED", false),
		},
		Auth: AuthConfig{
			JwtSecret:      getEnv("JWT_SECRET", "default_secret"),
			AccessTokenTTL: getEnvAsDuration("ACCESS_TOKEN_TTL", 24*time.Hour),
		},
		Assistant: AssistantConfig{
			Provider:     getEnv("ASSISTANT_PROVIDER", "openai"),
			BaseURL:      getEnv("ASSISTANT_BASE_URL", "https://api.openai.com/v1"),
			APIKey:       getEnv("ASSISTANT_API_KEY", ""),
			AssistantID:  getEnv("ASSISTANT_ID", ""),
			Model:        getEnv("ASSISTANT_MODEL", "gpt-4o-mini"),
			SystemPrompt: getEnv("ASSISTANT_SYSTEM_PROMPT", defaultSystemPrompt),
			Greeting:     getEnv("CHAT_GREETING", "Hi! Ask us anything about your roof, gutters or siding."),
			PollInterval: getEnvAsDuration("ASSISTANT_POLL_INTERVAL", 750*time.Millisecond),
			Timeout:      getEnvAsDuration("ASSISTANT_TIMEOUT", 60*time.Second),
		},
		Cache: CacheConfig{
			Driver:    getEnv("CACHE_DRIVER", "memory"),
			ThreadTTL: getEnvAsDuration("THREAD_CACHE_TTL", 24*time.Hour),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
