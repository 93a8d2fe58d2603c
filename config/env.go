package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv            string
	Port              string
	DatabaseURL       string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSSLMode         string
	MigrationsDir     string
	RedisURL          string
	RedisAddr         string
	RedisPassword     string
	JWTSecret         string
	JWTExpiry         string
	OriginURL         string
	OrderPrefix       string
	BaseOrderPoints   int
	IdempotencyTTL    time.Duration
	CatalogCacheTTL   time.Duration
	SideEffectRetries int
	WhatsAppNumber    string
	SeedFile          string
	TracingEnabled    bool
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = &Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		Port:              getEnv("APP_PORT", getEnv("PORT", "8082")),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBName:            getEnv("DB_NAME", "frushh"),
		DBSSLMode:         getEnv("DB_SSLMODE", "disable"),
		MigrationsDir:     getEnv("MIGRATIONS_DIR", "database/migration"),
		RedisURL:          getEnv("REDIS_URL", ""),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		JWTSecret:         getEnv("JWT_SECRET", "secret"),
		JWTExpiry:         getEnv("JWT_EXPIRY", "24h"),
		OriginURL:         getEnv("ORIGIN_URL", ""),
		OrderPrefix:       getEnv("ORDER_PREFIX", "FRS"),
		BaseOrderPoints:   getEnvInt("BASE_ORDER_POINTS", 10),
		IdempotencyTTL:    getEnvDuration("IDEMPOTENCY_LOCK_TTL", 30*time.Second),
		CatalogCacheTTL:   getEnvDuration("CATALOG_CACHE_TTL", 5*time.Minute),
		SideEffectRetries: getEnvInt("SIDE_EFFECT_RETRIES", 3),
		WhatsAppNumber:    getEnv("WHATSAPP_NUMBER", ""),
		SeedFile:          getEnv("SEED_FILE", ""),
		TracingEnabled:    getEnv("TRACING_ENABLED", "false") == "true",
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
