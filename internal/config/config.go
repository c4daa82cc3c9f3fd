package config

import (
	"os"
	"strconv"
	"time"
)

// Environments recognised by APP_ENV.
const (
	EnvLocal       = "local"
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// LocalSQLiteFile is the embedded database used when running with APP_ENV=local.
const LocalSQLiteFile = "database.sqlite"

type Config struct {
	AppEnv  string
	Port    string
	GinMode string

	JWTSecret string
	JWTTTL    time.Duration

	DBDialect  string
	DBName     string
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string

	LogLevel string

	AuthRateLimitRPS   float64
	AuthRateLimitBurst int
}

func Load() *Config {
	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", EnvDevelopment),
		Port:               getEnv("PORT", "3000"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		JWTSecret:          getEnv("JWT_SECRET", "your-secret-key"),
		JWTTTL:             getEnvDuration("JWT_TTL", time.Hour),
		DBDialect:          getEnv("DB_DIALECT", "sqlite"),
		DBName:             getEnv("DB_NAME", LocalSQLiteFile),
		DBUser:             getEnv("DB_USER", "root"),
		DBPassword:         getEnv("DB_PASSWORD", ""),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "3306"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		AuthRateLimitRPS:   getEnvFloat("AUTH_RATE_LIMIT_RPS", 5),
		AuthRateLimitBurst: getEnvInt("AUTH_RATE_LIMIT_BURST", 20),
	}

	// Local runs always use the embedded file database.
	if cfg.IsLocal() {
		cfg.DBDialect = "sqlite"
		cfg.DBName = LocalSQLiteFile
	}

	return cfg
}

// IsLocal reports whether the process runs in local development mode.
func (c *Config) IsLocal() bool {
	return c.AppEnv == EnvLocal
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
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
