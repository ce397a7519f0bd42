package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppName       string
	Port          string
	DBDriver      string
	DatabaseURL   string
	AutoMigrate   bool
	AdminEmail    string
	AdminPassword string
}

// Load reads the environment (after godotenv has populated it).
// DATABASE_URL wins over the individual DB_* variables.
func Load() Config {
	cfg := Config{
		AppName:       getenv("APP_NAME", "Product Catalog API v1.0"),
		Port:          getenv("PORT", "3000"),
		DBDriver:      getenv("DB_DRIVER", "postgres"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		AutoMigrate:   getbool("AUTO_MIGRATE", true),
		AdminEmail:    getenv("SEED_ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getenv("SEED_ADMIN_PASSWORD", "admin123"),
	}
	if cfg.DatabaseURL == "" && cfg.DBDriver == "sqlite" {
		cfg.DatabaseURL = "catalog.db"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			getenv("DB_HOST", "localhost"),
			getenv("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			getenv("DB_NAME", "catalog"),
			getenv("DB_PORT", "5432"),
			getenv("DB_SSLMODE", "disable"),
		)
	}
	log.Printf("[config] APP_NAME=%q PORT=%s DB_DRIVER=%s AUTO_MIGRATE=%v", cfg.AppName, cfg.Port, cfg.DBDriver, cfg.AutoMigrate)
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getbool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("[config] %s=%q is not a boolean, using %v", key, v, fallback)
		return fallback
	}
	return b
}
