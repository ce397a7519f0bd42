package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("DB_HOST", "db")
	t.Setenv("AUTO_MIGRATE", "not-a-bool")
	t.Setenv("DB_DRIVER", "")

	cfg := Load()
	if cfg.Port != "3000" {
		t.Fatalf("port = %s", cfg.Port)
	}
	if !cfg.AutoMigrate {
		t.Fatal("invalid AUTO_MIGRATE should fall back to true")
	}
	if !strings.Contains(cfg.DatabaseURL, "host=db") || !strings.Contains(cfg.DatabaseURL, "dbname=catalog") {
		t.Fatalf("unexpected dsn %s", cfg.DatabaseURL)
	}
}

func TestLoadDatabaseURLWins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@h/db")
	t.Setenv("AUTO_MIGRATE", "false")
	cfg := Load()
	if cfg.DatabaseURL != "postgres://u:p@h/db" || cfg.AutoMigrate {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadSQLiteDefaultPath(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_DRIVER", "sqlite")
	cfg := Load()
	if cfg.DatabaseURL != "catalog.db" {
		t.Fatalf("dsn = %s", cfg.DatabaseURL)
	}
}
