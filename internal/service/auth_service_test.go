package service_test

import (
	"context"
	"errors"
	"testing"

	"product-catalog-api/internal/model"
	"product-catalog-api/internal/repository"
	"product-catalog-api/internal/service"
	"product-catalog-api/pkg/database"
)

func TestSeedAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db, err := database.OpenSQLite(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	users := repository.NewUserRepo(db)

	created, err := service.SeedDefaults(ctx, repository.NewPrivilegeRepo(db), repository.NewRoleRepo(db), users, "admin@example.com", "admin123")
	if err != nil || !created {
		t.Fatalf("seed = %v, %v", created, err)
	}
	again, err := service.SeedDefaults(ctx, repository.NewPrivilegeRepo(db), repository.NewRoleRepo(db), users, "admin@example.com", "admin123")
	if err != nil || again {
		t.Fatalf("second seed = %v, %v", again, err)
	}

	auth := service.NewAuthService(users)
	if _, err := auth.Login(ctx, "admin@example.com", "wrong"); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}

	first, err := auth.Login(ctx, "admin@example.com", "admin123")
	if err != nil {
		t.Fatal(err)
	}
	if first.Role == nil || first.Role.Code != model.RoleCatalogAdmin {
		t.Fatalf("role = %+v", first.Role)
	}
	if len(first.Privileges) != len(model.DefaultPrivileges) {
		t.Fatalf("privileges = %v", first.Privileges)
	}

	v, err := auth.ValidateToken(ctx, first.Token)
	if err != nil || v.User.Email != "admin@example.com" {
		t.Fatalf("validate = %+v, %v", v, err)
	}

	// a second login replaces the first session
	if _, err := auth.Login(ctx, "admin@example.com", "admin123"); err != nil {
		t.Fatal(err)
	}
	if _, err := auth.ValidateToken(ctx, first.Token); !errors.Is(err, service.ErrSessionReplaced) {
		t.Fatalf("want ErrSessionReplaced, got %v", err)
	}
}
