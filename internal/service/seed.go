package service

import (
	"context"
	"errors"
	"fmt"

	"product-catalog-api/internal/model"
	"product-catalog-api/internal/repository"

	"gorm.io/gorm"
)

// SeedDefaults creates default privileges, roles, and the admin account if
// they don't exist. It reports whether the admin account was created.
func SeedDefaults(ctx context.Context, privileges repository.PrivilegeRepository, roles repository.RoleRepository, users repository.UserRepository, adminEmail, adminPassword string) (bool, error) {
	all, err := privileges.SeedDefaults()
	if err != nil {
		return false, fmt.Errorf("seed privileges: %w", err)
	}
	if err := roles.SeedDefaults(all); err != nil {
		return false, fmt.Errorf("seed roles: %w", err)
	}

	_, err = users.FindByEmail(ctx, adminEmail)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	adminRole, err := roles.FindByCode(model.RoleCatalogAdmin)
	if err != nil {
		return false, fmt.Errorf("find admin role: %w", err)
	}
	admin := &model.User{
		Email:      adminEmail,
		FullName:   "Catalog Administrator",
		RoleID:     &adminRole.ID,
		IsActive:   true,
		Privileges: adminRole.Privileges,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"
	if err := admin.SetPassword(adminPassword); err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}
	if err := users.Create(ctx, admin); err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	return true, nil
}
