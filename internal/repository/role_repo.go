package repository

import (
	"errors"

	"product-catalog-api/internal/model"

	"gorm.io/gorm"
)

type RoleRepository interface {
	FindAll() ([]model.Role, error)
	FindByCode(code string) (*model.Role, error)
	SeedDefaults(privileges []model.Privilege) error
}

type roleRepo struct {
	db *gorm.DB
}

func NewRoleRepo(db *gorm.DB) RoleRepository {
	return &roleRepo{db: db}
}

func (r *roleRepo) FindAll() ([]model.Role, error) {
	var roles []model.Role
	err := r.db.Preload("Privileges").Find(&roles).Error
	return roles, err
}

func (r *roleRepo) FindByCode(code string) (*model.Role, error) {
	var role model.Role
	err := r.db.Preload("Privileges").Where("code = ?", code).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// SeedDefaults creates missing default roles and grants privileges to any
// role that has none yet, following model.Grants.
func (r *roleRepo) SeedDefaults(privileges []model.Privilege) error {
	for _, defaultRole := range model.DefaultRoles {
		role := defaultRole
		err := r.db.Preload("Privileges").Where("code = ?", role.Code).First(&role).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := r.db.Create(&role).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if len(role.Privileges) > 0 {
			continue
		}
		granted := []model.Privilege{}
		for _, p := range privileges {
			if model.Grants(role.Code, p.Code) {
				granted = append(granted, p)
			}
		}
		if err := r.db.Model(&role).Association("Privileges").Replace(granted); err != nil {
			return err
		}
	}
	return nil
}
