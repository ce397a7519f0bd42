package repository

import (
	"errors"

	"product-catalog-api/internal/model"

	"gorm.io/gorm"
)

type PrivilegeRepository interface {
	FindAll() ([]model.Privilege, error)
	SeedDefaults() ([]model.Privilege, error)
}

type privilegeRepo struct {
	db *gorm.DB
}

func NewPrivilegeRepo(db *gorm.DB) PrivilegeRepository {
	return &privilegeRepo{db}
}

func (r *privilegeRepo) FindAll() ([]model.Privilege, error) {
	var privileges []model.Privilege
	if err := r.db.Order("id ASC").Find(&privileges).Error; err != nil {
		return nil, err
	}
	return privileges, nil
}

// SeedDefaults creates default privileges if they don't exist and returns
// the full set.
func (r *privilegeRepo) SeedDefaults() ([]model.Privilege, error) {
	for _, p := range model.DefaultPrivileges {
		p := p
		var existing model.Privilege
		err := r.db.Where("code = ?", p.Code).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := r.db.Create(&p).Error; err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}
	}
	return r.FindAll()
}
