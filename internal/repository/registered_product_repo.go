package repository

import (
	"context"

	"product-catalog-api/internal/model"

	"gorm.io/gorm"
)

type RegisteredProductRepository interface {
	Create(ctx context.Context, rp *model.RegisteredProduct) error
	FindByID(ctx context.Context, id uint) (*model.RegisteredProduct, error)
	FindBySerial(ctx context.Context, serial string) (*model.RegisteredProduct, error)
	FindByStyle(ctx context.Context, styleID uint, status *model.Status) ([]model.RegisteredProduct, error)
	UpdateStatus(ctx context.Context, id uint, status model.Status) error
}

type registeredProductRepo struct {
	db *gorm.DB
}

func NewRegisteredProductRepo(db *gorm.DB) RegisteredProductRepository {
	return &registeredProductRepo{db}
}

func (r *registeredProductRepo) Create(ctx context.Context, rp *model.RegisteredProduct) error {
	return r.db.WithContext(ctx).Omit("ProductStyle").Create(rp).Error
}

func (r *registeredProductRepo) FindByID(ctx context.Context, id uint) (*model.RegisteredProduct, error) {
	var rp model.RegisteredProduct
	if err := r.db.WithContext(ctx).First(&rp, id).Error; err != nil {
		return nil, err
	}
	return &rp, nil
}

func (r *registeredProductRepo) FindBySerial(ctx context.Context, serial string) (*model.RegisteredProduct, error) {
	var rp model.RegisteredProduct
	if err := r.db.WithContext(ctx).First(&rp, "serial_number = ?", serial).Error; err != nil {
		return nil, err
	}
	return &rp, nil
}

func (r *registeredProductRepo) FindByStyle(ctx context.Context, styleID uint, status *model.Status) ([]model.RegisteredProduct, error) {
	var out []model.RegisteredProduct
	q := byStatus(r.db.WithContext(ctx).Where("product_style_id = ?", styleID), status)
	if err := q.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *registeredProductRepo) UpdateStatus(ctx context.Context, id uint, status model.Status) error {
	return updateStatus(ctx, r.db, &model.RegisteredProduct{}, id, status)
}
