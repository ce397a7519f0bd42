package repository

import (
	"context"

	"product-catalog-api/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	FindBySKU(ctx context.Context, sku string) (*model.Product, error)
	FindByStyle(ctx context.Context, styleID uint, status *model.Status) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	UpdateStatus(ctx context.Context, id uint, status model.Status) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Omit("ProductStyle").Create(product).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindBySKU(ctx context.Context, sku string) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).First(&product, "sku = ?", sku).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindByStyle(ctx context.Context, styleID uint, status *model.Status) ([]model.Product, error) {
	var products []model.Product
	q := byStatus(r.db.WithContext(ctx).Where("product_style_id = ?", styleID), status)
	if err := q.Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepo) Update(ctx context.Context, product *model.Product) error {
	res := r.db.WithContext(ctx).Model(product).
		Select("name", "description", "sku", "image", "status", "product_style_id").
		Updates(product)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productRepo) UpdateStatus(ctx context.Context, id uint, status model.Status) error {
	return updateStatus(ctx, r.db, &model.Product{}, id, status)
}
