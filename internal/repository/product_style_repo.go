package repository

import (
	"context"

	"product-catalog-api/internal/model"

	"gorm.io/gorm"
)

// StyleFilter narrows FindAll. Nil fields do not filter.
type StyleFilter struct {
	Status        *model.Status
	ProductLineID *uint
}

type ProductStyleRepository interface {
	Create(ctx context.Context, style *model.ProductStyle) error
	FindByID(ctx context.Context, id uint) (*model.ProductStyle, error)
	FindAll(ctx context.Context, filter StyleFilter) ([]model.ProductStyle, error)
	Update(ctx context.Context, style *model.ProductStyle) error
	UpdateStatus(ctx context.Context, id uint, status model.Status) error
	Loader() model.Loader[uint, model.ProductStyle]
}

type productStyleRepo struct {
	db *gorm.DB
}

func NewProductStyleRepo(db *gorm.DB) ProductStyleRepository {
	return &productStyleRepo{db}
}

// withBackRefs preloads the rows that point at a style. CreatedBy and
// ProductLine are left for lazy resolution.
func (r *productStyleRepo) withBackRefs(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("ProductRelation", orderByID("products")).
		Preload("RegisteredProducts", orderByID("registered_products"))
}

func (r *productStyleRepo) Create(ctx context.Context, style *model.ProductStyle) error {
	return r.db.WithContext(ctx).Omit("CreatedBy", "ProductLine", "ProductRelation", "RegisteredProducts").Create(style).Error
}

func (r *productStyleRepo) FindByID(ctx context.Context, id uint) (*model.ProductStyle, error) {
	var style model.ProductStyle
	if err := r.withBackRefs(ctx).First(&style, id).Error; err != nil {
		return nil, err
	}
	return &style, nil
}

func (r *productStyleRepo) FindAll(ctx context.Context, filter StyleFilter) ([]model.ProductStyle, error) {
	q := byStatus(r.withBackRefs(ctx), filter.Status)
	if filter.ProductLineID != nil {
		q = q.Where("product_line_id = ?", *filter.ProductLineID)
	}
	var styles []model.ProductStyle
	if err := q.Order("id ASC").Find(&styles).Error; err != nil {
		return nil, err
	}
	return styles, nil
}

// Update writes the mutable columns only; id and created_at never change.
func (r *productStyleRepo) Update(ctx context.Context, style *model.ProductStyle) error {
	res := r.db.WithContext(ctx).Model(style).
		Select("name", "description", "image", "status", "product_line_id", "created_by_id").
		Updates(style)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productStyleRepo) UpdateStatus(ctx context.Context, id uint, status model.Status) error {
	return updateStatus(ctx, r.db, &model.ProductStyle{}, id, status)
}

func (r *productStyleRepo) Loader() model.Loader[uint, model.ProductStyle] {
	return r.FindByID
}
