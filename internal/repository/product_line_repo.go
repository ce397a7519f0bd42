package repository

import (
	"context"

	"product-catalog-api/internal/model"

	"gorm.io/gorm"
)

type ProductLineRepository interface {
	Create(ctx context.Context, line *model.ProductLine) error
	FindByID(ctx context.Context, id uint) (*model.ProductLine, error)
	FindAll(ctx context.Context, status *model.Status) ([]model.ProductLine, error)
	Update(ctx context.Context, line *model.ProductLine) error
	UpdateStatus(ctx context.Context, id uint, status model.Status) error
	Loader() model.Loader[uint, model.ProductLine]
}

type productLineRepo struct {
	db *gorm.DB
}

func NewProductLineRepo(db *gorm.DB) ProductLineRepository {
	return &productLineRepo{db}
}

// withStyles preloads styles and their products, one level each. A style's
// own ProductLine is never preloaded.
func (r *productLineRepo) withStyles(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("ProductStyles", orderByID("product_styles")).
		Preload("ProductStyles.ProductRelation", orderByID("products")).
		Preload("ProductStyles.RegisteredProducts", orderByID("registered_products"))
}

func (r *productLineRepo) Create(ctx context.Context, line *model.ProductLine) error {
	return r.db.WithContext(ctx).Omit("CreatedBy", "ProductStyles").Create(line).Error
}

func (r *productLineRepo) FindByID(ctx context.Context, id uint) (*model.ProductLine, error) {
	var line model.ProductLine
	if err := r.withStyles(ctx).First(&line, id).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *productLineRepo) FindAll(ctx context.Context, status *model.Status) ([]model.ProductLine, error) {
	var lines []model.ProductLine
	if err := byStatus(r.withStyles(ctx), status).Order("id ASC").Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *productLineRepo) Update(ctx context.Context, line *model.ProductLine) error {
	res := r.db.WithContext(ctx).Model(line).
		Select("name", "description", "image", "status", "created_by_id").
		Updates(line)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productLineRepo) UpdateStatus(ctx context.Context, id uint, status model.Status) error {
	return updateStatus(ctx, r.db, &model.ProductLine{}, id, status)
}

func (r *productLineRepo) Loader() model.Loader[uint, model.ProductLine] {
	return r.FindByID
}
