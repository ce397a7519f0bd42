package repository

import (
	"context"

	"product-catalog-api/internal/model"

	"gorm.io/gorm"
)

// updateStatus moves one catalog row to status. A missing row reports
// gorm.ErrRecordNotFound.
func updateStatus(ctx context.Context, db *gorm.DB, dest interface{}, id uint, status model.Status) error {
	res := db.WithContext(ctx).Model(dest).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func byStatus(db *gorm.DB, status *model.Status) *gorm.DB {
	if status == nil {
		return db
	}
	return db.Where("status = ?", *status)
}

func orderByID(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(table + ".id ASC")
	}
}
