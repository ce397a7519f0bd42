package model

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	SKU         string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku"`
	Image       *string   `gorm:"type:text" json:"image,omitempty"`
	Status      Status    `gorm:"type:record_status;not null;default:ACTIVE" json:"status"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime;<-:create" json:"created_at"`

	// Owning side of ProductStyle.ProductRelation
	ProductStyleID uint          `gorm:"not null;index" json:"product_style_id"`
	ProductStyle   *ProductStyle `gorm:"foreignKey:ProductStyleID" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	defaultStatus(&p.Status)
	return nil
}

func (p Product) GetStatus() Status {
	return p.Status
}

// ProductStyleRef returns the owning style, resolved already if it was preloaded.
func (p *Product) ProductStyleRef(load Loader[uint, ProductStyle]) *Lazy[ProductStyle] {
	if p.ProductStyle != nil {
		return Resolved(p.ProductStyle)
	}
	id := p.ProductStyleID
	return NewLazy(func(ctx context.Context) (*ProductStyle, error) {
		return load(ctx, id)
	})
}
