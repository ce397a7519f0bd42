package model

import (
	"time"

	"gorm.io/gorm"
)

// RegisteredProduct is a physical unit a customer registered against a style
// (warranty, ownership), identified by its serial number.
type RegisteredProduct struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	SerialNumber string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"serial_number"`
	OwnerName    string     `gorm:"type:varchar(255);not null" json:"owner_name"`
	OwnerEmail   string     `gorm:"type:varchar(255)" json:"owner_email,omitempty"`
	PurchasedAt  *time.Time `json:"purchased_at,omitempty"`
	Status       Status     `gorm:"type:record_status;not null;default:ACTIVE" json:"status"`
	CreatedAt    time.Time  `gorm:"not null;autoCreateTime;<-:create" json:"created_at"`

	ProductStyleID uint          `gorm:"not null;index" json:"product_style_id"`
	ProductStyle   *ProductStyle `gorm:"foreignKey:ProductStyleID" json:"-"`
}

func (RegisteredProduct) TableName() string {
	return "registered_products"
}

func (r *RegisteredProduct) BeforeCreate(tx *gorm.DB) error {
	defaultStatus(&r.Status)
	return nil
}

func (r RegisteredProduct) GetStatus() Status {
	return r.Status
}
