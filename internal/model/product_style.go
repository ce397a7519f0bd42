package model

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductStyle is a variant grouping inside a ProductLine. Products and
// registered products point at it; it never owns those rows.
//
// CreatedBy and ProductLine are kept for foreign keys and explicit
// preloading only. Repositories never preload them, so walking
// line -> styles -> products cannot recurse; use CreatorRef and
// ProductLineRef to resolve them on demand.
type ProductStyle struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Image       *string   `gorm:"type:text" json:"image,omitempty"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime;<-:create" json:"created_at"`

	CreatedByID uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by_id"`
	CreatedBy   *User     `gorm:"foreignKey:CreatedByID" json:"-"`

	Status Status `gorm:"type:record_status;not null;default:ACTIVE" json:"status"`

	ProductLineID uint         `gorm:"not null;index" json:"product_line_id"`
	ProductLine   *ProductLine `gorm:"foreignKey:ProductLineID" json:"-"`

	// Back-references, filled by preloading only.
	ProductRelation    []Product           `gorm:"foreignKey:ProductStyleID" json:"-"`
	RegisteredProducts []RegisteredProduct `gorm:"foreignKey:ProductStyleID" json:"-"`
}

func (ProductStyle) TableName() string {
	return "product_styles"
}

func (s *ProductStyle) BeforeCreate(tx *gorm.DB) error {
	defaultStatus(&s.Status)
	return nil
}

func (s ProductStyle) GetStatus() Status {
	return s.Status
}

// GetProducts filters the loaded products by status. A nil status selects
// the active ones. It never fetches.
func (s *ProductStyle) GetProducts(status *Status) []Product {
	return FilterByStatus(s.ProductRelation, status)
}

// CreatorRef returns the creator, resolved already if it was preloaded.
func (s *ProductStyle) CreatorRef(load Loader[uuid.UUID, User]) *Lazy[User] {
	if s.CreatedBy != nil {
		return Resolved(s.CreatedBy)
	}
	id := s.CreatedByID
	return NewLazy(func(ctx context.Context) (*User, error) {
		return load(ctx, id)
	})
}

// ProductLineRef returns the parent line, resolved already if it was preloaded.
func (s *ProductStyle) ProductLineRef(load Loader[uint, ProductLine]) *Lazy[ProductLine] {
	if s.ProductLine != nil {
		return Resolved(s.ProductLine)
	}
	id := s.ProductLineID
	return NewLazy(func(ctx context.Context) (*ProductLine, error) {
		return load(ctx, id)
	})
}

// ProductStyleResponse for API responses
type ProductStyleResponse struct {
	ID                 uint                `json:"id"`
	Name               string              `json:"name"`
	Description        string              `json:"description"`
	Image              *string             `json:"image,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	CreatedByID        uuid.UUID           `json:"created_by_id"`
	Status             Status              `json:"status"`
	ProductLineID      uint                `json:"product_line_id"`
	Products           []Product           `json:"products"`
	RegisteredProducts []RegisteredProduct `json:"registered_products"`
}

// ToResponse renders the style with its products filtered by productStatus.
func (s *ProductStyle) ToResponse(productStatus *Status) ProductStyleResponse {
	registered := s.RegisteredProducts
	if registered == nil {
		registered = []RegisteredProduct{}
	}
	return ProductStyleResponse{
		ID:                 s.ID,
		Name:               s.Name,
		Description:        s.Description,
		Image:              s.Image,
		CreatedAt:          s.CreatedAt,
		CreatedByID:        s.CreatedByID,
		Status:             s.Status,
		ProductLineID:      s.ProductLineID,
		Products:           s.GetProducts(productStatus),
		RegisteredProducts: registered,
	}
}
