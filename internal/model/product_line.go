package model

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductLine is the top of the catalog tree: line -> styles -> products.
type ProductLine struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Image       *string   `gorm:"type:text" json:"image,omitempty"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime;<-:create" json:"created_at"`

	CreatedByID uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by_id"`
	CreatedBy   *User     `gorm:"foreignKey:CreatedByID" json:"-"`

	Status Status `gorm:"type:record_status;not null;default:ACTIVE" json:"status"`

	ProductStyles []ProductStyle `gorm:"foreignKey:ProductLineID" json:"-"`
}

func (ProductLine) TableName() string {
	return "product_lines"
}

func (l *ProductLine) BeforeCreate(tx *gorm.DB) error {
	defaultStatus(&l.Status)
	return nil
}

func (l ProductLine) GetStatus() Status {
	return l.Status
}

// GetProductStyles filters the loaded styles the same way
// ProductStyle.GetProducts filters products.
func (l *ProductLine) GetProductStyles(status *Status) []ProductStyle {
	return FilterByStatus(l.ProductStyles, status)
}

func (l *ProductLine) CreatorRef(load Loader[uuid.UUID, User]) *Lazy[User] {
	if l.CreatedBy != nil {
		return Resolved(l.CreatedBy)
	}
	id := l.CreatedByID
	return NewLazy(func(ctx context.Context) (*User, error) {
		return load(ctx, id)
	})
}

type ProductLineResponse struct {
	ID            uint                   `json:"id"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description"`
	Image         *string                `json:"image,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	CreatedByID   uuid.UUID              `json:"created_by_id"`
	Status        Status                 `json:"status"`
	ProductStyles []ProductStyleResponse `json:"product_styles"`
}

func (l *ProductLine) ToResponse(styleStatus *Status) ProductLineResponse {
	styles := l.GetProductStyles(styleStatus)
	resp := ProductLineResponse{
		ID:            l.ID,
		Name:          l.Name,
		Description:   l.Description,
		Image:         l.Image,
		CreatedAt:     l.CreatedAt,
		CreatedByID:   l.CreatedByID,
		Status:        l.Status,
		ProductStyles: make([]ProductStyleResponse, len(styles)),
	}
	for i := range styles {
		resp.ProductStyles[i] = styles[i].ToResponse(nil)
	}
	return resp
}
