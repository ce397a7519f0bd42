package service

import (
	"time"

	"product-catalog-api/internal/model"

	"github.com/google/uuid"
)

type ProductLineRequest struct {
	Name        string        `json:"name" validate:"required,max=255"`
	Description string        `json:"description" validate:"required"`
	Image       *string       `json:"image"`
	Status      *model.Status `json:"status" validate:"omitempty,status"`
}

// UpdateProductLineRequest changes only the fields that are present.
type UpdateProductLineRequest struct {
	Name        *string       `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string       `json:"description" validate:"omitempty,min=1"`
	Image       *string       `json:"image"`
	Status      *model.Status `json:"status" validate:"omitempty,status"`
}

type ProductStyleRequest struct {
	Name          string        `json:"name" validate:"required,max=255"`
	Description   string        `json:"description" validate:"required"`
	Image         *string       `json:"image"`
	Status        *model.Status `json:"status" validate:"omitempty,status"`
	ProductLineID uint          `json:"product_line_id" validate:"required"`
}

type UpdateProductStyleRequest struct {
	Name          *string       `json:"name" validate:"omitempty,min=1,max=255"`
	Description   *string       `json:"description" validate:"omitempty,min=1"`
	Image         *string       `json:"image"`
	Status        *model.Status `json:"status" validate:"omitempty,status"`
	ProductLineID *uint         `json:"product_line_id" validate:"omitempty,gt=0"`
	CreatedByID   *uuid.UUID    `json:"created_by_id"`
}

type ProductRequest struct {
	Name           string        `json:"name" validate:"required,max=255"`
	Description    string        `json:"description" validate:"required"`
	SKU            string        `json:"sku" validate:"required,max=50"`
	Image          *string       `json:"image"`
	Status         *model.Status `json:"status" validate:"omitempty,status"`
	ProductStyleID uint          `json:"product_style_id" validate:"required"`
}

type UpdateProductRequest struct {
	Name           *string       `json:"name" validate:"omitempty,min=1,max=255"`
	Description    *string       `json:"description" validate:"omitempty,min=1"`
	SKU            *string       `json:"sku" validate:"omitempty,min=1,max=50"`
	Image          *string       `json:"image"`
	Status         *model.Status `json:"status" validate:"omitempty,status"`
	ProductStyleID *uint         `json:"product_style_id" validate:"omitempty,gt=0"`
}

type RegisterProductRequest struct {
	SerialNumber   string     `json:"serial_number" validate:"required,max=100"`
	OwnerName      string     `json:"owner_name" validate:"required,max=255"`
	OwnerEmail     string     `json:"owner_email" validate:"omitempty,email"`
	PurchasedAt    *time.Time `json:"purchased_at"`
	ProductStyleID uint       `json:"product_style_id" validate:"required"`
}
