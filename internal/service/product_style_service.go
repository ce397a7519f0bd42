package service

import (
	"context"
	"fmt"

	"product-catalog-api/internal/model"
	"product-catalog-api/internal/repository"
	"product-catalog-api/pkg/validator"
)

func (s *catalogService) ensureProductLine(ctx context.Context, id uint) error {
	if _, err := s.lineRepo.FindByID(ctx, id); err != nil {
		return notFound(err, ErrProductLineNotFound)
	}
	return nil
}

func (s *catalogService) CreateProductStyle(ctx context.Context, req *ProductStyleRequest, actor Actor) (*model.ProductStyle, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	if err := s.ensureProductLine(ctx, req.ProductLineID); err != nil {
		return nil, err
	}

	style := &model.ProductStyle{
		Name:          req.Name,
		Description:   req.Description,
		Image:         normalizeImage(req.Image),
		CreatedByID:   actor.ID,
		ProductLineID: req.ProductLineID,
	}
	if req.Status != nil {
		style.Status = *req.Status
	}
	if err := s.styleRepo.Create(ctx, style); err != nil {
		return nil, fmt.Errorf("create product style: %w", err)
	}

	s.publish("product_style_created", "product_style", style.ID, style.ToResponse(nil), actor,
		fmt.Sprintf("%s created product style '%s'", actor.Name, style.Name))
	return style, nil
}

func (s *catalogService) UpdateProductStyle(ctx context.Context, id uint, req *UpdateProductStyleRequest, actor Actor) (*model.ProductStyle, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	style, err := s.styleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrProductStyleNotFound)
	}
	if req.Name != nil {
		style.Name = *req.Name
	}
	if req.Description != nil {
		style.Description = *req.Description
	}
	if req.Image != nil {
		style.Image = normalizeImage(req.Image)
	}
	if req.Status != nil {
		style.Status = *req.Status
	}
	if req.ProductLineID != nil && *req.ProductLineID != style.ProductLineID {
		if err := s.ensureProductLine(ctx, *req.ProductLineID); err != nil {
			return nil, err
		}
		style.ProductLineID = *req.ProductLineID
		style.ProductLine = nil
	}
	if req.CreatedByID != nil && *req.CreatedByID != style.CreatedByID {
		if err := s.ensureUser(ctx, *req.CreatedByID); err != nil {
			return nil, err
		}
		style.CreatedByID = *req.CreatedByID
		style.CreatedBy = nil
	}

	if err := s.styleRepo.Update(ctx, style); err != nil {
		return nil, notFound(err, ErrProductStyleNotFound)
	}

	s.publish("product_style_updated", "product_style", style.ID, style.ToResponse(nil), actor,
		fmt.Sprintf("%s updated product style '%s'", actor.Name, style.Name))
	return style, nil
}

func (s *catalogService) GetProductStyle(ctx context.Context, id uint) (*model.ProductStyle, error) {
	style, err := s.styleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrProductStyleNotFound)
	}
	return style, nil
}

func (s *catalogService) ListProductStyles(ctx context.Context, status *model.Status, productLineID *uint) ([]model.ProductStyle, error) {
	return s.styleRepo.FindAll(ctx, repository.StyleFilter{
		Status:        orDefault(status),
		ProductLineID: productLineID,
	})
}

// GetStyleProducts loads the style with its products and filters them in
// memory through GetProducts.
func (s *catalogService) GetStyleProducts(ctx context.Context, styleID uint, status *model.Status) ([]model.Product, error) {
	style, err := s.GetProductStyle(ctx, styleID)
	if err != nil {
		return nil, err
	}
	return style.GetProducts(status), nil
}

// DeactivateProductStyle soft-deletes the style. Products and registrations
// pointing at it are left untouched.
func (s *catalogService) DeactivateProductStyle(ctx context.Context, id uint, actor Actor) error {
	if err := s.styleRepo.UpdateStatus(ctx, id, model.StatusInactive); err != nil {
		return notFound(err, ErrProductStyleNotFound)
	}
	s.publish("product_style_deactivated", "product_style", id, nil, actor,
		fmt.Sprintf("%s deactivated product style #%d", actor.Name, id))
	return nil
}
