package service

import (
	"context"
	"fmt"

	"product-catalog-api/internal/model"
	"product-catalog-api/pkg/validator"
)

func (s *catalogService) CreateProductLine(ctx context.Context, req *ProductLineRequest, actor Actor) (*model.ProductLine, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	line := &model.ProductLine{
		Name:        req.Name,
		Description: req.Description,
		Image:       normalizeImage(req.Image),
		CreatedByID: actor.ID,
	}
	if req.Status != nil {
		line.Status = *req.Status
	}
	if err := s.lineRepo.Create(ctx, line); err != nil {
		return nil, fmt.Errorf("create product line: %w", err)
	}

	s.publish("product_line_created", "product_line", line.ID, line, actor,
		fmt.Sprintf("%s created product line '%s'", actor.Name, line.Name))
	return line, nil
}

func (s *catalogService) UpdateProductLine(ctx context.Context, id uint, req *UpdateProductLineRequest, actor Actor) (*model.ProductLine, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	line, err := s.lineRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrProductLineNotFound)
	}
	if req.Name != nil {
		line.Name = *req.Name
	}
	if req.Description != nil {
		line.Description = *req.Description
	}
	if req.Image != nil {
		line.Image = normalizeImage(req.Image)
	}
	if req.Status != nil {
		line.Status = *req.Status
	}

	if err := s.lineRepo.Update(ctx, line); err != nil {
		return nil, notFound(err, ErrProductLineNotFound)
	}

	s.publish("product_line_updated", "product_line", line.ID, line.ToResponse(nil), actor,
		fmt.Sprintf("%s updated product line '%s'", actor.Name, line.Name))
	return line, nil
}

func (s *catalogService) GetProductLine(ctx context.Context, id uint) (*model.ProductLine, error) {
	line, err := s.lineRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrProductLineNotFound)
	}
	return line, nil
}

func (s *catalogService) ListProductLines(ctx context.Context, status *model.Status) ([]model.ProductLine, error) {
	return s.lineRepo.FindAll(ctx, orDefault(status))
}

// DeactivateProductLine soft-deletes the line. Its styles keep their own
// status.
func (s *catalogService) DeactivateProductLine(ctx context.Context, id uint, actor Actor) error {
	if err := s.lineRepo.UpdateStatus(ctx, id, model.StatusInactive); err != nil {
		return notFound(err, ErrProductLineNotFound)
	}
	s.publish("product_line_deactivated", "product_line", id, nil, actor,
		fmt.Sprintf("%s deactivated product line #%d", actor.Name, id))
	return nil
}
