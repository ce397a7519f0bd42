package service

import (
	"context"
	"fmt"

	"product-catalog-api/internal/model"
	"product-catalog-api/pkg/validator"
)

func (s *catalogService) ensureProductStyle(ctx context.Context, id uint) error {
	if _, err := s.styleRepo.FindByID(ctx, id); err != nil {
		return notFound(err, ErrProductStyleNotFound)
	}
	return nil
}

func (s *catalogService) CreateProduct(ctx context.Context, req *ProductRequest, actor Actor) (*model.Product, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	if err := s.ensureProductStyle(ctx, req.ProductStyleID); err != nil {
		return nil, err
	}
	if existing, err := s.productRepo.FindBySKU(ctx, req.SKU); err == nil && existing != nil {
		return nil, ErrSKUExists
	}

	product := &model.Product{
		Name:           req.Name,
		Description:    req.Description,
		SKU:            req.SKU,
		Image:          normalizeImage(req.Image),
		ProductStyleID: req.ProductStyleID,
	}
	if req.Status != nil {
		product.Status = *req.Status
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.publish("product_created", "product", product.ID, product, actor,
		fmt.Sprintf("%s created product '%s'", actor.Name, product.Name))
	return product, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, id uint, req *UpdateProductRequest, actor Actor) (*model.Product, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrProductNotFound)
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.SKU != nil && *req.SKU != product.SKU {
		if existing, err := s.productRepo.FindBySKU(ctx, *req.SKU); err == nil && existing != nil {
			return nil, ErrSKUExists
		}
		product.SKU = *req.SKU
	}
	if req.Image != nil {
		product.Image = normalizeImage(req.Image)
	}
	if req.Status != nil {
		product.Status = *req.Status
	}
	if req.ProductStyleID != nil && *req.ProductStyleID != product.ProductStyleID {
		if err := s.ensureProductStyle(ctx, *req.ProductStyleID); err != nil {
			return nil, err
		}
		product.ProductStyleID = *req.ProductStyleID
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, notFound(err, ErrProductNotFound)
	}

	s.publish("product_updated", "product", product.ID, product, actor,
		fmt.Sprintf("%s updated product '%s'", actor.Name, product.Name))
	return product, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrProductNotFound)
	}
	return product, nil
}

func (s *catalogService) DeactivateProduct(ctx context.Context, id uint, actor Actor) error {
	if err := s.productRepo.UpdateStatus(ctx, id, model.StatusInactive); err != nil {
		return notFound(err, ErrProductNotFound)
	}
	s.publish("product_deactivated", "product", id, nil, actor,
		fmt.Sprintf("%s deactivated product #%d", actor.Name, id))
	return nil
}

func (s *catalogService) RegisterProduct(ctx context.Context, req *RegisterProductRequest, actor Actor) (*model.RegisteredProduct, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	if err := s.ensureProductStyle(ctx, req.ProductStyleID); err != nil {
		return nil, err
	}
	if existing, err := s.registeredRepo.FindBySerial(ctx, req.SerialNumber); err == nil && existing != nil {
		return nil, ErrSerialExists
	}

	rp := &model.RegisteredProduct{
		SerialNumber:   req.SerialNumber,
		OwnerName:      req.OwnerName,
		OwnerEmail:     req.OwnerEmail,
		PurchasedAt:    req.PurchasedAt,
		ProductStyleID: req.ProductStyleID,
	}
	if err := s.registeredRepo.Create(ctx, rp); err != nil {
		return nil, fmt.Errorf("register product: %w", err)
	}

	s.publish("product_registered", "registered_product", rp.ID, rp, actor,
		fmt.Sprintf("%s registered serial '%s'", actor.Name, rp.SerialNumber))
	return rp, nil
}

func (s *catalogService) ListRegisteredProducts(ctx context.Context, styleID uint, status *model.Status) ([]model.RegisteredProduct, error) {
	if err := s.ensureProductStyle(ctx, styleID); err != nil {
		return nil, err
	}
	return s.registeredRepo.FindByStyle(ctx, styleID, orDefault(status))
}

func (s *catalogService) DeactivateRegisteredProduct(ctx context.Context, id uint, actor Actor) error {
	if err := s.registeredRepo.UpdateStatus(ctx, id, model.StatusInactive); err != nil {
		return notFound(err, ErrRegisteredProductNotFound)
	}
	s.publish("registered_product_deactivated", "registered_product", id, nil, actor,
		fmt.Sprintf("%s deactivated registration #%d", actor.Name, id))
	return nil
}
