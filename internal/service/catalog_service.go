package service

import (
	"context"
	"errors"
	"fmt"

	"product-catalog-api/internal/model"
	"product-catalog-api/internal/repository"
	"product-catalog-api/internal/ws"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")

	ErrProductLineNotFound       = fmt.Errorf("product line %w", ErrNotFound)
	ErrProductStyleNotFound      = fmt.Errorf("product style %w", ErrNotFound)
	ErrProductNotFound           = fmt.Errorf("product %w", ErrNotFound)
	ErrRegisteredProductNotFound = fmt.Errorf("registered product %w", ErrNotFound)
	ErrCreatorNotFound           = fmt.Errorf("creator %w", ErrNotFound)

	ErrSKUExists    = fmt.Errorf("SKU %w", ErrConflict)
	ErrSerialExists = fmt.Errorf("serial number %w", ErrConflict)
)

// Actor identifies the authenticated user performing a mutation.
type Actor struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type CatalogService interface {
	CreateProductLine(ctx context.Context, req *ProductLineRequest, actor Actor) (*model.ProductLine, error)
	UpdateProductLine(ctx context.Context, id uint, req *UpdateProductLineRequest, actor Actor) (*model.ProductLine, error)
	GetProductLine(ctx context.Context, id uint) (*model.ProductLine, error)
	ListProductLines(ctx context.Context, status *model.Status) ([]model.ProductLine, error)
	DeactivateProductLine(ctx context.Context, id uint, actor Actor) error

	CreateProductStyle(ctx context.Context, req *ProductStyleRequest, actor Actor) (*model.ProductStyle, error)
	UpdateProductStyle(ctx context.Context, id uint, req *UpdateProductStyleRequest, actor Actor) (*model.ProductStyle, error)
	GetProductStyle(ctx context.Context, id uint) (*model.ProductStyle, error)
	ListProductStyles(ctx context.Context, status *model.Status, productLineID *uint) ([]model.ProductStyle, error)
	GetStyleProducts(ctx context.Context, styleID uint, status *model.Status) ([]model.Product, error)
	DeactivateProductStyle(ctx context.Context, id uint, actor Actor) error

	CreateProduct(ctx context.Context, req *ProductRequest, actor Actor) (*model.Product, error)
	UpdateProduct(ctx context.Context, id uint, req *UpdateProductRequest, actor Actor) (*model.Product, error)
	GetProduct(ctx context.Context, id uint) (*model.Product, error)
	DeactivateProduct(ctx context.Context, id uint, actor Actor) error

	RegisterProduct(ctx context.Context, req *RegisterProductRequest, actor Actor) (*model.RegisteredProduct, error)
	ListRegisteredProducts(ctx context.Context, styleID uint, status *model.Status) ([]model.RegisteredProduct, error)
	DeactivateRegisteredProduct(ctx context.Context, id uint, actor Actor) error
}

type catalogService struct {
	lineRepo       repository.ProductLineRepository
	styleRepo      repository.ProductStyleRepository
	productRepo    repository.ProductRepository
	registeredRepo repository.RegisteredProductRepository
	userRepo       repository.UserRepository
	wsHub          *ws.Hub
}

// Repositories bundles what CatalogService needs.
type Repositories struct {
	Lines      repository.ProductLineRepository
	Styles     repository.ProductStyleRepository
	Products   repository.ProductRepository
	Registered repository.RegisteredProductRepository
	Users      repository.UserRepository
}

func NewCatalogService(repos Repositories, hub *ws.Hub) CatalogService {
	return &catalogService{
		lineRepo:       repos.Lines,
		styleRepo:      repos.Styles,
		productRepo:    repos.Products,
		registeredRepo: repos.Registered,
		userRepo:       repos.Users,
		wsHub:          hub,
	}
}

// notFound translates gorm.ErrRecordNotFound into the entity's sentinel.
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

// orDefault applies the "nil means visible" rule for list endpoints.
func orDefault(status *model.Status) *model.Status {
	if status != nil {
		return status
	}
	s := model.VisibleByDefault
	return &s
}

// normalizeImage maps an explicit empty string to "no image".
func normalizeImage(image *string) *string {
	if image == nil || *image == "" {
		return nil
	}
	v := *image
	return &v
}

func (s *catalogService) publish(action, entity string, id uint, data interface{}, actor Actor, message string) {
	s.wsHub.Publish(ws.Event{
		Type:    "catalog_update",
		Action:  action,
		Entity:  entity,
		ID:      id,
		Data:    data,
		UserID:  actor.ID.String(),
		Message: message,
	})
}

func (s *catalogService) ensureUser(ctx context.Context, id uuid.UUID) error {
	if _, err := s.userRepo.Loader()(ctx, id); err != nil {
		return notFound(err, ErrCreatorNotFound)
	}
	return nil
}
