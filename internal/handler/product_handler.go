package handler

import (
	applog "product-catalog-api/internal/log"
	"product-catalog-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler serves products and registered products.
type ProductHandler struct {
	service service.CatalogService
}

func NewProductHandler(s service.CatalogService) *ProductHandler {
	return &ProductHandler{service: s}
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}
	product, err := h.service.GetProduct(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	product, err := h.service.CreateProduct(c.UserContext(), &req, actor(c))
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "product.create", map[string]any{"id": product.ID, "sku": product.SKU})
	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}
	var req service.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	product, err := h.service.UpdateProduct(c.UserContext(), id, &req, actor(c))
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "product.update", map[string]any{"id": id})
	return c.JSON(fiber.Map{"message": "Product updated", "data": product})
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}
	if err := h.service.DeactivateProduct(c.UserContext(), id, actor(c)); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "product.deactivate", map[string]any{"id": id})
	return c.JSON(fiber.Map{"message": "Product deactivated"})
}

func (h *ProductHandler) RegisterProduct(c *fiber.Ctx) error {
	var req service.RegisterProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	rp, err := h.service.RegisterProduct(c.UserContext(), &req, actor(c))
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "registered_product.create", map[string]any{"id": rp.ID, "serial": rp.SerialNumber})
	return c.Status(201).JSON(fiber.Map{"message": "Product registered", "data": rp})
}

func (h *ProductHandler) DeleteRegisteredProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid registered product ID"})
	}
	if err := h.service.DeactivateRegisteredProduct(c.UserContext(), id, actor(c)); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "registered_product.deactivate", map[string]any{"id": id})
	return c.JSON(fiber.Map{"message": "Registration deactivated"})
}
