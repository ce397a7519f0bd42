package handler

import (
	"strconv"

	applog "product-catalog-api/internal/log"
	"product-catalog-api/internal/model"
	"product-catalog-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductStyleHandler struct {
	service service.CatalogService
}

func NewProductStyleHandler(s service.CatalogService) *ProductStyleHandler {
	return &ProductStyleHandler{service: s}
}

// GetProductStyles lists styles.
// Query params: status (default ACTIVE), product_line_id, product_status
// GET /api/v1/product-styles
func (h *ProductStyleHandler) GetProductStyles(c *fiber.Ctx) error {
	status, err := statusQuery(c, "status")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	productStatus, err := statusQuery(c, "product_status")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	var lineID *uint
	if raw := c.Query("product_line_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid product_line_id"})
		}
		id := uint(v)
		lineID = &id
	}

	styles, err := h.service.ListProductStyles(c.UserContext(), status, lineID)
	if err != nil {
		return fail(c, err)
	}
	out := make([]model.ProductStyleResponse, len(styles))
	for i := range styles {
		out[i] = styles[i].ToResponse(productStatus)
	}
	return c.JSON(out)
}

// GET /api/v1/product-styles/:id
func (h *ProductStyleHandler) GetProductStyle(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product style ID"})
	}
	productStatus, err := statusQuery(c, "product_status")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	style, err := h.service.GetProductStyle(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(style.ToResponse(productStatus))
}

// GetProducts returns the style's products filtered by ?status (default ACTIVE).
// GET /api/v1/product-styles/:id/products
func (h *ProductStyleHandler) GetProducts(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product style ID"})
	}
	status, err := statusQuery(c, "status")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	products, err := h.service.GetStyleProducts(c.UserContext(), id, status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(products)
}

// GET /api/v1/product-styles/:id/registered-products
func (h *ProductStyleHandler) GetRegisteredProducts(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product style ID"})
	}
	status, err := statusQuery(c, "status")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	list, err := h.service.ListRegisteredProducts(c.UserContext(), id, status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// POST /api/v1/product-styles
func (h *ProductStyleHandler) CreateProductStyle(c *fiber.Ctx) error {
	var req service.ProductStyleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	style, err := h.service.CreateProductStyle(c.UserContext(), &req, actor(c))
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "product_style.create", map[string]any{"id": style.ID, "product_line_id": style.ProductLineID})
	return c.Status(201).JSON(fiber.Map{"message": "Product style created", "data": style.ToResponse(nil)})
}

// PUT /api/v1/product-styles/:id
func (h *ProductStyleHandler) UpdateProductStyle(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product style ID"})
	}
	var req service.UpdateProductStyleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	style, err := h.service.UpdateProductStyle(c.UserContext(), id, &req, actor(c))
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "product_style.update", map[string]any{"id": id})
	return c.JSON(fiber.Map{"message": "Product style updated", "data": style.ToResponse(nil)})
}

// DeleteProductStyle is a soft delete: the style becomes INACTIVE.
// DELETE /api/v1/product-styles/:id
func (h *ProductStyleHandler) DeleteProductStyle(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product style ID"})
	}
	if err := h.service.DeactivateProductStyle(c.UserContext(), id, actor(c)); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "product_style.deactivate", map[string]any{"id": id})
	return c.JSON(fiber.Map{"message": "Product style deactivated"})
}
