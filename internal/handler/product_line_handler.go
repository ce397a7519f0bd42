package handler

import (
	applog "product-catalog-api/internal/log"
	"product-catalog-api/internal/model"
	"product-catalog-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductLineHandler struct {
	service service.CatalogService
}

func NewProductLineHandler(s service.CatalogService) *ProductLineHandler {
	return &ProductLineHandler{service: s}
}

// GetProductLines lists lines; ?status= defaults to ACTIVE and
// ?style_status= filters the embedded styles.
// GET /api/v1/product-lines
func (h *ProductLineHandler) GetProductLines(c *fiber.Ctx) error {
	status, err := statusQuery(c, "status")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	styleStatus, err := statusQuery(c, "style_status")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	lines, err := h.service.ListProductLines(c.UserContext(), status)
	if err != nil {
		return fail(c, err)
	}
	out := make([]model.ProductLineResponse, len(lines))
	for i := range lines {
		out[i] = lines[i].ToResponse(styleStatus)
	}
	return c.JSON(out)
}

// GET /api/v1/product-lines/:id
func (h *ProductLineHandler) GetProductLine(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product line ID"})
	}
	styleStatus, err := statusQuery(c, "style_status")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	line, err := h.service.GetProductLine(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(line.ToResponse(styleStatus))
}

// POST /api/v1/product-lines
func (h *ProductLineHandler) CreateProductLine(c *fiber.Ctx) error {
	var req service.ProductLineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	line, err := h.service.CreateProductLine(c.UserContext(), &req, actor(c))
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "product_line.create", map[string]any{"id": line.ID})
	return c.Status(201).JSON(fiber.Map{"message": "Product line created", "data": line.ToResponse(nil)})
}

// PUT /api/v1/product-lines/:id
func (h *ProductLineHandler) UpdateProductLine(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product line ID"})
	}
	var req service.UpdateProductLineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	line, err := h.service.UpdateProductLine(c.UserContext(), id, &req, actor(c))
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "product_line.update", map[string]any{"id": id})
	return c.JSON(fiber.Map{"message": "Product line updated", "data": line.ToResponse(nil)})
}

// DeleteProductLine is a soft delete: the line becomes INACTIVE.
// DELETE /api/v1/product-lines/:id
func (h *ProductLineHandler) DeleteProductLine(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product line ID"})
	}
	if err := h.service.DeactivateProductLine(c.UserContext(), id, actor(c)); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "product_line.deactivate", map[string]any{"id": id})
	return c.JSON(fiber.Map{"message": "Product line deactivated"})
}
