package handler

import (
	"errors"
	"strconv"

	applog "product-catalog-api/internal/log"
	"product-catalog-api/internal/middleware"
	"product-catalog-api/internal/model"
	"product-catalog-api/internal/service"
	"product-catalog-api/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// actor builds the service actor from the locals set by RequireAuth.
func actor(c *fiber.Ctx) service.Actor {
	a := service.Actor{Name: "Unknown"}
	if id, ok := c.Locals(middleware.LocalUserID).(string); ok {
		a.ID, _ = uuid.Parse(id)
	}
	if name, ok := c.Locals(middleware.LocalUserName).(string); ok {
		a.Name = name
	}
	if email, ok := c.Locals(middleware.LocalUserEmail).(string); ok {
		a.Email = email
	}
	return a
}

func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// statusQuery reads an optional status query parameter. Absent means nil so
// the service applies its default.
func statusQuery(c *fiber.Ctx, key string) (*model.Status, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	s, err := model.ParseStatus(raw)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// fail maps service errors to HTTP statuses.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, validator.ErrInvalid):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	applog.Error(c, "request.failed", err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
}
