package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestRequirePrivilege(t *testing.T) {
	app := fiber.New()
	app.Get("/with/:privs", func(c *fiber.Ctx) error {
		if c.Params("privs") == "view" {
			c.Locals(LocalUserPrivileges, []string{"catalog:view"})
		}
		return c.Next()
	}, RequirePrivilege("catalog:view"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	cases := map[string]int{"/with/view": 204, "/with/none": 403}
	for path, want := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != want {
			t.Errorf("%s: status = %d, want %d", path, resp.StatusCode, want)
		}
	}
}

func TestBearerToken(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		tok, ok := bearerToken(c)
		if !ok {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendString(tok)
	})

	for header, want := range map[string]int{"Bearer abc": 200, "bearer abc": 200, "Token abc": 401, "Bearer": 401} {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != want {
			t.Errorf("%q: status = %d, want %d", header, resp.StatusCode, want)
		}
	}
}
