package handler

import (
	"product-catalog-api/internal/middleware"
	"product-catalog-api/internal/model"
	"product-catalog-api/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// Routes collects the handlers mounted under /api/v1.
type Routes struct {
	Users    repository.UserRepository
	Auth     *AuthHandler
	Lines    *ProductLineHandler
	Styles   *ProductStyleHandler
	Products *ProductHandler
	GraphQL  *GraphQLHandler
}

// Register mounts the REST and GraphQL routes on app.
func Register(app *fiber.App, r Routes) {
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", r.Auth.Login)
	auth.Post("/validate-token", r.Auth.ValidateToken)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(r.Users))
	view := middleware.RequirePrivilege(model.PrivilegeCatalogView)
	create := middleware.RequirePrivilege(model.PrivilegeCatalogCreate)
	update := middleware.RequirePrivilege(model.PrivilegeCatalogUpdate)
	remove := middleware.RequirePrivilege(model.PrivilegeCatalogDelete)

	// Product lines
	protected.Get("/product-lines", view, r.Lines.GetProductLines)
	protected.Get("/product-lines/:id", view, r.Lines.GetProductLine)
	protected.Post("/product-lines", create, r.Lines.CreateProductLine)
	protected.Put("/product-lines/:id", update, r.Lines.UpdateProductLine)
	protected.Delete("/product-lines/:id", remove, r.Lines.DeleteProductLine)

	// Product styles
	protected.Get("/product-styles", view, r.Styles.GetProductStyles)
	protected.Get("/product-styles/:id", view, r.Styles.GetProductStyle)
	protected.Get("/product-styles/:id/products", view, r.Styles.GetProducts)
	protected.Get("/product-styles/:id/registered-products", view, r.Styles.GetRegisteredProducts)
	protected.Post("/product-styles", create, r.Styles.CreateProductStyle)
	protected.Put("/product-styles/:id", update, r.Styles.UpdateProductStyle)
	protected.Delete("/product-styles/:id", remove, r.Styles.DeleteProductStyle)

	// Products
	protected.Get("/products/:id", view, r.Products.GetProduct)
	protected.Post("/products", create, r.Products.CreateProduct)
	protected.Put("/products/:id", update, r.Products.UpdateProduct)
	protected.Delete("/products/:id", remove, r.Products.DeleteProduct)

	// Registrations
	protected.Post("/registered-products", middleware.RequirePrivilege(model.PrivilegeProductRegister), r.Products.RegisterProduct)
	protected.Delete("/registered-products/:id", remove, r.Products.DeleteRegisteredProduct)

	protected.Post("/graphql", view, r.GraphQL.Query)
}
