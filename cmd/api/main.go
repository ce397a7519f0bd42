package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"product-catalog-api/internal/config"
	"product-catalog-api/internal/graph"
	"product-catalog-api/internal/handler"
	"product-catalog-api/internal/repository"
	"product-catalog-api/internal/service"
	"product-catalog-api/internal/ws"
	"product-catalog-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	// 2. Setup Database
	db := database.ConnectDB(cfg.DBDriver, cfg.DatabaseURL)
	if cfg.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
	}

	// 3. Repositories
	userRepo := repository.NewUserRepo(db)
	privilegeRepo := repository.NewPrivilegeRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	lineRepo := repository.NewProductLineRepo(db)
	styleRepo := repository.NewProductStyleRepo(db)

	// 4. Seed default privileges, roles, and admin user
	created, err := service.SeedDefaults(context.Background(), privilegeRepo, roleRepo, userRepo, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		log.Printf("Warning: seeding failed: %v", err)
	} else if created {
		log.Printf("Admin user created: %s", cfg.AdminEmail)
	}

	// 5. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 6. Dependency Injection
	catalogService := service.NewCatalogService(service.Repositories{
		Lines:      lineRepo,
		Styles:     styleRepo,
		Products:   repository.NewProductRepo(db),
		Registered: repository.NewRegisteredProductRepo(db),
		Users:      userRepo,
	}, wsHub)
	authService := service.NewAuthService(userRepo)

	schema, err := graph.NewSchema(&graph.Resolver{
		Catalog: catalogService,
		Users:   userRepo.Loader(),
		Lines:   lineRepo.Loader(),
		Styles:  styleRepo.Loader(),
	})
	if err != nil {
		log.Fatalf("GraphQL schema: %v", err)
	}

	authHandler := handler.NewAuthHandler(authService)
	lineHandler := handler.NewProductLineHandler(catalogService)
	styleHandler := handler.NewProductStyleHandler(catalogService)
	productHandler := handler.NewProductHandler(catalogService)
	graphHandler := handler.NewGraphQLHandler(schema)

	// 7. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: cfg.AppName,
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	handler.Register(app, handler.Routes{
		Users:    userRepo,
		Auth:     authHandler,
		Lines:    lineHandler,
		Styles:   styleHandler,
		Products: productHandler,
		GraphQL:  graphHandler,
	})

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

