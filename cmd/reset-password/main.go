// Command reset-password sets a user's password directly in the database.
//
//	reset-password -email admin@example.com -password newsecret
package main

import (
	"context"
	"flag"
	"log"

	"product-catalog-api/internal/config"
	"product-catalog-api/internal/repository"
	"product-catalog-api/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}
	cfg := config.Load()

	email := flag.String("email", cfg.AdminEmail, "account email")
	password := flag.String("password", cfg.AdminPassword, "new password")
	flag.Parse()

	if len(*password) < 6 {
		log.Fatal("password must be at least 6 characters")
	}

	db := database.ConnectDB(cfg.DBDriver, cfg.DatabaseURL)
	users := repository.NewUserRepo(db)
	ctx := context.Background()

	user, err := users.FindByEmail(ctx, *email)
	if err != nil {
		log.Fatalf("User %s not found in database: %v", *email, err)
	}
	if err := user.SetPassword(*password); err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	// Clearing the token version signs out every existing session.
	user.TokenVersion = ""
	if err := users.Update(ctx, user); err != nil {
		log.Fatalf("Failed to update password in DB: %v", err)
	}

	log.Printf("Password for %s has been reset", *email)
}
