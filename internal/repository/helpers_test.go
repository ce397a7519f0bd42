package repository_test

import (
	"context"
	"testing"

	"product-catalog-api/internal/model"
	"product-catalog-api/internal/repository"
	"product-catalog-api/pkg/database"

	"gorm.io/gorm"
)

func memdb(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatal(err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	u := &model.User{Email: email, FullName: "Tester", IsActive: true}
	if err := u.SetPassword("secret1"); err != nil {
		t.Fatal(err)
	}
	if err := repository.NewUserRepo(db).Create(context.Background(), u); err != nil {
		t.Fatal(err)
	}
	return u
}

func seedLine(t *testing.T, db *gorm.DB, creator *model.User) *model.ProductLine {
	t.Helper()
	line := &model.ProductLine{Name: "Outdoor", Description: "Outdoor gear", CreatedByID: creator.ID}
	if err := repository.NewProductLineRepo(db).Create(context.Background(), line); err != nil {
		t.Fatal(err)
	}
	return line
}
