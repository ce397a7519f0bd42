package database

import (
	"fmt"
	"strings"

	"product-catalog-api/internal/model"

	"gorm.io/gorm"
)

// Migrate creates the status enum (PostgreSQL only), migrates every table
// and verifies the catalog tables against their field descriptions.
func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		if err := ensureStatusEnum(db); err != nil {
			return err
		}
	}

	if err := db.AutoMigrate(
		&model.Privilege{},
		&model.Role{},
		&model.User{},
		&model.ProductLine{},
		&model.ProductStyle{},
		&model.Product{},
		&model.RegisteredProduct{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	return VerifySchema(db, model.CatalogSpecs...)
}

func ensureStatusEnum(db *gorm.DB) error {
	values := make([]string, len(model.Statuses))
	for i, s := range model.Statuses {
		values[i] = "'" + string(s) + "'"
	}
	stmt := fmt.Sprintf(`DO $$ BEGIN
	CREATE TYPE %s AS ENUM (%s);
EXCEPTION WHEN duplicate_object THEN NULL;
END $$;`, model.StatusEnumType, strings.Join(values, ", "))

	if err := db.Exec(stmt).Error; err != nil {
		return fmt.Errorf("create enum %s: %w", model.StatusEnumType, err)
	}
	return nil
}

// VerifySchema checks that every described column exists with the described
// nullability.
func VerifySchema(db *gorm.DB, specs ...model.EntitySpec) error {
	m := db.Migrator()
	for _, spec := range specs {
		if !m.HasTable(spec.Table) {
			return fmt.Errorf("table %s is missing", spec.Table)
		}
		columns, err := m.ColumnTypes(spec.Table)
		if err != nil {
			return fmt.Errorf("read columns of %s: %w", spec.Table, err)
		}
		byName := make(map[string]gorm.ColumnType, len(columns))
		for _, c := range columns {
			byName[c.Name()] = c
		}
		for _, f := range spec.Fields {
			col, ok := byName[f.Column]
			if !ok {
				return fmt.Errorf("%s.%s is missing", spec.Table, f.Column)
			}
			if nullable, known := col.Nullable(); known && f.Column != "id" && nullable != f.Nullable {
				return fmt.Errorf("%s.%s nullable=%v, expected %v", spec.Table, f.Column, nullable, f.Nullable)
			}
		}
	}
	return nil
}
