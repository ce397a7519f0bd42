package database

import (
	"testing"

	"product-catalog-api/internal/model"
)

func TestMigrateSQLite(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for _, spec := range model.CatalogSpecs {
		if !db.Migrator().HasTable(spec.Table) {
			t.Fatalf("missing table %s", spec.Table)
		}
	}
}

func TestVerifySchemaReportsMissingColumn(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	broken := model.EntitySpec{
		Name:   "ProductStyle",
		Table:  model.ProductStyleSpec.Table,
		Fields: []model.FieldSpec{{Name: "colour", Column: "colour", StorageType: model.StorageText}},
	}
	if err := VerifySchema(db, broken); err == nil {
		t.Fatal("expected missing column error")
	}
}

func TestConnectRejectsUnknownDriver(t *testing.T) {
	if _, err := Connect("oracle", "x"); err == nil {
		t.Fatal("expected error")
	}
}
