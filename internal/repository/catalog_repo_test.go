package repository_test

import (
	"context"
	"testing"

	"product-catalog-api/internal/model"
	"product-catalog-api/internal/repository"
)

func TestProductLineFindAllByStatus(t *testing.T) {
	db := memdb(t)
	ctx := context.Background()
	user := seedUser(t, db, "a@example.com")
	repo := repository.NewProductLineRepo(db)

	keep := seedLine(t, db, user)
	drop := seedLine(t, db, user)
	if err := repo.UpdateStatus(ctx, drop.ID, model.StatusInactive); err != nil {
		t.Fatal(err)
	}

	inactive := model.StatusInactive
	lines, err := repo.FindAll(ctx, &inactive)
	if err != nil || len(lines) != 1 || lines[0].ID != drop.ID {
		t.Fatalf("inactive lines = %+v, %v", lines, err)
	}
	all, err := repo.FindAll(ctx, nil)
	if err != nil || len(all) != 2 || all[0].ID != keep.ID {
		t.Fatalf("all lines = %+v, %v", all, err)
	}
}

func TestRegisteredProductsByStyle(t *testing.T) {
	db := memdb(t)
	ctx := context.Background()
	user := seedUser(t, db, "a@example.com")
	line := seedLine(t, db, user)
	style := &model.ProductStyle{Name: "A", Description: "a", CreatedByID: user.ID, ProductLineID: line.ID}
	if err := repository.NewProductStyleRepo(db).Create(ctx, style); err != nil {
		t.Fatal(err)
	}

	repo := repository.NewRegisteredProductRepo(db)
	rp := &model.RegisteredProduct{SerialNumber: "SN-1", OwnerName: "Ann", ProductStyleID: style.ID}
	if err := repo.Create(ctx, rp); err != nil {
		t.Fatal(err)
	}
	dup := &model.RegisteredProduct{SerialNumber: "SN-1", OwnerName: "Bob", ProductStyleID: style.ID}
	if err := repo.Create(ctx, dup); err == nil {
		t.Fatal("expected unique serial violation")
	}

	found, err := repo.FindBySerial(ctx, "SN-1")
	if err != nil || found.ID != rp.ID || found.Status != model.StatusActive {
		t.Fatalf("find by serial = %+v, %v", found, err)
	}

	list, err := repo.FindByStyle(ctx, style.ID, nil)
	if err != nil || len(list) != 1 {
		t.Fatalf("by style = %+v, %v", list, err)
	}

	reloaded, err := repository.NewProductStyleRepo(db).FindByID(ctx, style.ID)
	if err != nil || len(reloaded.RegisteredProducts) != 1 {
		t.Fatalf("style back-reference = %+v, %v", reloaded, err)
	}
}

func TestProductFindBySKUAndStyle(t *testing.T) {
	db := memdb(t)
	ctx := context.Background()
	user := seedUser(t, db, "a@example.com")
	line := seedLine(t, db, user)
	style := &model.ProductStyle{Name: "A", Description: "a", CreatedByID: user.ID, ProductLineID: line.ID}
	if err := repository.NewProductStyleRepo(db).Create(ctx, style); err != nil {
		t.Fatal(err)
	}

	repo := repository.NewProductRepo(db)
	p := &model.Product{Name: "Boot 42", SKU: "BOOT-42", ProductStyleID: style.ID}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatal(err)
	}
	got, err := repo.FindBySKU(ctx, "BOOT-42")
	if err != nil || got.ID != p.ID {
		t.Fatalf("find by sku = %+v, %v", got, err)
	}

	p.Name = "Boot 42 wide"
	if err := repo.Update(ctx, p); err != nil {
		t.Fatal(err)
	}
	if err := repo.UpdateStatus(ctx, p.ID, model.StatusInactive); err != nil {
		t.Fatal(err)
	}
	active := model.StatusActive
	if list, err := repo.FindByStyle(ctx, style.ID, &active); err != nil || len(list) != 0 {
		t.Fatalf("active products = %+v, %v", list, err)
	}
}

func TestSeedRolesAndPrivileges(t *testing.T) {
	db := memdb(t)
	privs, err := repository.NewPrivilegeRepo(db).SeedDefaults()
	if err != nil || len(privs) != len(model.DefaultPrivileges) {
		t.Fatalf("privileges = %d, %v", len(privs), err)
	}
	roles := repository.NewRoleRepo(db)
	if err := roles.SeedDefaults(privs); err != nil {
		t.Fatal(err)
	}
	// second run must be a no-op
	if err := roles.SeedDefaults(privs); err != nil {
		t.Fatal(err)
	}

	viewer, err := roles.FindByCode(model.RoleViewer)
	if err != nil || len(viewer.Privileges) != 1 || viewer.Privileges[0].Code != model.PrivilegeCatalogView {
		t.Fatalf("viewer = %+v, %v", viewer, err)
	}
	admin, err := roles.FindByCode(model.RoleCatalogAdmin)
	if err != nil || len(admin.Privileges) != len(privs) {
		t.Fatalf("admin = %+v, %v", admin, err)
	}
}
