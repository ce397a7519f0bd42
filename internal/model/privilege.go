package model

// Privilege represents a permission that can be assigned to users
type Privilege struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // e.g., "catalog:create"
	Name string `gorm:"type:varchar(100)" json:"name"`
}

const (
	PrivilegeCatalogView     = "catalog:view"
	PrivilegeCatalogCreate   = "catalog:create"
	PrivilegeCatalogUpdate   = "catalog:update"
	PrivilegeCatalogDelete   = "catalog:delete"
	PrivilegeProductRegister = "product:register"
)

var DefaultPrivileges = []Privilege{
	{Code: PrivilegeCatalogView, Name: "View Catalog"},
	{Code: PrivilegeCatalogCreate, Name: "Create Catalog Records"},
	{Code: PrivilegeCatalogUpdate, Name: "Update Catalog Records"},
	{Code: PrivilegeCatalogDelete, Name: "Deactivate Catalog Records"},
	{Code: PrivilegeProductRegister, Name: "Register Products"},
}
