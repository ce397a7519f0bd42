package model

// Role groups the privileges granted to a user
type Role struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Code        string      `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // CATALOG_ADMIN, CATALOG_EDITOR, VIEWER
	Name        string      `gorm:"type:varchar(100)" json:"name"`
	Description string      `gorm:"type:text" json:"description"`
	Privileges  []Privilege `gorm:"many2many:role_privileges;" json:"privileges,omitempty"`
}

const (
	RoleCatalogAdmin  = "CATALOG_ADMIN"
	RoleCatalogEditor = "CATALOG_EDITOR"
	RoleViewer        = "VIEWER"
)

var DefaultRoles = []Role{
	{
		Code:        RoleCatalogAdmin,
		Name:        "Catalog Administrator",
		Description: "Full catalog access with all privileges",
	},
	{
		Code:        RoleCatalogEditor,
		Name:        "Catalog Editor",
		Description: "Creates and edits catalog records",
	},
	{
		Code:        RoleViewer,
		Name:        "Viewer",
		Description: "Read-only catalog access",
	},
}

// Grants reports whether a role with the given code receives the privilege
// when roles are seeded. Admins receive everything.
func Grants(roleCode, privilegeCode string) bool {
	switch roleCode {
	case RoleCatalogAdmin:
		return true
	case RoleCatalogEditor:
		return privilegeCode != PrivilegeCatalogDelete
	case RoleViewer:
		return privilegeCode == PrivilegeCatalogView
	}
	return false
}
