package model

// Storage types used in field descriptions.
const (
	StorageInteger     = "integer"
	StorageText        = "text"
	StorageUUID        = "uuid"
	StorageTimestampTZ = "timestamptz"
	StorageEnum        = "enum"
)

// FieldSpec describes one persisted, API-visible field of an entity.
// The database package checks migrated tables against it and the GraphQL
// builder derives scalar field nullability from it.
type FieldSpec struct {
	Name        string // API field name
	Column      string
	StorageType string
	Nullable    bool
	Default     string
	Enum        []string
	Immutable   bool
}

// EntitySpec describes the persisted fields of one entity.
type EntitySpec struct {
	Name   string
	Table  string
	Fields []FieldSpec
}

// Field looks a field up by API name.
func (e EntitySpec) Field(name string) (FieldSpec, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

func statusNames() []string {
	names := make([]string, len(Statuses))
	for i, s := range Statuses {
		names[i] = string(s)
	}
	return names
}

var (
	idField        = FieldSpec{Name: "id", Column: "id", StorageType: StorageInteger, Immutable: true}
	createdAtField = FieldSpec{Name: "createdAt", Column: "created_at", StorageType: StorageTimestampTZ, Immutable: true}
	statusField    = FieldSpec{Name: "status", Column: "status", StorageType: StorageEnum, Default: string(StatusActive), Enum: statusNames()}
	imageField     = FieldSpec{Name: "image", Column: "image", StorageType: StorageText, Nullable: true}
)

var ProductStyleSpec = EntitySpec{
	Name:  "ProductStyle",
	Table: ProductStyle{}.TableName(),
	Fields: []FieldSpec{
		idField,
		{Name: "name", Column: "name", StorageType: StorageText},
		{Name: "description", Column: "description", StorageType: StorageText},
		imageField,
		createdAtField,
		{Name: "createdBy", Column: "created_by_id", StorageType: StorageUUID},
		statusField,
		{Name: "productLine", Column: "product_line_id", StorageType: StorageInteger},
	},
}

var ProductLineSpec = EntitySpec{
	Name:  "ProductLine",
	Table: ProductLine{}.TableName(),
	Fields: []FieldSpec{
		idField,
		{Name: "name", Column: "name", StorageType: StorageText},
		{Name: "description", Column: "description", StorageType: StorageText},
		imageField,
		createdAtField,
		{Name: "createdBy", Column: "created_by_id", StorageType: StorageUUID},
		statusField,
	},
}

var ProductSpec = EntitySpec{
	Name:  "Product",
	Table: Product{}.TableName(),
	Fields: []FieldSpec{
		idField,
		{Name: "name", Column: "name", StorageType: StorageText},
		{Name: "description", Column: "description", StorageType: StorageText},
		{Name: "sku", Column: "sku", StorageType: StorageText},
		imageField,
		statusField,
		createdAtField,
		{Name: "productStyle", Column: "product_style_id", StorageType: StorageInteger},
	},
}

var RegisteredProductSpec = EntitySpec{
	Name:  "RegisteredProduct",
	Table: RegisteredProduct{}.TableName(),
	Fields: []FieldSpec{
		idField,
		{Name: "serialNumber", Column: "serial_number", StorageType: StorageText},
		{Name: "ownerName", Column: "owner_name", StorageType: StorageText},
		{Name: "ownerEmail", Column: "owner_email", StorageType: StorageText, Nullable: true},
		{Name: "purchasedAt", Column: "purchased_at", StorageType: StorageTimestampTZ, Nullable: true},
		statusField,
		createdAtField,
		{Name: "productStyle", Column: "product_style_id", StorageType: StorageInteger},
	},
}

// CatalogSpecs lists every catalog entity description.
var CatalogSpecs = []EntitySpec{ProductLineSpec, ProductStyleSpec, ProductSpec, RegisteredProductSpec}
