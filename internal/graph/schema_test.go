package graph_test

import (
	"context"
	"fmt"
	"testing"

	"product-catalog-api/internal/graph"
	"product-catalog-api/internal/model"
	"product-catalog-api/internal/repository"
	"product-catalog-api/internal/service"
	"product-catalog-api/internal/ws"
	"product-catalog-api/pkg/database"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
)

type env struct {
	schema     graphql.Schema
	catalog    service.CatalogService
	actor      service.Actor
	userLoads  int
	lineLoads  int
	styleLoads int
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	users := repository.NewUserRepo(db)
	u := &model.User{Email: "maker@example.com", FullName: "Maker", IsActive: true}
	if err := u.SetPassword("secret1"); err != nil {
		t.Fatal(err)
	}
	if err := users.Create(ctx, u); err != nil {
		t.Fatal(err)
	}
	lines := repository.NewProductLineRepo(db)
	styles := repository.NewProductStyleRepo(db)

	e := &env{actor: service.Actor{ID: u.ID, Name: u.FullName, Email: u.Email}}
	e.catalog = service.NewCatalogService(service.Repositories{
		Lines:      lines,
		Styles:     styles,
		Products:   repository.NewProductRepo(db),
		Registered: repository.NewRegisteredProductRepo(db),
		Users:      users,
	}, ws.NewHub())

	userLoader, lineLoader, styleLoader := users.Loader(), lines.Loader(), styles.Loader()
	e.schema, err = graph.NewSchema(&graph.Resolver{
		Catalog: e.catalog,
		Users: func(ctx context.Context, id uuid.UUID) (*model.User, error) {
			e.userLoads++
			return userLoader(ctx, id)
		},
		Lines: func(ctx context.Context, id uint) (*model.ProductLine, error) {
			e.lineLoads++
			return lineLoader(ctx, id)
		},
		Styles: func(ctx context.Context, id uint) (*model.ProductStyle, error) {
			e.styleLoads++
			return styleLoader(ctx, id)
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func (e *env) seed(t *testing.T) (*model.ProductLine, *model.ProductStyle) {
	t.Helper()
	ctx := context.Background()
	line, err := e.catalog.CreateProductLine(ctx, &service.ProductLineRequest{Name: "Outdoor", Description: "d"}, e.actor)
	if err != nil {
		t.Fatal(err)
	}
	style, err := e.catalog.CreateProductStyle(ctx, &service.ProductStyleRequest{Name: "Trail", Description: "d", ProductLineID: line.ID}, e.actor)
	if err != nil {
		t.Fatal(err)
	}
	inactive := model.StatusInactive
	for i, st := range []*model.Status{nil, &inactive, nil} {
		if _, err := e.catalog.CreateProduct(ctx, &service.ProductRequest{
			Name: "P", Description: "d", SKU: fmt.Sprintf("SKU-%d", i), Status: st, ProductStyleID: style.ID,
		}, e.actor); err != nil {
			t.Fatal(err)
		}
	}
	return line, style
}

func (e *env) run(t *testing.T, query string, vars map[string]interface{}) map[string]interface{} {
	t.Helper()
	res := graphql.Do(graphql.Params{Schema: e.schema, RequestString: query, VariableValues: vars, Context: context.Background()})
	if res.HasErrors() {
		t.Fatalf("errors: %v", res.Errors)
	}
	return res.Data.(map[string]interface{})
}

func TestRelationsResolveOnlyWhenSelected(t *testing.T) {
	e := newEnv(t)
	_, style := e.seed(t)
	vars := map[string]interface{}{"id": fmt.Sprint(style.ID)}

	e.run(t, `query($id: ID!) { productStyle(id: $id) { id name status } }`, vars)
	if e.userLoads != 0 || e.lineLoads != 0 {
		t.Fatalf("unselected relations were loaded: users=%d lines=%d", e.userLoads, e.lineLoads)
	}

	data := e.run(t, `query($id: ID!) { productStyle(id: $id) { createdBy { email fullName } productLine { name } } }`, vars)
	if e.userLoads != 1 || e.lineLoads != 1 {
		t.Fatalf("users=%d lines=%d, want 1 each", e.userLoads, e.lineLoads)
	}
	got := data["productStyle"].(map[string]interface{})
	if got["createdBy"].(map[string]interface{})["email"] != "maker@example.com" {
		t.Fatalf("createdBy = %v", got["createdBy"])
	}
	if got["productLine"].(map[string]interface{})["name"] != "Outdoor" {
		t.Fatalf("productLine = %v", got["productLine"])
	}
}

func TestProductsArgumentFiltersByStatus(t *testing.T) {
	e := newEnv(t)
	_, style := e.seed(t)

	data := e.run(t, `query($id: ID!) { productStyle(id: $id) {
		active: products { sku }
		inactive: products(status: INACTIVE) { sku status }
		explicit: products(status: ACTIVE) { sku }
	} }`, map[string]interface{}{"id": fmt.Sprint(style.ID)})

	got := data["productStyle"].(map[string]interface{})
	active := got["active"].([]interface{})
	explicit := got["explicit"].([]interface{})
	inactive := got["inactive"].([]interface{})
	if len(active) != 2 || len(explicit) != 2 || len(inactive) != 1 {
		t.Fatalf("active=%v explicit=%v inactive=%v", active, explicit, inactive)
	}
	if active[0].(map[string]interface{})["sku"] != "SKU-0" || active[1].(map[string]interface{})["sku"] != "SKU-2" {
		t.Fatalf("order not preserved: %v", active)
	}
	if inactive[0].(map[string]interface{})["status"] != "INACTIVE" {
		t.Fatalf("inactive = %v", inactive)
	}
}

func TestListQueriesDefaultToActive(t *testing.T) {
	e := newEnv(t)
	line, style := e.seed(t)
	if err := e.catalog.DeactivateProductStyle(context.Background(), style.ID, e.actor); err != nil {
		t.Fatal(err)
	}

	data := e.run(t, `{ productStyles { id } all: productStyles(status: INACTIVE) { id } productLines { id productStyles { id } } }`, nil)
	if n := len(data["productStyles"].([]interface{})); n != 0 {
		t.Fatalf("active styles = %d", n)
	}
	if n := len(data["all"].([]interface{})); n != 1 {
		t.Fatalf("inactive styles = %d", n)
	}
	lines := data["productLines"].([]interface{})
	if len(lines) != 1 || lines[0].(map[string]interface{})["id"] != fmt.Sprint(line.ID) {
		t.Fatalf("lines = %v", lines)
	}
	if n := len(lines[0].(map[string]interface{})["productStyles"].([]interface{})); n != 0 {
		t.Fatalf("line styles = %d", n)
	}
}

func TestProductStyleFromProduct(t *testing.T) {
	e := newEnv(t)
	_, style := e.seed(t)

	data := e.run(t, `query($id: ID!) { productStyle(id: $id) { products { productStyle { name } } } }`,
		map[string]interface{}{"id": fmt.Sprint(style.ID)})
	products := data["productStyle"].(map[string]interface{})["products"].([]interface{})
	if len(products) != 2 || e.styleLoads != 2 {
		t.Fatalf("products=%d styleLoads=%d", len(products), e.styleLoads)
	}
	if products[0].(map[string]interface{})["productStyle"].(map[string]interface{})["name"] != "Trail" {
		t.Fatalf("productStyle = %v", products[0])
	}
}

func TestNullability(t *testing.T) {
	e := newEnv(t)
	res := graphql.Do(graphql.Params{Schema: e.schema, RequestString: `{ __type(name: "ProductStyle") { fields { name type { kind } } } }`, Context: context.Background()})
	if res.HasErrors() {
		t.Fatal(res.Errors)
	}
	kinds := map[string]string{}
	for _, f := range res.Data.(map[string]interface{})["__type"].(map[string]interface{})["fields"].([]interface{}) {
		m := f.(map[string]interface{})
		kinds[m["name"].(string)] = m["type"].(map[string]interface{})["kind"].(string)
	}
	for name, want := range map[string]string{"id": "NON_NULL", "createdAt": "NON_NULL", "status": "NON_NULL", "image": "SCALAR", "createdBy": "OBJECT"} {
		if kinds[name] != want {
			t.Errorf("%s kind = %s, want %s", name, kinds[name], want)
		}
	}
}

func TestUnknownRecordsAreNullWithError(t *testing.T) {
	e := newEnv(t)
	for field, query := range map[string]string{
		"productStyle": `{ productStyle(id: "999") { id } }`,
		"productLine":  `{ productLine(id: "999") { id } }`,
	} {
		res := graphql.Do(graphql.Params{Schema: e.schema, RequestString: query, Context: context.Background()})
		if !res.HasErrors() {
			t.Fatalf("%s: want an error for a missing record", field)
		}
		data := res.Data.(map[string]interface{})
		v, ok := data[field]
		if !ok {
			t.Fatalf("%s: field missing from data %v", field, data)
		}
		// A typed nil pointer stored in the interface would not compare equal to nil.
		if v != nil {
			t.Fatalf("%s = %#v, want untyped nil", field, v)
		}
	}
}
