// Package graph exposes the catalog as a read-only GraphQL schema.
package graph

import (
	"fmt"
	"strconv"

	"product-catalog-api/internal/model"
	"product-catalog-api/internal/service"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
)

// Resolver holds what field resolvers need. The loaders back the lazy
// createdBy, productLine and productStyle fields.
type Resolver struct {
	Catalog service.CatalogService
	Users   model.Loader[uuid.UUID, model.User]
	Lines   model.Loader[uint, model.ProductLine]
	Styles  model.Loader[uint, model.ProductStyle]
}

var statusEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "Status",
	Values: graphql.EnumValueConfigMap{
		string(model.StatusActive):   &graphql.EnumValueConfig{Value: model.StatusActive},
		string(model.StatusInactive): &graphql.EnumValueConfig{Value: model.StatusInactive},
	},
})

// column wraps t in NonNull unless the entity marks the field nullable.
func column(spec model.EntitySpec, name string, t graphql.Output) graphql.Output {
	f, ok := spec.Field(name)
	if !ok {
		panic(fmt.Sprintf("graph: %s has no field %q", spec.Name, name))
	}
	if f.Nullable {
		return t
	}
	return graphql.NewNonNull(t)
}

func idString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func parseID(v interface{}) (uint, error) {
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("id must be a string")
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint(id), nil
}

func statusArg(args map[string]interface{}) *model.Status {
	s, ok := args["status"].(model.Status)
	if !ok {
		return nil
	}
	return &s
}

func statusArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{"status": &graphql.ArgumentConfig{Type: statusEnum}}
}

// NewSchema builds the query schema.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	var productLineType, styleType *graphql.Object

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "UserDTO",
		Fields: graphql.Fields{
			"id": &graphql.Field{Type: graphql.NewNonNull(graphql.ID), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.UserSummary).ID.String(), nil
			}},
			"email": &graphql.Field{Type: graphql.NewNonNull(graphql.String), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.UserSummary).Email, nil
			}},
			"fullName": &graphql.Field{Type: graphql.NewNonNull(graphql.String), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.UserSummary).FullName, nil
			}},
		},
	})

	productType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id": &graphql.Field{Type: column(model.ProductSpec, "id", graphql.ID), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return idString(p.Source.(*model.Product).ID), nil
				}},
				"name": &graphql.Field{Type: column(model.ProductSpec, "name", graphql.String), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.Product).Name, nil
				}},
				"description": &graphql.Field{Type: column(model.ProductSpec, "description", graphql.String), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.Product).Description, nil
				}},
				"sku": &graphql.Field{Type: column(model.ProductSpec, "sku", graphql.String), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.Product).SKU, nil
				}},
				"image": &graphql.Field{Type: column(model.ProductSpec, "image", graphql.String), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.Product).Image, nil
				}},
				"status": &graphql.Field{Type: column(model.ProductSpec, "status", statusEnum), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.Product).Status, nil
				}},
				"createdAt": &graphql.Field{Type: column(model.ProductSpec, "createdAt", graphql.DateTime), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.Product).CreatedAt, nil
				}},
				"productStyle": &graphql.Field{Type: styleType, Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					style, err := p.Source.(*model.Product).ProductStyleRef(r.Styles).Get(p.Context)
					if err != nil || style == nil {
						return nil, err
					}
					return style, nil
				}},
			}
		}),
	})

	registeredType := graphql.NewObject(graphql.ObjectConfig{
		Name: "RegisteredProduct",
		Fields: graphql.Fields{
			"id": &graphql.Field{Type: column(model.RegisteredProductSpec, "id", graphql.ID), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return idString(p.Source.(*model.RegisteredProduct).ID), nil
			}},
			"serialNumber": &graphql.Field{Type: column(model.RegisteredProductSpec, "serialNumber", graphql.String), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*model.RegisteredProduct).SerialNumber, nil
			}},
			"ownerName": &graphql.Field{Type: column(model.RegisteredProductSpec, "ownerName", graphql.String), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*model.RegisteredProduct).OwnerName, nil
			}},
			"ownerEmail": &graphql.Field{Type: column(model.RegisteredProductSpec, "ownerEmail", graphql.String), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if e := p.Source.(*model.RegisteredProduct).OwnerEmail; e != "" {
					return e, nil
				}
				return nil, nil
			}},
			"purchasedAt": &graphql.Field{Type: column(model.RegisteredProductSpec, "purchasedAt", graphql.DateTime), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if t := p.Source.(*model.RegisteredProduct).PurchasedAt; t != nil {
					return *t, nil
				}
				return nil, nil
			}},
			"status": &graphql.Field{Type: column(model.RegisteredProductSpec, "status", statusEnum), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*model.RegisteredProduct).Status, nil
			}},
		},
	})

	styleType = graphql.NewObject(graphql.ObjectConfig{
		Name: "ProductStyle",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			spec := model.ProductStyleSpec
			return graphql.Fields{
				"id": &graphql.Field{Type: column(spec, "id", graphql.ID), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return idString(p.Source.(*model.ProductStyle).ID), nil
				}},
				"name": &graphql.Field{Type: column(spec, "name", graphql.String), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.ProductStyle).Name, nil
				}},
				"description": &graphql.Field{Type: column(spec, "description", graphql.String), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.ProductStyle).Description, nil
				}},
				"image": &graphql.Field{Type: column(spec, "image", graphql.String), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.ProductStyle).Image, nil
				}},
				"createdAt": &graphql.Field{Type: column(spec, "createdAt", graphql.DateTime), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.ProductStyle).CreatedAt, nil
				}},
				"status": &graphql.Field{Type: column(spec, "status", statusEnum), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.ProductStyle).Status, nil
				}},
				"createdBy": &graphql.Field{Type: userType, Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, err := p.Source.(*model.ProductStyle).CreatorRef(r.Users).Get(p.Context)
					if err != nil || u == nil {
						return nil, err
					}
					return u.ToSummary(), nil
				}},
				"productLine": &graphql.Field{Type: productLineType, Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					line, err := p.Source.(*model.ProductStyle).ProductLineRef(r.Lines).Get(p.Context)
					if err != nil || line == nil {
						return nil, err
					}
					return line, nil
				}},
				"products": &graphql.Field{
					Type: graphql.NewList(graphql.NewNonNull(productType)),
					Args: statusArgs(),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						products := p.Source.(*model.ProductStyle).GetProducts(statusArg(p.Args))
						out := make([]*model.Product, len(products))
						for i := range products {
							out[i] = &products[i]
						}
						return out, nil
					},
				},
				"registeredProducts": &graphql.Field{
					Type: graphql.NewList(graphql.NewNonNull(registeredType)),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						list := p.Source.(*model.ProductStyle).RegisteredProducts
						out := make([]*model.RegisteredProduct, len(list))
						for i := range list {
							out[i] = &list[i]
						}
						return out, nil
					},
				},
			}
		}),
	})

	productLineType = graphql.NewObject(graphql.ObjectConfig{
		Name: "ProductLine",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			spec := model.ProductLineSpec
			return graphql.Fields{
				"id": &graphql.Field{Type: column(spec, "id", graphql.ID), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return idString(p.Source.(*model.ProductLine).ID), nil
				}},
				"name": &graphql.Field{Type: column(spec, "name", graphql.String), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.ProductLine).Name, nil
				}},
				"description": &graphql.Field{Type: column(spec, "description", graphql.String), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.ProductLine).Description, nil
				}},
				"image": &graphql.Field{Type: column(spec, "image", graphql.String), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.ProductLine).Image, nil
				}},
				"createdAt": &graphql.Field{Type: column(spec, "createdAt", graphql.DateTime), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.ProductLine).CreatedAt, nil
				}},
				"status": &graphql.Field{Type: column(spec, "status", statusEnum), Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.ProductLine).Status, nil
				}},
				"createdBy": &graphql.Field{Type: userType, Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, err := p.Source.(*model.ProductLine).CreatorRef(r.Users).Get(p.Context)
					if err != nil || u == nil {
						return nil, err
					}
					return u.ToSummary(), nil
				}},
				"productStyles": &graphql.Field{
					Type: graphql.NewList(graphql.NewNonNull(styleType)),
					Args: statusArgs(),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return stylePointers(p.Source.(*model.ProductLine).GetProductStyles(statusArg(p.Args))), nil
					},
				},
			}
		}),
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"productStyle": &graphql.Field{
				Type: styleType,
				Args: graphql.FieldConfigArgument{"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)}},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := parseID(p.Args["id"])
					if err != nil {
						return nil, err
					}
					style, err := r.Catalog.GetProductStyle(p.Context, id)
					if err != nil {
						return nil, err
					}
					return style, nil
				},
			},
			"productStyles": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(styleType)),
				Args: graphql.FieldConfigArgument{
					"status":        &graphql.ArgumentConfig{Type: statusEnum},
					"productLineId": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var lineID *uint
					if raw, ok := p.Args["productLineId"]; ok && raw != nil {
						id, err := parseID(raw)
						if err != nil {
							return nil, err
						}
						lineID = &id
					}
					styles, err := r.Catalog.ListProductStyles(p.Context, statusArg(p.Args), lineID)
					if err != nil {
						return nil, err
					}
					return stylePointers(styles), nil
				},
			},
			"productLine": &graphql.Field{
				Type: productLineType,
				Args: graphql.FieldConfigArgument{"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)}},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := parseID(p.Args["id"])
					if err != nil {
						return nil, err
					}
					line, err := r.Catalog.GetProductLine(p.Context, id)
					if err != nil {
						return nil, err
					}
					return line, nil
				},
			},
			"productLines": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(productLineType)),
				Args: statusArgs(),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					lines, err := r.Catalog.ListProductLines(p.Context, statusArg(p.Args))
					if err != nil {
						return nil, err
					}
					out := make([]*model.ProductLine, len(lines))
					for i := range lines {
						out[i] = &lines[i]
					}
					return out, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query})
}

func stylePointers(styles []model.ProductStyle) []*model.ProductStyle {
	out := make([]*model.ProductStyle, len(styles))
	for i := range styles {
		out[i] = &styles[i]
	}
	return out
}
