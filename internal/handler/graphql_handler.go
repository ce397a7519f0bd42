package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
)

type GraphQLHandler struct {
	schema graphql.Schema
}

func NewGraphQLHandler(schema graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{schema: schema}
}

type graphQLRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// Query executes a GraphQL document. Resolver errors are reported in the
// "errors" member with status 200; only a malformed body is rejected.
// POST /api/v1/graphql
func (h *GraphQLHandler) Query(c *fiber.Ctx) error {
	var req graphQLRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Query == "" {
		return c.Status(400).JSON(fiber.Map{"error": "query is required"})
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.UserContext(),
	})
	return c.JSON(result)
}
