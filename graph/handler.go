package graph

import (
	"log"

	"github.com/syauqinrm/blog-backend/middleware"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

// NewHandler mounts the GraphQL endpoint on gin. The optional-auth middleware
// must run before it so the actor is available on the gin context.
func NewHandler(schema graphql.Schema) gin.HandlerFunc {
	h := handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
	})

	return func(c *gin.Context) {
		actor := middleware.ActorFromContext(c)
		ctx := WithActor(c.Request.Context(), actor)
		h.ContextHandler(ctx, c.Writer, c.Request)
	}
}

// MustSchema builds the schema or stops the process; schema construction only
// fails on a programming error.
func MustSchema(r *Resolver) graphql.Schema {
	schema, err := NewSchema(r)
	if err != nil {
		log.Fatal("Failed to build GraphQL schema:", err)
	}
	return schema
}
