package graph

import (
	"context"

	"github.com/syauqinrm/blog-backend/policy"
)

type contextKey string

const actorKey contextKey = "actor"

// WithActor stores the authenticated (or anonymous) actor on the request
// context so resolvers can consult the same authorization policy as the REST
// handlers.
func WithActor(ctx context.Context, actor policy.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

func actorFrom(ctx context.Context) policy.Actor {
	if actor, ok := ctx.Value(actorKey).(policy.Actor); ok {
		return actor
	}
	return policy.Actor{}
}
