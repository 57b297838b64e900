package platform

import "context"

type actorContextKey struct{}

// WithActor stamps the authenticated caller identity onto the context for
// audit fields. Movements created from unauthenticated paths carry an empty
// createdBy.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

func ActorFromContext(ctx context.Context) string {
	if actor, ok := ctx.Value(actorContextKey{}).(string); ok {
		return actor
	}
	return ""
}
