package core

import "context"

type contextKey string

const ctxKeyActor contextKey = "actor"

// ContextWithActor attaches the signed-in actor to ctx.
func ContextWithActor(ctx context.Context, actor *Actor) context.Context {
	return context.WithValue(ctx, ctxKeyActor, actor)
}

// ActorFromContext extracts the actor placed by ContextWithActor.
func ActorFromContext(ctx context.Context) (*Actor, bool) {
	if v, ok := ctx.Value(ctxKeyActor).(*Actor); ok && v != nil {
		return v, true
	}
	return nil, false
}

// ContextAuth is an AuthProvider backed by ContextWithActor.
type ContextAuth struct{}

// Actor implements AuthProvider.
func (ContextAuth) Actor(ctx context.Context) (*Actor, bool) {
	return ActorFromContext(ctx)
}
