package auth

import "context"

type ctxKey struct{}

func ContextWithActor(ctx context.Context, actor *Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, actor)
}

func ActorFromContext(ctx context.Context) (*Actor, bool) {
	actor, ok := ctx.Value(ctxKey{}).(*Actor)
	return actor, ok
}
