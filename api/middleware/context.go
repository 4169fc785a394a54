package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/angelmondragon/groupdrive-backend/pkg/enums"
)

type actorKey struct{}

// Actor is the authenticated caller behind a request.
type Actor struct {
	UserID uuid.UUID
	Role   enums.UserRole
}

// ActorFromContext returns the caller placed by Auth. ok is false on public
// routes.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	if ctx == nil {
		return Actor{}, false
	}
	actor, ok := ctx.Value(actorKey{}).(Actor)
	if !ok || actor.UserID == uuid.Nil {
		return Actor{}, false
	}
	return actor, true
}

// WithActor injects the caller; Auth uses it and so do handler tests.
func WithActor(ctx context.Context, actor Actor) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, actorKey{}, actor)
}
