package tackle

import (
	"context"

	"github.com/google/uuid"
)

// Actor identifies the already-authenticated staff member performing an
// operation. Authentication itself happens upstream of this service; the
// engine only ever sees a resolved identity, passed explicitly through the
// context rather than read from ambient state.
type Actor struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey int

const (
	actorContextKey contextKey = iota + 1
	requestIDContextKey
)

// Actor context helpers

// NewContextWithActor attaches an actor to the context.
func NewContextWithActor(ctx context.Context, actor *Actor) context.Context {
	return context.WithValue(ctx, actorContextKey, actor)
}

// ActorFromContext returns the acting staff member from the context, or nil.
func ActorFromContext(ctx context.Context) *Actor {
	actor, _ := ctx.Value(actorContextKey).(*Actor)
	return actor
}

// ActorIDFromContext returns the acting staff member's ID, or a zero UUID.
func ActorIDFromContext(ctx context.Context) uuid.UUID {
	if actor := ActorFromContext(ctx); actor != nil {
		return actor.ID
	}
	return uuid.UUID{}
}

// Request ID context helpers

// NewContextWithRequestID attaches a request ID to the context.
func NewContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, requestID)
}

// RequestIDFromContext returns the request ID from the context, or empty string.
func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDContextKey).(string)
	return requestID
}

// HasActor returns true if an actor is present in the context.
func HasActor(ctx context.Context) bool {
	return ActorFromContext(ctx) != nil
}
