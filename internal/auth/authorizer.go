package auth

import (
	"context"
	"net/http"
)

// Roles granted by the external identity provider.
const (
	RoleUser  = "meal-user"
	RoleAdmin = "meal-admin"
)

// Actor is the authenticated caller identity attached to a request.
// The service trusts this assertion completely; credential issuance and
// verification policy live in the external identity layer.
type Actor struct {
	ID    string
	Roles []string
}

// HasRole reports whether the actor was granted the given role.
func (a *Actor) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the actor holds the administrative role.
func (a *Actor) IsAdmin() bool { return a.HasRole(RoleAdmin) }

// Authorizer resolves the caller identity and granted roles for a request.
type Authorizer interface {
	Authenticate(r *http.Request) (*Actor, error)
}

type actorCtxKey struct{}

// WithActor stores the authenticated actor on the context.
func WithActor(ctx context.Context, a *Actor) context.Context {
	return context.WithValue(ctx, actorCtxKey{}, a)
}

// ActorFromContext returns the actor stored by the auth middleware.
func ActorFromContext(ctx context.Context) (*Actor, bool) {
	a, ok := ctx.Value(actorCtxKey{}).(*Actor)
	return a, ok
}
