package ports

import (
	"context"

	"github.com/smartlogi/frontend/internal/core/domain"
)

// AuthAPI is the backend authentication surface.
type AuthAPI interface {
	// Login exchanges credentials for a bearer token. The response carries
	// only the token in this deployment; user data must come from claims.
	Login(ctx context.Context, creds domain.Credentials) (string, error)
	// Register creates a client account and returns both the token and the
	// full user object.
	Register(ctx context.Context, reg domain.Registration) (*domain.AuthGrant, error)
}

// AuthSession is the session lifecycle surface consumed by guards, middleware
// and view handlers.
type AuthSession interface {
	Login(ctx context.Context, creds domain.Credentials) error
	Register(ctx context.Context, reg domain.Registration) (*domain.User, error)
	// Logout is idempotent: safe to call with no prior session.
	Logout(ctx context.Context)

	// IsAuthenticated re-derives the answer from stored token state on every
	// call. Detecting an expired token triggers Logout as a side effect.
	IsAuthenticated(ctx context.Context) bool
	HasRole(ctx context.Context, role domain.Role) bool
	HasAnyRole(ctx context.Context, roles ...domain.Role) bool
	Roles(ctx context.Context) []domain.Role
	// Username reads the identity from token claims, like the role checks,
	// so it stays correct when the cached user is stale or minimal.
	Username(ctx context.Context) (string, bool)

	CurrentUser() *domain.User
	// RedirectByRole resolves the landing route for the current roles in
	// fixed priority order and asks the navigator to go there.
	RedirectByRole(ctx context.Context) string
}

// Navigator performs the navigation side effect decided by the session
// manager. The real router in front of the application implements it; tests
// use a recorder.
type Navigator interface {
	Navigate(path string)
}
