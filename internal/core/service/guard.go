package service

import (
	"context"

	"github.com/smartlogi/frontend/internal/core/domain"
	"github.com/smartlogi/frontend/internal/core/ports"
)

// Guard makes the allow/redirect decision for one navigation attempt. Per
// attempt the checks run as a tiny state machine: unauthenticated navigations
// bounce to login with the requested path preserved; authenticated ones are
// authorized against the route's role requirement, and a failed role check
// bounces to the access-denied page without a return target, since retrying
// the same route would fail again.
//
// The decision itself performs no navigation; the external router adapter
// executes the redirect. The only state change a check can cause is the
// forced logout embedded in IsAuthenticated when it finds an expired token.
type Guard struct {
	auth ports.AuthSession
}

func NewGuard(auth ports.AuthSession) *Guard {
	return &Guard{auth: auth}
}

// Check evaluates the route requirement against current session state for a
// navigation to path. With unchanged inputs the decision is deterministic.
func (g *Guard) Check(ctx context.Context, req domain.RouteRequirement, path string) domain.Decision {
	if !g.auth.IsAuthenticated(ctx) {
		return domain.Redirect(domain.LoginRedirect(path))
	}
	if len(req.Roles) == 0 {
		return domain.Allow()
	}
	if g.auth.HasAnyRole(ctx, req.Roles...) {
		return domain.Allow()
	}
	return domain.Redirect(domain.AccessDeniedRoute)
}
