package domain

import "net/url"

// Application route constants. The paths mirror the backend-agreed navigation
// structure, so they are part of the contract rather than presentation detail.
const (
	RootRoute         = "/"
	LoginRoute        = "/auth/login"
	AccessDeniedRoute = "/access-denied"

	// ReturnURLParam carries the originally requested path through the login
	// redirect so navigation can resume after authentication.
	ReturnURLParam = "returnUrl"
)

// homeRoutes maps each role to its landing page.
var homeRoutes = map[Role]string{
	RoleManager:   "/gestionnaire/dashboard",
	RoleCourier:   "/livreur/mes-colis",
	RoleClient:    "/client/mes-colis",
	RoleRecipient: "/destinataire/suivi-colis",
}

// HomeRoute returns the landing page for a role.
func HomeRoute(r Role) (string, bool) {
	route, ok := homeRoutes[r]
	return route, ok
}

// LoginRedirect builds the login route carrying the originally requested path.
func LoginRedirect(returnURL string) string {
	if returnURL == "" {
		return LoginRoute
	}
	q := url.Values{}
	q.Set(ReturnURLParam, returnURL)
	return LoginRoute + "?" + q.Encode()
}

// RouteRequirement is the authorization attached to a navigable route. An
// empty role set means "authenticated only".
type RouteRequirement struct {
	Roles []Role
}

// Decision is the outcome of one guard evaluation. The router adapter
// performs the actual redirect; the decision itself has no side effects.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Allow authorizes the navigation.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Redirect denies the navigation and names the route to send the user to.
func Redirect(target string) Decision {
	return Decision{RedirectTo: target}
}
