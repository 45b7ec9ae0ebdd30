package domain

// Role is the closed set of user roles the front-end understands.
//
// The backend spells these in French inside token claims; translation happens
// in exactly one place, the mapping table below, so a backend rename is caught
// here instead of silently failing every role check.
type Role string

const (
	RoleManager   Role = "MANAGER"
	RoleCourier   Role = "COURIER"
	RoleClient    Role = "CLIENT"
	RoleRecipient Role = "RECIPIENT"
)

// backendRoleNames maps each front-end role to the identifier the backend
// embeds in token claims.
var backendRoleNames = map[Role]string{
	RoleManager:   "GESTIONNAIRE",
	RoleCourier:   "LIVREUR",
	RoleClient:    "CLIENT",
	RoleRecipient: "DESTINATAIRE",
}

// rolePriority is the fixed tie-break order used when a user holds several
// roles: the first match wins. This is a policy choice, not an accident.
var rolePriority = []Role{RoleManager, RoleCourier, RoleClient, RoleRecipient}

// IsValid reports whether the role belongs to the closed enumeration.
func (r Role) IsValid() bool {
	_, ok := backendRoleNames[r]
	return ok
}

// BackendName returns the backend's spelling of the role, or the empty string
// for an unknown role.
func (r Role) BackendName() string {
	return backendRoleNames[r]
}

// RoleFromBackend translates a backend role identifier to a front-end Role.
func RoleFromBackend(name string) (Role, bool) {
	for role, backend := range backendRoleNames {
		if backend == name {
			return role, true
		}
	}
	return "", false
}

// RolesFromBackend translates a list of backend role identifiers, dropping
// anything that does not map to a known role.
func RolesFromBackend(names []string) []Role {
	roles := make([]Role, 0, len(names))
	for _, name := range names {
		if role, ok := RoleFromBackend(name); ok {
			roles = append(roles, role)
		}
	}
	return roles
}

// RolePriority returns the fixed role tie-break order.
func RolePriority() []Role {
	out := make([]Role, len(rolePriority))
	copy(out, rolePriority)
	return out
}

// User is the front-end's view of an account. It is either the full object
// returned by registration or a minimal synthesis from token claims after a
// login, where the backend returns only the token.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	LastName  string `json:"nom,omitempty"`
	FirstName string `json:"prenom,omitempty"`
	Roles     []Role `json:"roles"`
	Phone     string `json:"telephone,omitempty"`
	Address   string `json:"adresse,omitempty"`
}

// HasRole reports whether the user carries the given role. Prefer the token
// claims for authorization decisions; this is for display purposes only.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Credentials is a login submission.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is a new-client signup submission.
type Registration struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	LastName  string `json:"nom"`
	FirstName string `json:"prenom"`
	Phone     string `json:"telephone,omitempty"`
	Address   string `json:"adresse,omitempty"`
}

// AuthGrant is what the backend hands back from an authentication endpoint:
// always a token, plus the full user object on registration.
type AuthGrant struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}
