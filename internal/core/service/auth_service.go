package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/smartlogi/frontend/internal/core/domain"
	"github.com/smartlogi/frontend/internal/core/ports"
)

var _ ports.AuthSession = (*AuthService)(nil)

// AuthService orchestrates login, registration, logout and initial-session
// recovery against the backend, and owns all SessionState mutations.
type AuthService struct {
	tokens  ports.TokenService
	api     ports.AuthAPI
	session *SessionState
	nav     ports.Navigator
	log     zerolog.Logger

	mu            sync.Mutex
	loginInFlight bool
}

// NewAuthService builds the session manager and recovers any session left in
// durable storage: a valid, non-expired token marks the session authenticated
// without an eager backend round-trip; the user stays unset until the next
// login fills it in.
func NewAuthService(tokens ports.TokenService, api ports.AuthAPI, session *SessionState, nav ports.Navigator, log zerolog.Logger) *AuthService {
	s := &AuthService{
		tokens:  tokens,
		api:     api,
		session: session,
		nav:     nav,
		log:     log,
	}
	s.recoverSession(context.Background())
	return s
}

func (s *AuthService) recoverSession(ctx context.Context) {
	raw, err := s.tokens.Retrieve(ctx)
	if err != nil {
		return
	}
	if s.tokens.IsExpired(raw) {
		return
	}
	s.session.SetAuthenticated(nil)
	s.log.Info().Msg("recovered authenticated session from stored token")
}

// Login authenticates against the backend and establishes the session. The
// login response carries only the token, so the current user is synthesized
// from its claims. Backend errors propagate unchanged: auth failures are not
// transient, so there is no retry.
//
// Attempts are serialized: a login while another is still in flight fails
// with domain.ErrLoginInProgress, so an out-of-order response can never
// overwrite a newer session.
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) error {
	s.mu.Lock()
	if s.loginInFlight {
		s.mu.Unlock()
		return domain.ErrLoginInProgress
	}
	s.loginInFlight = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.loginInFlight = false
		s.mu.Unlock()
	}()

	token, err := s.api.Login(ctx, creds)
	if err != nil {
		s.log.Warn().Err(err).Str("username", creds.Username).Msg("login rejected")
		return err
	}

	if err := s.tokens.Persist(ctx, token); err != nil {
		return err
	}

	username, _ := s.tokens.UsernameFromStoredToken(ctx)
	roles := domain.RolesFromBackend(s.tokens.RolesFromStoredToken(ctx))
	user := &domain.User{
		ID:       0,
		Username: username,
		Email:    "",
		Roles:    roles,
	}
	s.session.SetAuthenticated(user)

	s.log.Info().Str("username", username).Msg("login succeeded")
	return nil
}

// Register creates a client account. Registration returns the full user
// object alongside the token, so no claim synthesis is needed.
func (s *AuthService) Register(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	grant, err := s.api.Register(ctx, reg)
	if err != nil {
		s.log.Warn().Err(err).Str("username", reg.Username).Msg("registration rejected")
		return nil, err
	}

	if err := s.tokens.Persist(ctx, grant.Token); err != nil {
		return nil, err
	}
	s.session.SetAuthenticated(grant.User)

	s.log.Info().Str("username", reg.Username).Msg("registration succeeded")
	return grant.User, nil
}

// Logout clears the stored token, resets the session and navigates to the
// login entry point. Idempotent: calling it with no prior session is safe.
func (s *AuthService) Logout(ctx context.Context) {
	if err := s.tokens.Remove(ctx); err != nil {
		s.log.Warn().Err(err).Msg("token removal failed during logout")
	}
	s.session.Reset()
	s.nav.Navigate(domain.LoginRoute)
}

// IsAuthenticated re-derives the answer from stored token state on every
// call. An expired token triggers Logout as a side effect so a stale flag
// never silently persists.
func (s *AuthService) IsAuthenticated(ctx context.Context) bool {
	raw, err := s.tokens.Retrieve(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNoToken) {
			s.log.Warn().Err(err).Msg("token retrieval failed")
		}
		return false
	}
	if s.tokens.IsExpired(raw) {
		s.log.Info().Msg("stored token expired, forcing logout")
		s.Logout(ctx)
		return false
	}
	return true
}

// Roles reads the current roles from token claims, never from the cached
// user, so role checks stay correct even when the session user is minimal.
func (s *AuthService) Roles(ctx context.Context) []domain.Role {
	return domain.RolesFromBackend(s.tokens.RolesFromStoredToken(ctx))
}

func (s *AuthService) HasRole(ctx context.Context, role domain.Role) bool {
	for _, r := range s.Roles(ctx) {
		if r == role {
			return true
		}
	}
	return false
}

func (s *AuthService) HasAnyRole(ctx context.Context, roles ...domain.Role) bool {
	for _, role := range roles {
		if s.HasRole(ctx, role) {
			return true
		}
	}
	return false
}

// Username reads the current identity from token claims.
func (s *AuthService) Username(ctx context.Context) (string, bool) {
	return s.tokens.UsernameFromStoredToken(ctx)
}

func (s *AuthService) CurrentUser() *domain.User {
	return s.session.CurrentUser()
}

// RedirectByRole resolves the landing route for the current roles in fixed
// priority order (manager, courier, client, recipient) and navigates there.
// The ordering is the documented tie-break for users holding several roles;
// with no known role the application root wins.
func (s *AuthService) RedirectByRole(ctx context.Context) string {
	roles := s.Roles(ctx)
	target := domain.RootRoute
	for _, candidate := range domain.RolePriority() {
		if !hasRole(roles, candidate) {
			continue
		}
		if route, ok := domain.HomeRoute(candidate); ok {
			target = route
			break
		}
	}
	s.nav.Navigate(target)
	return target
}

func hasRole(roles []domain.Role, role domain.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
