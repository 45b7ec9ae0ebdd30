package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/smartlogi/frontend/internal/core/domain"
)

type stubAuthAPI struct {
	loginFn    func(ctx context.Context, creds domain.Credentials) (string, error)
	registerFn func(ctx context.Context, reg domain.Registration) (*domain.AuthGrant, error)
}

func (s *stubAuthAPI) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	return s.loginFn(ctx, creds)
}

func (s *stubAuthAPI) Register(ctx context.Context, reg domain.Registration) (*domain.AuthGrant, error) {
	return s.registerFn(ctx, reg)
}

type stubNavigator struct {
	mu    sync.Mutex
	paths []string
}

func (n *stubNavigator) Navigate(path string) {
	n.mu.Lock()
	n.paths = append(n.paths, path)
	n.mu.Unlock()
}

func (n *stubNavigator) last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.paths) == 0 {
		return ""
	}
	return n.paths[len(n.paths)-1]
}

func newTestAuthService(vault *memVault, api *stubAuthAPI) (*AuthService, *SessionState, *stubNavigator) {
	session := NewSessionState()
	nav := &stubNavigator{}
	tokens := NewTokenService(vault, zerolog.Nop())
	svc := NewAuthService(tokens, api, session, nav, zerolog.Nop())
	return svc, session, nav
}

func TestAuthService_Login_Success(t *testing.T) {
	raw := mintToken(t, jwt.MapClaims{
		"sub":   "alice",
		"roles": []string{"GESTIONNAIRE"},
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	vault := &memVault{}
	api := &stubAuthAPI{
		loginFn: func(_ context.Context, creds domain.Credentials) (string, error) {
			if creds.Username != "alice" || creds.Password != "s3cret" {
				t.Fatalf("unexpected credentials: %+v", creds)
			}
			return raw, nil
		},
	}
	svc, session, _ := newTestAuthService(vault, api)

	if err := svc.Login(context.Background(), domain.Credentials{Username: "alice", Password: "s3cret"}); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if !session.Authenticated() {
		t.Fatalf("expected session to be authenticated")
	}
	stored, err := vault.Load(context.Background())
	if err != nil || stored != raw {
		t.Fatalf("stored token = %q/%v, want the login token", stored, err)
	}

	// The login response carries only the token, so the user is synthesized
	// from its claims.
	user := svc.CurrentUser()
	if user == nil {
		t.Fatalf("expected a current user")
	}
	if user.Username != "alice" || user.ID != 0 || user.Email != "" {
		t.Fatalf("unexpected synthesized user: %+v", user)
	}
	if len(user.Roles) != 1 || user.Roles[0] != domain.RoleManager {
		t.Fatalf("unexpected roles: %v", user.Roles)
	}
}

func TestAuthService_Login_Failure(t *testing.T) {
	vault := &memVault{}
	api := &stubAuthAPI{
		loginFn: func(context.Context, domain.Credentials) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	svc, session, _ := newTestAuthService(vault, api)

	err := svc.Login(context.Background(), domain.Credentials{Username: "alice", Password: "wrong"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if session.Authenticated() {
		t.Fatalf("failed login must not authenticate the session")
	}
	if _, err := vault.Load(context.Background()); !errors.Is(err, domain.ErrNoToken) {
		t.Fatalf("failed login must not store a token, got %v", err)
	}
}

func TestAuthService_Login_Sequenced(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	raw := mintToken(t, jwt.MapClaims{
		"sub":   "alice",
		"roles": []string{"CLIENT"},
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	var startedOnce sync.Once
	api := &stubAuthAPI{
		loginFn: func(context.Context, domain.Credentials) (string, error) {
			startedOnce.Do(func() { close(started) })
			<-release
			return raw, nil
		},
	}
	svc, _, _ := newTestAuthService(&memVault{}, api)

	done := make(chan error, 1)
	go func() {
		done <- svc.Login(context.Background(), domain.Credentials{Username: "alice", Password: "s3cret"})
	}()
	<-started

	// A second attempt while the first is still in flight is rejected.
	if err := svc.Login(context.Background(), domain.Credentials{Username: "alice", Password: "s3cret"}); !errors.Is(err, domain.ErrLoginInProgress) {
		t.Fatalf("expected ErrLoginInProgress, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first login failed: %v", err)
	}

	// Once the first attempt finishes, logging in works again.
	if err := svc.Login(context.Background(), domain.Credentials{Username: "alice", Password: "s3cret"}); err != nil {
		t.Fatalf("login after completion failed: %v", err)
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	raw := mintToken(t, jwt.MapClaims{
		"sub":   "dan",
		"roles": []string{"CLIENT"},
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	vault := &memVault{}
	api := &stubAuthAPI{
		registerFn: func(_ context.Context, reg domain.Registration) (*domain.AuthGrant, error) {
			return &domain.AuthGrant{
				Token: raw,
				User:  &domain.User{ID: 42, Username: reg.Username, Email: reg.Email, Roles: []domain.Role{domain.RoleClient}},
			}, nil
		},
	}
	svc, session, _ := newTestAuthService(vault, api)

	user, err := svc.Register(context.Background(), domain.Registration{Username: "dan", Email: "dan@example.com", Password: "s3cret"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user == nil || user.ID != 42 {
		t.Fatalf("unexpected user: %+v", user)
	}
	if !session.Authenticated() {
		t.Fatalf("expected session to be authenticated after registration")
	}
	// Registration returns the full user, so no claim synthesis happens.
	if got := svc.CurrentUser(); got == nil || got.Email != "dan@example.com" {
		t.Fatalf("unexpected current user: %+v", got)
	}
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	vault := &memVault{}
	svc, session, nav := newTestAuthService(vault, &stubAuthAPI{})

	// No session exists yet; logout must still be safe.
	svc.Logout(context.Background())
	if session.Authenticated() {
		t.Fatalf("expected unauthenticated session")
	}
	if nav.last() != domain.LoginRoute {
		t.Fatalf("expected navigation to login, got %q", nav.last())
	}

	svc.Logout(context.Background())
	if _, err := vault.Load(context.Background()); !errors.Is(err, domain.ErrNoToken) {
		t.Fatalf("expected empty vault, got %v", err)
	}
}

func TestAuthService_IsAuthenticated_ExpiredTokenForcesLogout(t *testing.T) {
	stale := mintToken(t, jwt.MapClaims{
		"sub":   "alice",
		"roles": []string{"CLIENT"},
		"exp":   time.Now().Add(-time.Minute).Unix(),
	})
	vault := &memVault{raw: stale}
	svc, session, nav := newTestAuthService(vault, &stubAuthAPI{})

	if svc.IsAuthenticated(context.Background()) {
		t.Fatalf("expired token must not authenticate")
	}
	if session.Authenticated() {
		t.Fatalf("expected session reset after forced logout")
	}
	if _, err := vault.Load(context.Background()); !errors.Is(err, domain.ErrNoToken) {
		t.Fatalf("expected token to be cleared, got %v", err)
	}
	if nav.last() != domain.LoginRoute {
		t.Fatalf("expected navigation to login, got %q", nav.last())
	}
}

func TestAuthService_IsAuthenticated(t *testing.T) {
	vault := &memVault{}
	svc, _, _ := newTestAuthService(vault, &stubAuthAPI{})

	if svc.IsAuthenticated(context.Background()) {
		t.Fatalf("empty vault must not authenticate")
	}

	fresh := mintToken(t, jwt.MapClaims{"sub": "alice", "exp": time.Now().Add(time.Hour).Unix()})
	if err := vault.Store(context.Background(), fresh); err != nil {
		t.Fatalf("store failed: %v", err)
	}
	if !svc.IsAuthenticated(context.Background()) {
		t.Fatalf("valid token must authenticate")
	}
}

func TestAuthService_SessionRecovery(t *testing.T) {
	fresh := mintToken(t, jwt.MapClaims{"sub": "alice", "exp": time.Now().Add(time.Hour).Unix()})
	vault := &memVault{raw: fresh}
	_, session, _ := newTestAuthService(vault, &stubAuthAPI{})

	if !session.Authenticated() {
		t.Fatalf("expected session recovered from stored token")
	}
	// Only the token is known at recovery time; the user stays unset.
	if session.CurrentUser() != nil {
		t.Fatalf("expected no user after recovery, got %+v", session.CurrentUser())
	}
}

func TestAuthService_SessionRecovery_ExpiredToken(t *testing.T) {
	stale := mintToken(t, jwt.MapClaims{"sub": "alice", "exp": time.Now().Add(-time.Minute).Unix()})
	vault := &memVault{raw: stale}
	_, session, _ := newTestAuthService(vault, &stubAuthAPI{})

	if session.Authenticated() {
		t.Fatalf("expired token must not recover a session")
	}
}

func TestAuthService_RoleChecks(t *testing.T) {
	raw := mintToken(t, jwt.MapClaims{
		"sub":   "alice",
		"roles": []string{"GESTIONNAIRE", "CLIENT"},
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	vault := &memVault{raw: raw}
	svc, _, _ := newTestAuthService(vault, &stubAuthAPI{})
	ctx := context.Background()

	if !svc.HasRole(ctx, domain.RoleManager) || !svc.HasRole(ctx, domain.RoleClient) {
		t.Fatalf("expected MANAGER and CLIENT roles, got %v", svc.Roles(ctx))
	}
	if svc.HasRole(ctx, domain.RoleCourier) {
		t.Fatalf("did not expect COURIER role")
	}
	if !svc.HasAnyRole(ctx, domain.RoleCourier, domain.RoleClient) {
		t.Fatalf("expected HasAnyRole to match CLIENT")
	}
	if svc.HasAnyRole(ctx, domain.RoleCourier, domain.RoleRecipient) {
		t.Fatalf("did not expect any of COURIER, RECIPIENT")
	}

	username, ok := svc.Username(ctx)
	if !ok || username != "alice" {
		t.Fatalf("username = %q/%v, want alice", username, ok)
	}
}

func TestAuthService_RedirectByRole(t *testing.T) {
	cases := []struct {
		name   string
		roles  []string
		target string
	}{
		{"manager wins over client", []string{"CLIENT", "GESTIONNAIRE"}, "/gestionnaire/dashboard"},
		{"courier wins over recipient", []string{"DESTINATAIRE", "LIVREUR"}, "/livreur/mes-colis"},
		{"single client", []string{"CLIENT"}, "/client/mes-colis"},
		{"recipient", []string{"DESTINATAIRE"}, "/destinataire/suivi-colis"},
		{"no known role", []string{"SUPERVISEUR"}, domain.RootRoute},
		{"no roles at all", nil, domain.RootRoute},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			claims := jwt.MapClaims{"sub": "x", "exp": time.Now().Add(time.Hour).Unix()}
			if tc.roles != nil {
				claims["roles"] = tc.roles
			}
			vault := &memVault{raw: mintToken(t, claims)}
			svc, _, nav := newTestAuthService(vault, &stubAuthAPI{})

			if got := svc.RedirectByRole(context.Background()); got != tc.target {
				t.Fatalf("RedirectByRole = %q, want %q", got, tc.target)
			}
			if nav.last() != tc.target {
				t.Fatalf("navigator went to %q, want %q", nav.last(), tc.target)
			}
		})
	}
}
