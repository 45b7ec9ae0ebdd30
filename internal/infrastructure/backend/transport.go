package backend

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/smartlogi/frontend/internal/core/ports"
)

// loginPath is excluded from credential attachment: the login endpoint is the
// one place a stale or garbage token must never be sent to.
const loginPath = "/auth/login"

// authTransport attaches the bearer credential to every outbound request that
// is not the login request itself, and only while a non-expired token exists.
type authTransport struct {
	next   http.RoundTripper
	tokens ports.TokenService
}

func newAuthTransport(next http.RoundTripper, tokens ports.TokenService) *authTransport {
	return &authTransport{next: next, tokens: tokens}
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if strings.Contains(req.URL.Path, loginPath) {
		return t.next.RoundTrip(req)
	}

	raw, err := t.tokens.Retrieve(req.Context())
	if err != nil || t.tokens.IsExpired(raw) {
		return t.next.RoundTrip(req)
	}

	// RoundTrippers must not mutate the caller's request.
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+raw)
	return t.next.RoundTrip(clone)
}

// correlationTransport stamps every outbound request with an X-Request-ID so
// front-end and backend logs can be joined.
type correlationTransport struct {
	next http.RoundTripper
}

func newCorrelationTransport(next http.RoundTripper) *correlationTransport {
	return &correlationTransport{next: next}
}

func (t *correlationTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("X-Request-ID") != "" {
		return t.next.RoundTrip(req)
	}
	clone := req.Clone(req.Context())
	clone.Header.Set("X-Request-ID", uuid.NewString())
	return t.next.RoundTrip(clone)
}
