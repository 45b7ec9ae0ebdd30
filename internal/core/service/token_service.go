package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/smartlogi/frontend/internal/core/domain"
	"github.com/smartlogi/frontend/internal/core/ports"
)

var _ ports.TokenService = (*TokenService)(nil)

// TokenService persists the bearer token in the configured vault and reads
// claims out of it. Decoding never verifies the signature: the token arrived
// over TLS from the backend, and the backend re-verifies it on every call.
type TokenService struct {
	vault ports.TokenVault
	log   zerolog.Logger
	now   func() time.Time
}

func NewTokenService(vault ports.TokenVault, log zerolog.Logger) *TokenService {
	return &TokenService{vault: vault, log: log, now: time.Now}
}

// Persist stores the raw token string. No validation happens at write time.
func (s *TokenService) Persist(ctx context.Context, raw string) error {
	if err := s.vault.Store(ctx, raw); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}

// Retrieve returns the stored raw token or domain.ErrNoToken.
func (s *TokenService) Retrieve(ctx context.Context) (string, error) {
	return s.vault.Load(ctx)
}

// Remove deletes the stored token. Removing an absent token is a no-op.
func (s *TokenService) Remove(ctx context.Context) error {
	if err := s.vault.Clear(ctx); err != nil {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

// Decode splits the token, decodes the payload segment and parses the claims.
// It returns domain.ErrTokenMalformed (wrapped) on any malformed input.
func (s *TokenService) Decode(raw string) (*domain.Claims, error) {
	mapClaims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, mapClaims); err != nil {
		s.log.Debug().Err(err).Msg("token decode failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenMalformed, err)
	}

	claims := &domain.Claims{
		Roles:       claimStrings(mapClaims, "roles"),
		Authorities: claimStrings(mapClaims, "authorities"),
	}
	if sub, err := mapClaims.GetSubject(); err == nil {
		claims.Subject = sub
	}
	if username, ok := mapClaims["username"].(string); ok {
		claims.Username = username
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		claims.ExpiresAt = &t
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		t := iat.Time
		claims.IssuedAt = &t
	}
	return claims, nil
}

// IsExpired is fail-closed: a token that cannot be decoded, or that carries
// no expiry claim, counts as expired.
func (s *TokenService) IsExpired(raw string) bool {
	claims, err := s.Decode(raw)
	if err != nil || claims.ExpiresAt == nil {
		return true
	}
	return !claims.ExpiresAt.After(s.now())
}

// RolesFromStoredToken returns the backend role identifiers carried by the
// stored token: empty when no token is stored, the token cannot be decoded,
// or the claims carry no roles field.
func (s *TokenService) RolesFromStoredToken(ctx context.Context) []string {
	raw, err := s.vault.Load(ctx)
	if err != nil {
		return nil
	}
	claims, err := s.Decode(raw)
	if err != nil {
		return nil
	}
	return claims.RoleNames()
}

// UsernameFromStoredToken returns the stored token's subject claim, falling
// back to the username claim, or false when neither is available.
func (s *TokenService) UsernameFromStoredToken(ctx context.Context) (string, bool) {
	raw, err := s.vault.Load(ctx)
	if err != nil {
		return "", false
	}
	claims, err := s.Decode(raw)
	if err != nil {
		return "", false
	}
	return claims.Identity()
}

// claimStrings reads a string-array claim, distinguishing an absent claim
// (nil) from a present-but-empty one.
func claimStrings(claims jwt.MapClaims, key string) []string {
	value, ok := claims[key]
	if !ok {
		return nil
	}
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
