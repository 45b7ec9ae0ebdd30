package ports

import (
	"context"

	"github.com/smartlogi/frontend/internal/core/domain"
)

// TokenVault is durable client-side key-value storage for the raw bearer
// token, keyed by a configured constant. Implementations: local file (the
// default) and Redis for shared kiosk deployments.
type TokenVault interface {
	// Load returns the raw stored token, or domain.ErrNoToken when absent.
	Load(ctx context.Context) (string, error)
	// Store overwrites the stored token. No validation happens at write time.
	Store(ctx context.Context, raw string) error
	// Clear deletes the stored token. Clearing an empty vault is a no-op.
	Clear(ctx context.Context) error
}

// TokenService persists, retrieves and decodes the bearer token.
type TokenService interface {
	Persist(ctx context.Context, raw string) error
	// Retrieve returns the stored raw token or domain.ErrNoToken.
	Retrieve(ctx context.Context) (string, error)
	Remove(ctx context.Context) error

	// Decode extracts the claims without verifying the signature. A failure
	// means the caller must treat the token as carrying no claims.
	Decode(raw string) (*domain.Claims, error)
	// IsExpired is fail-closed: undecodable tokens and tokens without an
	// expiry claim count as expired.
	IsExpired(raw string) bool

	// RolesFromStoredToken returns the backend role identifiers carried by
	// the stored token, or an empty slice when there is no usable token.
	RolesFromStoredToken(ctx context.Context) []string
	// UsernameFromStoredToken returns the stored token's subject, or false
	// when there is no usable token.
	UsernameFromStoredToken(ctx context.Context) (string, bool)
}
