package backend

import (
	"context"
	"net/http"

	"github.com/smartlogi/frontend/internal/core/domain"
	"github.com/smartlogi/frontend/internal/core/ports"
)

var _ ports.AuthAPI = (*Client)(nil)

// Login exchanges credentials for a bearer token. In this deployment the
// response carries only the token; user details must be read from its claims.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	var grant domain.AuthGrant
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, creds, &grant); err != nil {
		return "", err
	}
	return grant.Token, nil
}

// Register creates a new client account and returns both the token and the
// full user object.
func (c *Client) Register(ctx context.Context, reg domain.Registration) (*domain.AuthGrant, error) {
	var grant domain.AuthGrant
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, reg, &grant); err != nil {
		return nil, err
	}
	return &grant, nil
}
