package domain

import "time"

// Claims is the decoded payload of a bearer token. Decoding is a trust-on-read
// peek used only for claim extraction; the front-end never verifies
// signatures, and the backend re-verifies the token on every API call.
type Claims struct {
	Subject     string
	Username    string
	Roles       []string
	Authorities []string
	ExpiresAt   *time.Time
	IssuedAt    *time.Time
}

// Identity returns the token's subject, falling back to the username claim.
func (c *Claims) Identity() (string, bool) {
	if c.Subject != "" {
		return c.Subject, true
	}
	if c.Username != "" {
		return c.Username, true
	}
	return "", false
}

// RoleNames returns the backend role identifiers carried by the token,
// preferring the "roles" claim over the "authorities" fallback. An empty
// roles array is still a roles claim; the fallback applies only when the
// primary claim is absent.
func (c *Claims) RoleNames() []string {
	if c.Roles != nil {
		return c.Roles
	}
	return c.Authorities
}
