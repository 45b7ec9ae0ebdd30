package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoToken means no bearer token is present in durable storage.
	ErrNoToken = errors.New("no stored token")

	// ErrTokenMalformed means the stored token could not be decoded.
	// Malformed tokens are treated as expired everywhere (fail-closed).
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrLoginInProgress rejects a login attempt while another is still in
	// flight, so a stale response can never overwrite a newer session.
	ErrLoginInProgress = errors.New("login already in progress")

	// ErrInvalidCredentials is the backend's rejection of a login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionExpired marks a 401 from the backend; it forces a logout.
	ErrSessionExpired = errors.New("session expired")

	// ErrForbidden marks a 403 from the backend or a failed role check.
	ErrForbidden = errors.New("access forbidden")

	// ErrNotFound marks a 404 from the backend.
	ErrNotFound = errors.New("resource not found")

	// ErrBackendUnreachable marks a transport failure with no HTTP status.
	ErrBackendUnreachable = errors.New("backend unreachable")
)

// Fault is a backend failure translated into a user-facing message. The
// original cause is always wrapped so callers can still inspect it after the
// global handling (forced logout on 401, access-denied redirect on 403) has
// run.
type Fault struct {
	// Status is the HTTP status of the failed response, or 0 when the
	// backend could not be reached at all.
	Status int
	// Message is safe to surface to the user.
	Message string
	// Err is the underlying cause.
	Err error
}

func (f *Fault) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s (status %d): %v", f.Message, f.Status, f.Err)
	}
	return fmt.Sprintf("%s (status %d)", f.Message, f.Status)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
