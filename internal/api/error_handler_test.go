package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/smartlogi/frontend/internal/core/domain"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, resp["error"]
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrLoginInProgress, http.StatusConflict},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrNoToken, http.StatusUnauthorized},
		{domain.ErrSessionExpired, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrNotFound, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec, _ := handleError(t, tc.err)
		if rec.Code != tc.code {
			t.Fatalf("%v mapped to %d, want %d", tc.err, rec.Code, tc.code)
		}
	}
}

func TestErrorHandler_ForwardsFault(t *testing.T) {
	fault := &domain.Fault{Status: http.StatusUnauthorized, Message: "Session expired. Please sign in again.", Err: domain.ErrSessionExpired}
	rec, msg := handleError(t, fault)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if msg != fault.Message {
		t.Fatalf("expected the fault message to surface, got %q", msg)
	}
}

func TestErrorHandler_ConnectivityFaultBecomesBadGateway(t *testing.T) {
	fault := &domain.Fault{Status: 0, Message: "Unable to reach the server. Check your connection.", Err: domain.ErrBackendUnreachable}
	rec, msg := handleError(t, fault)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	if msg != fault.Message {
		t.Fatalf("expected the fault message to surface, got %q", msg)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec, msg := handleError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg != "invalid payload" {
		t.Fatalf("unexpected message: %q", msg)
	}
}
