package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/smartlogi/frontend/internal/core/domain"
)

type stubVault struct {
	loadErr error
}

func (v *stubVault) Load(context.Context) (string, error) { return "", v.loadErr }
func (v *stubVault) Store(context.Context, string) error  { return nil }
func (v *stubVault) Clear(context.Context) error          { return nil }

type stubPinger struct {
	err error
}

func (p *stubPinger) Ping(context.Context) error { return p.err }

func runHealth(t *testing.T, vault *stubVault, pinger *stubPinger, fn func(h *HealthHandler, c echo.Context) error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHealthHandler(vault, pinger)
	if err := fn(h, c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestHealth_Liveness(t *testing.T) {
	rec := runHealth(t, &stubVault{}, &stubPinger{}, func(h *HealthHandler, c echo.Context) error {
		return h.Liveness(c)
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealth_Readiness(t *testing.T) {
	// An empty vault is ready.
	rec := runHealth(t, &stubVault{loadErr: domain.ErrNoToken}, &stubPinger{}, func(h *HealthHandler, c echo.Context) error {
		return h.Readiness(c)
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealth_Readiness_VaultFailure(t *testing.T) {
	rec := runHealth(t, &stubVault{loadErr: errors.New("disk gone")}, &stubPinger{}, func(h *HealthHandler, c echo.Context) error {
		return h.Readiness(c)
	})
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestHealth_Readiness_BackendUnreachable(t *testing.T) {
	pinger := &stubPinger{err: domain.ErrBackendUnreachable}
	rec := runHealth(t, &stubVault{loadErr: domain.ErrNoToken}, pinger, func(h *HealthHandler, c echo.Context) error {
		return h.Readiness(c)
	})
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
