package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartlogi/frontend/internal/core/domain"
	"github.com/smartlogi/frontend/internal/core/ports"
)

// HealthHandler answers the liveness and readiness probes.
type HealthHandler struct {
	vault   ports.TokenVault
	backend ports.Pinger
}

func NewHealthHandler(vault ports.TokenVault, backend ports.Pinger) *HealthHandler {
	return &HealthHandler{vault: vault, backend: backend}
}

// Liveness reports that the process is alive.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness reports whether the token vault is usable and the backend
// reachable. An empty vault is ready; only a storage failure is not.
func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx := c.Request().Context()

	if _, err := h.vault.Load(ctx); err != nil && !errors.Is(err, domain.ErrNoToken) {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"vault":  err.Error(),
		})
	}
	if err := h.backend.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status":  "degraded",
			"backend": err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
