package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartlogi/frontend/internal/core/domain"
	"github.com/smartlogi/frontend/internal/core/ports"
)

// CourierHandler serves the livreur views. The courier is identified by the
// token's subject claim.
type CourierHandler struct {
	colis ports.ColisAPI
	auth  ports.AuthSession
}

func NewCourierHandler(colis ports.ColisAPI, auth ports.AuthSession) *CourierHandler {
	return &CourierHandler{colis: colis, auth: auth}
}

// MesColis lists the colis assigned to the authenticated courier.
func (h *CourierHandler) MesColis(c echo.Context) error {
	ctx := c.Request().Context()
	courier, ok := h.auth.Username(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing identity claim")
	}

	colis, err := h.colis.ColisByCourier(ctx, courier)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"view":  "mes-colis",
		"colis": colis,
	})
}

// Tournee shows the courier's current round: only the colis in transit.
func (h *CourierHandler) Tournee(c echo.Context) error {
	ctx := c.Request().Context()
	courier, ok := h.auth.Username(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing identity claim")
	}

	colis, err := h.colis.ColisByCourier(ctx, courier)
	if err != nil {
		return err
	}

	round := make([]domain.Colis, 0, len(colis))
	for _, item := range colis {
		if item.Status == domain.StatusInTransit || item.Status == domain.StatusCollected {
			round = append(round, item)
		}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"view":  "tournee",
		"colis": round,
	})
}
