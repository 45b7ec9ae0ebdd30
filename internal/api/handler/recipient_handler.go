package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartlogi/frontend/internal/core/ports"
)

// RecipientHandler serves the destinataire views.
type RecipientHandler struct {
	colis ports.ColisAPI
}

func NewRecipientHandler(colis ports.ColisAPI) *RecipientHandler {
	return &RecipientHandler{colis: colis}
}

// SuiviColis tracks a colis by id, or renders the empty tracking view when no
// id was submitted yet.
func (h *RecipientHandler) SuiviColis(c echo.Context) error {
	id := c.QueryParam("colis")
	if id == "" {
		return c.JSON(http.StatusOK, map[string]string{"view": "suivi-colis"})
	}

	ctx := c.Request().Context()
	colis, err := h.colis.GetColis(ctx, id)
	if err != nil {
		return err
	}
	history, err := h.colis.ColisHistory(ctx, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"view":       "suivi-colis",
		"colis":      colis,
		"historique": history,
	})
}
