package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartlogi/frontend/internal/core/domain"
	"github.com/smartlogi/frontend/internal/core/ports"
)

const dashboardRecentLimit = 10

// ManagerHandler serves the gestionnaire views.
type ManagerHandler struct {
	manager ports.ManagerAPI
}

func NewManagerHandler(manager ports.ManagerAPI) *ManagerHandler {
	return &ManagerHandler{manager: manager}
}

// Dashboard shows the statistics overview plus the most recent colis.
func (h *ManagerHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.manager.Statistiques(ctx)
	if err != nil {
		return err
	}
	colis, err := h.manager.AllColis(ctx)
	if err != nil {
		return err
	}
	if len(colis) > dashboardRecentLimit {
		colis = colis[:dashboardRecentLimit]
	}

	return c.JSON(http.StatusOK, map[string]any{
		"view":         "dashboard",
		"statistiques": stats,
		"recentColis":  colis,
	})
}

// ColisList lists all colis, or searches when any filter is present.
func (h *ManagerHandler) ColisList(c echo.Context) error {
	ctx := c.Request().Context()
	search := domain.ColisSearch{
		Status:   domain.Status(c.QueryParam("statut")),
		City:     c.QueryParam("ville"),
		Priority: domain.Priority(c.QueryParam("priorite")),
	}

	var (
		colis []domain.Colis
		err   error
	)
	if search.Status != "" || search.City != "" || search.Priority != "" {
		colis, err = h.manager.SearchColis(ctx, search)
	} else {
		colis, err = h.manager.AllColis(ctx)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"view":  "colis-list",
		"colis": colis,
	})
}

type assignRequest struct {
	CourierID string `json:"livreurId" form:"livreurId" query:"livreurId" validate:"required"`
}

// Assign hands a colis to a courier.
func (h *ManagerHandler) Assign(c echo.Context) error {
	var req assignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.manager.AssignCourier(c.Request().Context(), c.Param("id"), req.CourierID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type processRequest struct {
	Status  domain.Status `json:"statut" form:"statut" validate:"required,oneof=CREE COLLECTE EN_STOCK EN_TRANSIT LIVRE"`
	Comment string        `json:"commentaire" form:"commentaire"`
}

// Process advances a colis to a new status.
func (h *ManagerHandler) Process(c echo.Context) error {
	var req processRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	colis, err := h.manager.ProcessColis(c.Request().Context(), c.Param("id"), req.Status, req.Comment)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, colis)
}

// Clients is the client-management view.
// TODO: wire to the backend client directory once the /api/clients endpoints ship.
func (h *ManagerHandler) Clients(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"view": "clients-management"})
}

// Couriers is the courier-management view.
// TODO: wire to the backend courier directory once the /api/livreurs endpoints ship.
func (h *ManagerHandler) Couriers(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"view": "livreurs-management"})
}
