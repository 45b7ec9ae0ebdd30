package handler

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/smartlogi/frontend/internal/core/domain"
	"github.com/smartlogi/frontend/internal/core/ports"
)

// ClientHandler serves the client (sender) views.
type ClientHandler struct {
	colis ports.ColisAPI
	refs  ports.ReferentialAPI
}

func NewClientHandler(colis ports.ColisAPI, refs ports.ReferentialAPI) *ClientHandler {
	return &ClientHandler{colis: colis, refs: refs}
}

// MesColis lists the authenticated client's colis; the backend resolves the
// client from the bearer token.
func (h *ClientHandler) MesColis(c echo.Context) error {
	colis, err := h.colis.MyColis(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"view":  "mes-colis",
		"colis": colis,
	})
}

// NewDeliveryForm provides the reference data the new-delivery form needs.
func (h *ClientHandler) NewDeliveryForm(c echo.Context) error {
	ctx := c.Request().Context()

	produits, err := h.refs.ListProduits(ctx)
	if err != nil {
		return err
	}
	zones, err := h.refs.ListZones(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"view":     "nouvelle-livraison",
		"produits": produits,
		"zones":    zones,
	})
}

type newDeliveryRequest struct {
	Description     string                `json:"description" validate:"required"`
	WeightKg        float64               `json:"poids" validate:"gt=0"`
	Priority        domain.Priority       `json:"priorite" validate:"required,oneof=HAUTE MOYENNE BASSE"`
	DestinationCity string                `json:"villeDestination" validate:"required"`
	Recipient       domain.Destinataire   `json:"destinataire" validate:"required"`
	Zone            *domain.Zone          `json:"zone,omitempty"`
	Produits        []domain.ColisProduit `json:"produits"`
}

// CreateDelivery submits a new colis.
func (h *ClientHandler) CreateDelivery(c echo.Context) error {
	var req newDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	colis, err := h.colis.CreateColis(c.Request().Context(), domain.ColisRequest{
		Description:     req.Description,
		WeightKg:        req.WeightKg,
		Priority:        req.Priority,
		DestinationCity: req.DestinationCity,
		Recipient:       req.Recipient,
		Zone:            req.Zone,
		Produits:        req.Produits,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, colis)
}

// Historique flattens the delivery history of the client's colis.
func (h *ClientHandler) Historique(c echo.Context) error {
	colis, err := h.colis.MyColis(c.Request().Context())
	if err != nil {
		return err
	}

	events := make([]domain.DeliveryEvent, 0)
	for _, item := range colis {
		events = append(events, item.History...)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"view":       "historique",
		"historique": events,
	})
}

// ColisDetails shows one colis plus its delivery history. The two lookups
// are independent, so they run concurrently.
func (h *ClientHandler) ColisDetails(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var (
		wg         sync.WaitGroup
		colis      *domain.Colis
		history    []domain.DeliveryEvent
		colisErr   error
		historyErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		colis, colisErr = h.colis.GetColis(ctx, id)
	}()
	go func() {
		defer wg.Done()
		history, historyErr = h.colis.ColisHistory(ctx, id)
	}()
	wg.Wait()

	if colisErr != nil {
		return colisErr
	}
	if historyErr != nil {
		return historyErr
	}

	return c.JSON(http.StatusOK, map[string]any{
		"view":       "colis-details",
		"colis":      colis,
		"historique": history,
	})
}
