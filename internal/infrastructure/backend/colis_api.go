package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/smartlogi/frontend/internal/core/domain"
	"github.com/smartlogi/frontend/internal/core/ports"
)

var _ ports.ColisAPI = (*Client)(nil)

// page mirrors the Spring-style page envelope some list endpoints return.
type page[T any] struct {
	Content []T `json:"content"`
}

// ListColis returns all colis, optionally filtered by status.
func (c *Client) ListColis(ctx context.Context, status domain.Status) ([]domain.Colis, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"statut": []string{string(status)}}
	}
	var out []domain.Colis
	if err := c.do(ctx, http.MethodGet, "/api/colis", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetColis(ctx context.Context, id string) (*domain.Colis, error) {
	var out domain.Colis
	if err := c.do(ctx, http.MethodGet, "/api/colis/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateColis(ctx context.Context, id string, req domain.ColisRequest) (*domain.Colis, error) {
	var out domain.Colis
	if err := c.do(ctx, http.MethodPut, "/api/colis/"+id, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteColis(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/colis/"+id, nil, nil, nil)
}

func (c *Client) ColisHistory(ctx context.Context, id string) ([]domain.DeliveryEvent, error) {
	var out []domain.DeliveryEvent
	if err := c.do(ctx, http.MethodGet, "/api/colis/"+id+"/historique", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyColis lists the authenticated client's colis. The backend identifies the
// client from the bearer token and answers with a page envelope.
func (c *Client) MyColis(ctx context.Context) ([]domain.Colis, error) {
	var out page[domain.Colis]
	if err := c.do(ctx, http.MethodGet, "/api/clients/colis", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Content, nil
}

func (c *Client) CreateColis(ctx context.Context, req domain.ColisRequest) (*domain.Colis, error) {
	var out domain.Colis
	if err := c.do(ctx, http.MethodPost, "/api/clients/colis", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ColisByCourier(ctx context.Context, courierID string) ([]domain.Colis, error) {
	var out []domain.Colis
	if err := c.do(ctx, http.MethodGet, "/api/colis/livreur/"+courierID, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
