package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/smartlogi/frontend/internal/core/domain"
	"github.com/smartlogi/frontend/internal/core/ports"
)

var _ ports.ManagerAPI = (*Client)(nil)

func (c *Client) AllColis(ctx context.Context) ([]domain.Colis, error) {
	var out []domain.Colis
	if err := c.do(ctx, http.MethodGet, "/api/gestionnaires/colis", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AssignCourier hands a colis to a courier for delivery.
func (c *Client) AssignCourier(ctx context.Context, colisID, courierID string) error {
	query := url.Values{"livreurId": []string{courierID}}
	return c.do(ctx, http.MethodPost, "/api/gestionnaires/colis/"+colisID+"/assigner", query, nil, nil)
}

func (c *Client) SearchColis(ctx context.Context, search domain.ColisSearch) ([]domain.Colis, error) {
	query := url.Values{}
	if search.Status != "" {
		query.Set("statut", string(search.Status))
	}
	if search.City != "" {
		query.Set("ville", search.City)
	}
	if search.Priority != "" {
		query.Set("priorite", string(search.Priority))
	}

	var out []domain.Colis
	if err := c.do(ctx, http.MethodGet, "/api/gestionnaires/colis/recherche", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ProcessColis advances a colis to a new status with an optional comment.
func (c *Client) ProcessColis(ctx context.Context, colisID string, status domain.Status, comment string) (*domain.Colis, error) {
	body := map[string]string{"statut": string(status)}
	if comment != "" {
		body["commentaire"] = comment
	}

	var out domain.Colis
	if err := c.do(ctx, http.MethodPut, "/api/gestionnaires/colis/"+colisID+"/traiter", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Statistiques(ctx context.Context) (*domain.Statistiques, error) {
	var out domain.Statistiques
	if err := c.do(ctx, http.MethodGet, "/api/gestionnaires/statistiques", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
