package backend

import (
	"context"
	"net/http"

	"github.com/smartlogi/frontend/internal/core/domain"
	"github.com/smartlogi/frontend/internal/core/ports"
)

var _ ports.ReferentialAPI = (*Client)(nil)

func (c *Client) ListDestinataires(ctx context.Context) ([]domain.Destinataire, error) {
	var out []domain.Destinataire
	if err := c.do(ctx, http.MethodGet, "/api/destinataires", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateDestinataire(ctx context.Context, d domain.Destinataire) (*domain.Destinataire, error) {
	var out domain.Destinataire
	if err := c.do(ctx, http.MethodPost, "/api/destinataires", nil, d, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateDestinataire(ctx context.Context, id string, d domain.Destinataire) (*domain.Destinataire, error) {
	var out domain.Destinataire
	if err := c.do(ctx, http.MethodPut, "/api/destinataires/"+id, nil, d, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteDestinataire(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/destinataires/"+id, nil, nil, nil)
}

func (c *Client) ListProduits(ctx context.Context) ([]domain.Produit, error) {
	var out []domain.Produit
	if err := c.do(ctx, http.MethodGet, "/api/produits", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProduit(ctx context.Context, p domain.Produit) (*domain.Produit, error) {
	var out domain.Produit
	if err := c.do(ctx, http.MethodPost, "/api/produits", nil, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListZones(ctx context.Context) ([]domain.Zone, error) {
	var out []domain.Zone
	if err := c.do(ctx, http.MethodGet, "/api/zones", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateZone(ctx context.Context, z domain.Zone) (*domain.Zone, error) {
	var out domain.Zone
	if err := c.do(ctx, http.MethodPost, "/api/zones", nil, z, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
