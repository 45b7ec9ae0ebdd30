package ports

import (
	"context"

	"github.com/smartlogi/frontend/internal/core/domain"
)

// Pinger reports whether the backend is reachable at all.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ColisAPI covers the colis endpoints shared by the role views.
type ColisAPI interface {
	ListColis(ctx context.Context, status domain.Status) ([]domain.Colis, error)
	GetColis(ctx context.Context, id string) (*domain.Colis, error)
	UpdateColis(ctx context.Context, id string, req domain.ColisRequest) (*domain.Colis, error)
	DeleteColis(ctx context.Context, id string) error
	ColisHistory(ctx context.Context, id string) ([]domain.DeliveryEvent, error)

	// MyColis lists the colis of the authenticated client; the backend
	// resolves the client from the bearer token.
	MyColis(ctx context.Context) ([]domain.Colis, error)
	CreateColis(ctx context.Context, req domain.ColisRequest) (*domain.Colis, error)
	ColisByCourier(ctx context.Context, courierID string) ([]domain.Colis, error)
}

// ManagerAPI covers the gestionnaire-only operations.
type ManagerAPI interface {
	AllColis(ctx context.Context) ([]domain.Colis, error)
	AssignCourier(ctx context.Context, colisID, courierID string) error
	SearchColis(ctx context.Context, search domain.ColisSearch) ([]domain.Colis, error)
	ProcessColis(ctx context.Context, colisID string, status domain.Status, comment string) (*domain.Colis, error)
	Statistiques(ctx context.Context) (*domain.Statistiques, error)
}

// ReferentialAPI covers the CRUD reference data behind the manager views and
// the client's delivery form.
type ReferentialAPI interface {
	ListDestinataires(ctx context.Context) ([]domain.Destinataire, error)
	CreateDestinataire(ctx context.Context, d domain.Destinataire) (*domain.Destinataire, error)
	UpdateDestinataire(ctx context.Context, id string, d domain.Destinataire) (*domain.Destinataire, error)
	DeleteDestinataire(ctx context.Context, id string) error

	ListProduits(ctx context.Context) ([]domain.Produit, error)
	CreateProduit(ctx context.Context, p domain.Produit) (*domain.Produit, error)

	ListZones(ctx context.Context) ([]domain.Zone, error)
	CreateZone(ctx context.Context, z domain.Zone) (*domain.Zone, error)
}
