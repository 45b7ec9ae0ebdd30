// Package api assembles the front-end's route table. Route grouping mirrors
// the navigation structure: one public auth area plus one guarded area per
// role, each carrying its role requirement.
package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/smartlogi/frontend/internal/api/handler"
	"github.com/smartlogi/frontend/internal/api/middleware"
	"github.com/smartlogi/frontend/internal/core/domain"
	"github.com/smartlogi/frontend/internal/core/ports"
	"github.com/smartlogi/frontend/internal/core/service"
)

// Deps carries everything the route table needs.
type Deps struct {
	Auth    ports.AuthSession
	Guard   *service.Guard
	Colis   ports.ColisAPI
	Manager ports.ManagerAPI
	Refs    ports.ReferentialAPI
	Vault   ports.TokenVault
	Backend ports.Pinger
	Logger  zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("smartlogi"))

	authHandler := handler.NewAuthHandler(deps.Auth)
	managerHandler := handler.NewManagerHandler(deps.Manager)
	clientHandler := handler.NewClientHandler(deps.Colis, deps.Refs)
	courierHandler := handler.NewCourierHandler(deps.Colis, deps.Auth)
	recipientHandler := handler.NewRecipientHandler(deps.Colis)
	healthHandler := handler.NewHealthHandler(deps.Vault, deps.Backend)

	// --- Public routes ---
	e.GET("/", authHandler.Root)
	e.GET(domain.LoginRoute, authHandler.LoginPage)
	e.POST(domain.LoginRoute, authHandler.Login)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET(domain.AccessDeniedRoute, authHandler.AccessDenied)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Guarded routes, one group per role ---
	manager := e.Group("/gestionnaire", middleware.Guard(deps.Guard, domain.RouteRequirement{
		Roles: []domain.Role{domain.RoleManager},
	}))
	manager.GET("/dashboard", managerHandler.Dashboard)
	manager.GET("/colis", managerHandler.ColisList)
	manager.POST("/colis/:id/assigner", managerHandler.Assign)
	manager.PUT("/colis/:id/traiter", managerHandler.Process)
	manager.GET("/clients", managerHandler.Clients)
	manager.GET("/livreurs", managerHandler.Couriers)

	courier := e.Group("/livreur", middleware.Guard(deps.Guard, domain.RouteRequirement{
		Roles: []domain.Role{domain.RoleCourier},
	}))
	courier.GET("/mes-colis", courierHandler.MesColis)
	courier.GET("/tournee", courierHandler.Tournee)

	client := e.Group("/client", middleware.Guard(deps.Guard, domain.RouteRequirement{
		Roles: []domain.Role{domain.RoleClient},
	}))
	client.GET("/mes-colis", clientHandler.MesColis)
	client.GET("/colis/:id", clientHandler.ColisDetails)
	client.GET("/nouvelle-livraison", clientHandler.NewDeliveryForm)
	client.POST("/nouvelle-livraison", clientHandler.CreateDelivery)
	client.GET("/historique", clientHandler.Historique)

	recipient := e.Group("/destinataire", middleware.Guard(deps.Guard, domain.RouteRequirement{
		Roles: []domain.Role{domain.RoleRecipient},
	}))
	recipient.GET("/suivi-colis", recipientHandler.SuiviColis)

	return e
}
