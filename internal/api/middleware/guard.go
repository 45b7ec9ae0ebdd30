// Package middleware adapts the pure access-control decisions to echo: the
// router consults the guard before a protected view runs and performs the
// redirect the decision names.
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartlogi/frontend/internal/api/metrics"
	"github.com/smartlogi/frontend/internal/core/domain"
	"github.com/smartlogi/frontend/internal/core/service"
)

// Guard gates a route (or route group) with the given requirement. An empty
// requirement means "authenticated only".
func Guard(guard *service.Guard, req domain.RouteRequirement) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			decision := guard.Check(c.Request().Context(), req, path)
			if decision.Allowed {
				metrics.GuardDecisionsTotal.WithLabelValues("allowed").Inc()
				return next(c)
			}

			outcome := "unauthenticated"
			if decision.RedirectTo == domain.AccessDeniedRoute {
				outcome = "forbidden"
			}
			metrics.GuardDecisionsTotal.WithLabelValues(outcome).Inc()

			return c.Redirect(http.StatusFound, decision.RedirectTo)
		}
	}
}
