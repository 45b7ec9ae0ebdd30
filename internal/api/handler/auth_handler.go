package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartlogi/frontend/internal/api/metrics"
	"github.com/smartlogi/frontend/internal/core/domain"
	"github.com/smartlogi/frontend/internal/core/ports"
)

// AuthHandler serves the authentication entry points of the front-end.
type AuthHandler struct {
	auth ports.AuthSession
}

func NewAuthHandler(auth ports.AuthSession) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=3"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
}

type registerRequest struct {
	Username  string `json:"username" form:"username" validate:"required,min=3"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	Password  string `json:"password" form:"password" validate:"required,min=6"`
	LastName  string `json:"nom" form:"nom" validate:"required"`
	FirstName string `json:"prenom" form:"prenom" validate:"required"`
	Phone     string `json:"telephone" form:"telephone"`
	Address   string `json:"adresse" form:"adresse"`
}

// LoginPage renders the login view. An already-authenticated visitor is sent
// straight to their role's landing page.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if h.auth.IsAuthenticated(c.Request().Context()) {
		return c.Redirect(http.StatusFound, h.auth.RedirectByRole(c.Request().Context()))
	}
	return c.JSON(http.StatusOK, map[string]string{
		"view":      "login",
		"returnUrl": c.QueryParam(domain.ReturnURLParam),
	})
}

// Login submits credentials and, on success, resumes the interrupted
// navigation (returnUrl) or falls back to the role-based landing page.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      303
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	creds := domain.Credentials{Username: req.Username, Password: req.Password}
	if err := h.auth.Login(ctx, creds); err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	target := c.QueryParam(domain.ReturnURLParam)
	if target == "" {
		target = h.auth.RedirectByRole(ctx)
	}
	return c.Redirect(http.StatusSeeOther, target)
}

// Register creates a client account and establishes the session.
//
// @Summary      Register a new client
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	user, err := h.auth.Register(ctx, domain.Registration{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		LastName:  req.LastName,
		FirstName: req.FirstName,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"user":     user,
		"redirect": h.auth.RedirectByRole(ctx),
	})
}

// Logout tears down the session and returns to the login page. Safe to call
// without a session.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.auth.Logout(c.Request().Context())
	return c.Redirect(http.StatusSeeOther, domain.LoginRoute)
}

// Root sends an authenticated visitor to their landing page and everyone
// else to login.
func (h *AuthHandler) Root(c echo.Context) error {
	ctx := c.Request().Context()
	if h.auth.IsAuthenticated(ctx) {
		return c.Redirect(http.StatusFound, h.auth.RedirectByRole(ctx))
	}
	return c.Redirect(http.StatusFound, domain.LoginRoute)
}

// AccessDenied is the fixed denial view role-check failures redirect to.
func (h *AuthHandler) AccessDenied(c echo.Context) error {
	return c.JSON(http.StatusForbidden, map[string]string{
		"view":  "access-denied",
		"error": "Access denied. You do not have the required permissions.",
	})
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrLoginInProgress):
		return "conflict"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "rejected"
	default:
		return "error"
	}
}
