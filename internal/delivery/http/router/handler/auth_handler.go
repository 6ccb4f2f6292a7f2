// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"cookbook/config"
	"cookbook/internal/delivery/http/middleware"
	"cookbook/internal/delivery/http/response"
	"cookbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for signup, login, and session handlers.
type AuthHandler struct {
	uc     usecase.AccountUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AccountUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// Signup handles the account registration request.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input *usecase.SignupInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Signup(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "User registered successfully")
}

// Login handles the login request and delivers the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(middleware.NewSessionCookie(h.cfg, output.Token))

	return response.Success(c, http.StatusOK, output.User, "Login successful")
}

// CheckAuth reports the identity bound to the caller's session, if any.
// Anonymous callers get a 401 with an explicit authenticated=false payload.
func (h *AuthHandler) CheckAuth(c echo.Context) error {
	token := h.sessionToken(c)

	status, err := h.uc.CheckAuth(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	if !status.Authenticated {
		return c.JSON(http.StatusUnauthorized, response.Response{
			Success: false,
			Code:    http.StatusUnauthorized,
			Message: "Not authenticated",
			Data:    status,
		})
	}

	// The successful check slid the server-side expiry; re-issue the cookie
	// so the browser-side lifetime slides with it.
	c.SetCookie(middleware.NewSessionCookie(h.cfg, token))

	return response.Success(c, http.StatusOK, status, "Authenticated")
}

// Logout ends the caller's session and clears the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	token, ok := middleware.CurrentSessionToken(c)
	if !ok {
		token = h.sessionToken(c)
	}

	if err := h.uc.Logout(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(middleware.ExpiredSessionCookie(h.cfg))

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

func (h *AuthHandler) sessionToken(c echo.Context) string {
	cookie, err := c.Cookie(h.cfg.Session.CookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}
