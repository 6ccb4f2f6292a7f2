package handler

import (
	"log/slog"
	"net/http"

	"cookbook/internal/delivery/http/middleware"
	"cookbook/internal/delivery/http/response"
	"cookbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for public profile handlers.
type UserHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetProfile returns a user's public profile. The email is only present
// when the requester is looking at their own profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	requesterID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	output, err := h.uc.GetProfile(c.Request().Context(), targetID, requesterID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Profile retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
