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

// RecipeHandler holds dependencies for recipe handlers.
type RecipeHandler struct {
	uc     usecase.RecipeUsecase
	logger *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler, injected by Fx.
func NewRecipeHandler(uc usecase.RecipeUsecase, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns all recipes, optionally filtered by ?user_id=.
func (h *RecipeHandler) List(c echo.Context) error {
	var ownerID *uuid.UUID
	if raw := c.QueryParam("user_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid user_id filter")
		}
		ownerID = &parsed
	}

	output, err := h.uc.List(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Recipes retrieved successfully")
}

// Get returns a single recipe with author and categories.
func (h *RecipeHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recipe id")
	}

	output, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Recipe retrieved successfully")
}

// Create stores a new recipe owned by the authenticated caller.
func (h *RecipeHandler) Create(c echo.Context) error {
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var input *usecase.CreateRecipeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Create(c.Request().Context(), callerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Recipe created successfully")
}

// Update applies a partial patch to a recipe owned by the caller.
func (h *RecipeHandler) Update(c echo.Context) error {
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recipe id")
	}

	var input *usecase.UpdateRecipeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}

	output, err := h.uc.Update(c.Request().Context(), id, callerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Recipe updated successfully")
}

// Delete removes a recipe owned by the caller.
func (h *RecipeHandler) Delete(c echo.Context) error {
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recipe id")
	}

	if err := h.uc.Delete(c.Request().Context(), id, callerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Recipe deleted"}, "Recipe deleted successfully")
}
