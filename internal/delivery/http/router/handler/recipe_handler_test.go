package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cookbook/internal/delivery/http/middleware"
	"cookbook/internal/delivery/http/validator"
	"cookbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRecipeUsecase lets each test script the usecase behavior it needs.
type stubRecipeUsecase struct {
	create func(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateRecipeInput) (*usecase.RecipeOutput, error)
	list   func(ctx context.Context, ownerID *uuid.UUID) ([]*usecase.RecipeOutput, error)
	get    func(ctx context.Context, id uuid.UUID) (*usecase.RecipeOutput, error)
	update func(ctx context.Context, id, callerID uuid.UUID, input *usecase.UpdateRecipeInput) (*usecase.RecipeOutput, error)
	delete func(ctx context.Context, id, callerID uuid.UUID) error
}

func (s *stubRecipeUsecase) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateRecipeInput) (*usecase.RecipeOutput, error) {
	return s.create(ctx, ownerID, input)
}

func (s *stubRecipeUsecase) List(ctx context.Context, ownerID *uuid.UUID) ([]*usecase.RecipeOutput, error) {
	return s.list(ctx, ownerID)
}

func (s *stubRecipeUsecase) Get(ctx context.Context, id uuid.UUID) (*usecase.RecipeOutput, error) {
	return s.get(ctx, id)
}

func (s *stubRecipeUsecase) Update(ctx context.Context, id, callerID uuid.UUID, input *usecase.UpdateRecipeInput) (*usecase.RecipeOutput, error) {
	return s.update(ctx, id, callerID, input)
}

func (s *stubRecipeUsecase) Delete(ctx context.Context, id, callerID uuid.UUID) error {
	return s.delete(ctx, id, callerID)
}

func newRecipeHandler(uc usecase.RecipeUsecase) *RecipeHandler {
	return &RecipeHandler{
		uc:     uc,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func newRecipeContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestRecipeHandler_Get_InvalidID(t *testing.T) {
	h := newRecipeHandler(&stubRecipeUsecase{})

	c, rec := newRecipeContext(http.MethodGet, "/recipes/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecipeHandler_List_InvalidOwnerFilter(t *testing.T) {
	h := newRecipeHandler(&stubRecipeUsecase{})

	c, rec := newRecipeContext(http.MethodGet, "/recipes?user_id=42", "")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecipeHandler_List_OwnerFilterForwarded(t *testing.T) {
	ownerID := uuid.New()
	uc := &stubRecipeUsecase{
		list: func(ctx context.Context, got *uuid.UUID) ([]*usecase.RecipeOutput, error) {
			require.NotNil(t, got)
			assert.Equal(t, ownerID, *got)

			return []*usecase.RecipeOutput{}, nil
		},
	}
	h := newRecipeHandler(uc)

	c, rec := newRecipeContext(http.MethodGet, "/recipes?user_id="+ownerID.String(), "")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecipeHandler_Create_RequiresAuthenticatedCaller(t *testing.T) {
	h := newRecipeHandler(&stubRecipeUsecase{})

	c, rec := newRecipeContext(http.MethodPost, "/recipes", `{"title":"x"}`)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRecipeHandler_Create_Success(t *testing.T) {
	callerID := uuid.New()
	uc := &stubRecipeUsecase{
		create: func(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateRecipeInput) (*usecase.RecipeOutput, error) {
			assert.Equal(t, callerID, ownerID)
			assert.Equal(t, "Shakshuka", input.Title)

			return &usecase.RecipeOutput{ID: uuid.New(), Title: input.Title, OwnerID: ownerID}, nil
		},
	}
	h := newRecipeHandler(uc)

	body := `{"title":"Shakshuka","description":"d","ingredients":"i","instructions":"s"}`
	c, rec := newRecipeContext(http.MethodPost, "/recipes", body)
	c.Set(middleware.ContextKeyUserID, callerID)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRecipeHandler_Update_EmptyBodyIsValidPatch(t *testing.T) {
	callerID := uuid.New()
	recipeID := uuid.New()
	uc := &stubRecipeUsecase{
		update: func(ctx context.Context, id, caller uuid.UUID, input *usecase.UpdateRecipeInput) (*usecase.RecipeOutput, error) {
			// Echo leaves the bound pointer nil for a bodyless request;
			// the usecase must accept that as an empty patch.
			assert.Nil(t, input)

			return &usecase.RecipeOutput{ID: id, Title: "Shakshuka", OwnerID: caller}, nil
		},
	}
	h := newRecipeHandler(uc)

	c, rec := newRecipeContext(http.MethodPut, "/recipes/"+recipeID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(recipeID.String())
	c.Set(middleware.ContextKeyUserID, callerID)

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecipeHandler_Delete_Success(t *testing.T) {
	callerID := uuid.New()
	recipeID := uuid.New()
	uc := &stubRecipeUsecase{
		delete: func(ctx context.Context, id, caller uuid.UUID) error {
			assert.Equal(t, recipeID, id)
			assert.Equal(t, callerID, caller)

			return nil
		},
	}
	h := newRecipeHandler(uc)

	c, rec := newRecipeContext(http.MethodDelete, "/recipes/"+recipeID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(recipeID.String())
	c.Set(middleware.ContextKeyUserID, callerID)

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
