package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"cookbook/internal/domain/entity"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/domain/repository"
	mockRepo "cookbook/internal/mocks/repository"
	"cookbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service  usecase.ProfileUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProfileService(ProfileServiceParams{
		UserRepo: userRepo,
		Logger:   logger,
	})

	return profileServiceFixtures{
		service:  service,
		userRepo: userRepo,
	}
}

func TestProfileService_GetProfile_OwnProfileIncludesEmail(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
	}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	output, err := fx.service.GetProfile(ctx, user.ID, user.ID)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, user.Email, output.Email)
}

func TestProfileService_GetProfile_OtherProfileHidesEmail(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
	}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	output, err := fx.service.GetProfile(ctx, user.ID, uuid.New())

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, user.Username, output.Username)
	assert.Empty(t, output.Email)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	targetID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, targetID).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.GetProfile(ctx, targetID, uuid.New())

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
