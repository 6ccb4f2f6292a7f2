package impl

import (
	"context"
	"log/slog"

	deliverycontext "cookbook/internal/delivery/context"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/domain/repository"
	"cookbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the target user's public profile. The email is private
// to the account owner.
func (srv *profileService) GetProfile(ctx context.Context, targetID, requesterID uuid.UUID) (*usecase.UserSummary, error) {
	user, err := srv.userRepo.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile lookup failed")
		}

		srv.log(ctx).Error("Failed to load profile", slog.Any("targetID", targetID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return toUserSummary(user, targetID == requesterID), nil
}
