package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ProfileUsecase exposes public user profiles.
type ProfileUsecase interface {
	// GetProfile returns the target user's public profile. The email is
	// included only when the requester is the target user.
	GetProfile(ctx context.Context, targetID, requesterID uuid.UUID) (*UserSummary, error)
}
