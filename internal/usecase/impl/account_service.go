// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"cookbook/config"
	deliverycontext "cookbook/internal/delivery/context"
	"cookbook/internal/domain/entity"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/domain/repository"
	"cookbook/internal/domain/service"
	"cookbook/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	sessions          service.SessionManager
	minPasswordLength int
	logger            *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Sessions  service.SessionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	minPasswordLength := 6
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MinPasswordLength > 0 {
		minPasswordLength = params.Config.Auth.MinPasswordLength
	}

	return &accountService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		sessions:          params.Sessions,
		minPasswordLength: minPasswordLength,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new account. The uniqueness checks and the insert run
// in one transaction so a failed signup never leaves a partial row behind.
func (srv *accountService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.UserSummary, error) {
	srv.log(ctx).Info("Starting signup", slog.String("username", input.Username))

	var registeredUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := srv.checkSignupConflicts(ctx, userRepo, input); err != nil {
			return err
		}

		if err := validateSignupCredentials(input, srv.minPasswordLength); err != nil {
			return err
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password during signup")
		}

		newUser := &entity.User{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: hashedPassword,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during signup")
		}

		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", registeredUser.ID))

	return toUserSummary(registeredUser, true), nil
}

func (srv *accountService) checkSignupConflicts(ctx context.Context, userRepo repository.UserRepository, input *usecase.SignupInput) error {
	if _, err := userRepo.FindByUsername(ctx, input.Username); err == nil {
		return errors.Wrap(domainerrors.ErrDuplicateUsername, "signup rejected")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check username uniqueness")
	}

	if _, err := userRepo.FindByEmail(ctx, input.Email); err == nil {
		return errors.Wrap(domainerrors.ErrDuplicateEmail, "signup rejected")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check email uniqueness")
	}

	return nil
}

func validateSignupCredentials(input *usecase.SignupInput, minPasswordLength int) error {
	if len(input.Password) < minPasswordLength {
		return errors.Wrap(domainerrors.ErrWeakPassword, "signup rejected")
	}

	if !strings.Contains(input.Email, "@") {
		return errors.Wrap(domainerrors.ErrInvalidEmail, "signup rejected")
	}

	return nil
}

// Login authenticates the credentials and starts a session. Unknown
// usernames and wrong passwords produce the same error.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	user, err := srv.loadLoginUser(ctx, input.Username)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	// Check password outside the transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.sessions.Start(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to start session during login")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		Token: token,
		User:  toUserSummary(user, true),
	}, nil
}

func (srv *accountService) loadLoginUser(ctx context.Context, username string) (*entity.User, error) {
	var user *entity.User

	// Load the account from the primary in a short transaction to avoid
	// stale reads on replicas right after signup.
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, findErr := repoFactory.UserRepo().FindByUsername(ctx, username)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(findErr, "failed to find user by username")
		}
		user = found

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	return user, nil
}

// CheckAuth resolves a session token. An invalid or missing token is
// anonymous, not an error; the handler decides the status code.
func (srv *accountService) CheckAuth(ctx context.Context, token string) (*usecase.AuthStatus, error) {
	userID, ok := srv.sessions.Resolve(token)
	if !ok {
		return &usecase.AuthStatus{Authenticated: false}, nil
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Session points at a vanished account; treat as anonymous.
			srv.sessions.End(token)

			return &usecase.AuthStatus{Authenticated: false}, nil
		}

		return nil, errors.Wrap(err, "failed to load session user")
	}

	return &usecase.AuthStatus{
		Authenticated: true,
		User:          toUserSummary(user, true),
	}, nil
}

// Logout ends the session. Idempotent: unknown tokens are a no-op.
func (srv *accountService) Logout(ctx context.Context, token string) error {
	srv.sessions.End(token)
	srv.log(ctx).Debug("Session ended")

	return nil
}

// toUserSummary maps an entity to its external representation. The password
// hash never leaves the usecase layer.
func toUserSummary(user *entity.User, includeEmail bool) *usecase.UserSummary {
	if user == nil {
		return nil
	}

	summary := &usecase.UserSummary{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}

	if includeEmail {
		summary.Email = user.Email
	}

	return summary
}
