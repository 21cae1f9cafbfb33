// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "swipedeck/internal/delivery/context"
	"swipedeck/internal/domain/entity"
	domainerrors "swipedeck/internal/domain/errors"
	"swipedeck/internal/domain/repository"
	"swipedeck/internal/domain/service"
	"swipedeck/internal/errors"
	"swipedeck/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. The username pre-check short-circuits the
// common duplicate case; the store's unique constraint settles the race when
// two registrations of the same name arrive together.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	if input == nil || strings.TrimSpace(input.Username) == "" || input.Password == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("username and password must be non-empty")
	}

	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	_, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err == nil {
		return domainerrors.ErrUserAlreadyExists.WrapMessage("username taken")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Error("Registration lookup failed", slog.String("username", input.Username), slog.Any("error", err))

		return errors.Wrap(err, "failed to check for existing user")
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed.WrapMessage("bcrypt failure")
	}

	newUser := &entity.User{
		ID:           uuid.New(),
		Username:     input.Username,
		PasswordHash: hashed,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		// A concurrent registration may land between the pre-check and this
		// insert; the constraint violation already carries the conflict error.
		return errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return nil
}

// Login verifies credentials and issues a session token. Unknown usernames
// and wrong passwords take the same exit so responses are indistinguishable.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || strings.TrimSpace(input.Username) == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("missing credentials")
	}

	account, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown username")
		}

		srv.log(ctx).Error("Login lookup failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up user during login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during login", slog.Any("userID", account.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	token, err := srv.tokenService.Issue(account.ID)
	if err != nil {
		srv.log(ctx).Error("Token issuance failed", slog.Any("userID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", account.ID))

	return &usecase.LoginOutput{Token: token}, nil
}
