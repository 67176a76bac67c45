// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"cardvault/internal/domain/entity"
	domainerrors "cardvault/internal/domain/errors"
	"cardvault/internal/domain/repository"
	"cardvault/internal/domain/service"
	"cardvault/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// SignUp orchestrates the account creation process.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	srv.logger.Debug("Starting sign-up", slog.String("username", input.Username))

	// Hash outside the transaction; bcrypt is CPU-bound and must not hold a
	// database connection.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during sign-up", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("sign-up failed")
	}

	var registeredUser *entity.User

	// The existence check and the insert run in a single transaction. The
	// unique constraint on username still backs this up: a concurrent sign-up
	// that slips past the check surfaces as ErrUsernameExists from Create.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByUsername(ctx, input.Username)
		if err == nil {
			// A user with this username was found.
			return domainerrors.ErrUsernameTaken.WrapMessage("sign-up failed")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check username availability")
		}

		newUser := &entity.User{
			Username:     input.Username,
			PasswordHash: hashedPassword,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrUsernameExists) {
				return domainerrors.ErrUsernameTaken.WrapMessage("sign-up failed")
			}

			return errors.Wrap(err, "failed to create user")
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.logger.Warn("Sign-up failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}
	srv.logger.Info("User registered successfully", slog.Any("userID", registeredUser.ID))

	return &usecase.SignUpOutput{User: registeredUser}, nil
}

// SignIn orchestrates the credential verification and token issuance process.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	srv.logger.Debug("Starting sign-in", slog.String("username", input.Username))

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByUsername(ctx, input.Username)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("sign-in failed")
			}

			return errors.Wrap(err, "failed to find user by username")
		}
		user = found

		return nil
	})
	if err != nil {
		srv.logger.Warn("Sign-in failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	// Check the password outside the transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Sign-in failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("sign-in failed")
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		srv.logger.Error("Failed to issue session token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}
	srv.logger.Debug("User signed in successfully", slog.Any("userID", user.ID))

	return &usecase.SignInOutput{Token: token}, nil
}
