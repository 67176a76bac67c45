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

// cardService implements the CardUsecase interface.
type cardService struct {
	txManager    repository.TransactionManager
	tokenService service.TokenService
	validator    service.CardValidator
	logger       *slog.Logger
}

// NewCardService is the constructor for cardService. It receives all dependencies as interfaces.
func NewCardService(
	txManager repository.TransactionManager,
	tokenService service.TokenService,
	validator service.CardValidator,
	logger *slog.Logger,
) usecase.CardUsecase {
	return &cardService{
		txManager:    txManager,
		tokenService: tokenService,
		validator:    validator,
		logger:       logger,
	}
}

// RegisterCard orchestrates token verification, dedup check, card validation,
// and persistence. Each step short-circuits on failure.
func (srv *cardService) RegisterCard(ctx context.Context, input *usecase.RegisterCardInput) (*usecase.RegisterCardOutput, error) {
	// 1. Verify the session token. Token errors propagate unchanged so the
	// caller can distinguish expired from tampered tokens.
	claims, err := srv.tokenService.Verify(input.Token)
	if err != nil {
		srv.logger.Warn("Card registration rejected", slog.Any("error", err))

		return nil, err
	}

	status := usecase.CardStatusCreated

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 2. Look up the token's user.
		user, err := userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("card registration failed")
			}

			return errors.Wrap(err, "failed to find user by id")
		}

		// 3. Dedup scan: byte-exact comparison, no normalization. A match is
		// idempotent success, not an error.
		if user.HasCardNumber(input.CardNumber) {
			status = usecase.CardStatusAlreadyExists

			return nil
		}

		// 4. Structural validation of the card number.
		if err := srv.validator.Validate(input.CardNumber); err != nil {
			return err
		}

		// 5. Atomic conditional append. ErrCardExists here means a concurrent
		// request registered the same number after our scan; report it the
		// same way as the dedup hit.
		card := &entity.Card{
			CardholderName: input.CardholderName,
			CardNumber:     input.CardNumber,
			ExpirationDate: input.ExpirationDate,
			CVV:            input.CVV,
		}
		if err := userRepo.AppendCard(ctx, user.ID, card); err != nil {
			if errors.Is(err, repository.ErrCardExists) {
				status = usecase.CardStatusAlreadyExists

				return nil
			}

			return errors.Wrap(err, "failed to append card")
		}

		return nil
	})

	if err != nil {
		srv.logger.Warn("Card registration failed", slog.Any("userID", claims.UserID), slog.Any("error", err))

		return nil, err
	}
	srv.logger.Info("Card registration completed",
		slog.Any("userID", claims.UserID),
		slog.String("status", string(status)),
	)

	return &usecase.RegisterCardOutput{Status: status}, nil
}
