package postgres

import (
	"context"

	"cardvault/internal/domain/entity"
	domainerrors "cardvault/internal/domain/errors"
	"cardvault/internal/domain/repository"
	"cardvault/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading their cards
// in insertion order.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Cards", func(db *gorm.DB) *gorm.DB {
			return db.Order("user_cards.created_at ASC")
		}).
		Where("id = ?", id).
		First(&userM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByUsername retrieves a single user by their username.
// The lookup is an exact, case-sensitive match.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Cards", func(db *gorm.DB) *gorm.DB {
			return db.Order("user_cards.created_at ASC")
		}).
		Where("username = ?", username).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors.
		if isUniqueConstraintViolation(err) {
			return repository.ErrUsernameExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// AppendCard inserts a card for the user iff no card with the same number
// exists yet. The ON CONFLICT DO NOTHING clause on the (user_id, card_number)
// unique index makes the check-and-insert a single atomic statement, so
// concurrent registrations of the same number cannot both succeed.
func (repo *userRepository) AppendCard(ctx context.Context, userID uuid.UUID, card *entity.Card) error {
	cardM := fromCardDomain(userID, card)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "card_number"}},
			DoNothing: true,
		}).
		Create(cardM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to append card")
	}
	if result.RowsAffected == 0 {
		// A card with this number was already present, possibly inserted by a
		// concurrent request between the caller's dedup scan and this insert.
		return repository.ErrCardExists
	}

	card.ID = cardM.ID
	card.UserID = cardM.UserID
	card.CreatedAt = cardM.CreatedAt

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	cards := make([]entity.Card, 0, len(data.Cards))
	for i := range data.Cards {
		cards = append(cards, toCardDomain(&data.Cards[i]))
	}

	return &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		Cards:        cards,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
	}
}

// toCardDomain converts a GORM CardModel to a domain Card entity.
func toCardDomain(data *model.CardModel) entity.Card {
	return entity.Card{
		ID:             data.ID,
		UserID:         data.UserID,
		CardholderName: data.CardholderName,
		CardNumber:     data.CardNumber,
		ExpirationDate: data.ExpirationDate,
		CVV:            data.CVV,
		CreatedAt:      data.CreatedAt,
	}
}

// fromCardDomain converts a domain Card entity to a GORM CardModel.
func fromCardDomain(userID uuid.UUID, data *entity.Card) *model.CardModel {
	return &model.CardModel{
		ID:             data.ID,
		UserID:         userID,
		CardholderName: data.CardholderName,
		CardNumber:     data.CardNumber,
		ExpirationDate: data.ExpirationDate,
		CVV:            data.CVV,
	}
}
