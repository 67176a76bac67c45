package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"cardvault/config"
	"cardvault/internal/domain/entity"
	"cardvault/internal/domain/repository"
	"cardvault/internal/domain/service"
	"cardvault/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

const testSessionSecret = "test_session_secret_key_very_long_for_testing"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestHasher returns a real bcrypt hasher with the minimum cost to keep tests fast.
func newTestHasher() service.PasswordHasher {
	return auth.NewBcryptHasherWithCost(bcrypt.MinCost)
}

// newTestTokenService returns a real JWT token service with a fixed test secret.
func newTestTokenService() service.TokenService {
	cfg := &config.Config{}
	cfg.SecretKey.Session = testSessionSecret
	cfg.Auth = &config.AuthConfig{SessionTTL: time.Hour}

	svc, err := auth.NewJWTService(cfg)
	if err != nil {
		panic(err)
	}

	return svc
}

// mockUserRepository is a hand-written testify mock for repository.UserRepository.
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *mockUserRepository) AppendCard(ctx context.Context, userID uuid.UUID, card *entity.Card) error {
	args := m.Called(ctx, userID, card)

	return args.Error(0)
}

// stubTxManager runs the transactional callback directly against a single
// repository, without any real transaction semantics.
type stubTxManager struct {
	repo repository.UserRepository
}

func (s *stubTxManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(stubRepoFactory{repo: s.repo})
}

type stubRepoFactory struct {
	repo repository.UserRepository
}

func (f stubRepoFactory) UserRepo() repository.UserRepository {
	return f.repo
}
