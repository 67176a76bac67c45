package impl

import (
	"context"
	"testing"

	"cardvault/internal/domain/entity"
	domainerrors "cardvault/internal/domain/errors"
	"cardvault/internal/domain/repository"
	"cardvault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_SignUp_Success(t *testing.T) {
	userRepo := &mockUserRepository{}
	hasher := newTestHasher()
	service := NewAuthService(&stubTxManager{repo: userRepo}, hasher, newTestTokenService(), newDiscardLogger())

	ctx := context.Background()
	newID := uuid.New()

	userRepo.On("FindByUsername", ctx, "alice").Return(nil, repository.ErrUserNotFound)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = newID
		}).
		Return(nil)

	output, err := service.SignUp(ctx, &usecase.SignUpInput{Username: "alice", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, newID, output.User.ID)
	assert.Equal(t, "alice", output.User.Username)
	// The stored credential is a digest that verifies against the plaintext.
	assert.NotEqual(t, "s3cret", output.User.PasswordHash)
	assert.True(t, hasher.Check("s3cret", output.User.PasswordHash))
	userRepo.AssertExpectations(t)
}

func TestAuthService_SignUp_UsernameTaken(t *testing.T) {
	userRepo := &mockUserRepository{}
	service := NewAuthService(&stubTxManager{repo: userRepo}, newTestHasher(), newTestTokenService(), newDiscardLogger())

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Username: "alice"}

	userRepo.On("FindByUsername", ctx, "alice").Return(existing, nil)

	output, err := service.SignUp(ctx, &usecase.SignUpInput{Username: "alice", Password: "s3cret"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_SignUp_ConcurrentCreateLosesRace(t *testing.T) {
	userRepo := &mockUserRepository{}
	service := NewAuthService(&stubTxManager{repo: userRepo}, newTestHasher(), newTestTokenService(), newDiscardLogger())

	ctx := context.Background()

	// The availability check passes, but another request creates the same
	// username before the insert lands. The unique constraint reports it.
	userRepo.On("FindByUsername", ctx, "alice").Return(nil, repository.ErrUserNotFound)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrUsernameExists)

	output, err := service.SignUp(ctx, &usecase.SignUpInput{Username: "alice", Password: "s3cret"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestAuthService_SignIn_Success(t *testing.T) {
	userRepo := &mockUserRepository{}
	hasher := newTestHasher()
	tokenService := newTestTokenService()
	service := NewAuthService(&stubTxManager{repo: userRepo}, hasher, tokenService, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	digest, err := hasher.Hash("s3cret")
	require.NoError(t, err)

	userRepo.On("FindByUsername", ctx, "alice").Return(&entity.User{
		ID:           userID,
		Username:     "alice",
		PasswordHash: digest,
	}, nil)

	output, err := service.SignIn(ctx, &usecase.SignInInput{Username: "alice", Password: "s3cret"})

	require.NoError(t, err)
	assert.NotEmpty(t, output.Token)

	// The issued token verifies and is bound to the right user identity.
	claims, err := tokenService.Verify(output.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestAuthService_SignIn_UserNotFound(t *testing.T) {
	userRepo := &mockUserRepository{}
	service := NewAuthService(&stubTxManager{repo: userRepo}, newTestHasher(), newTestTokenService(), newDiscardLogger())

	ctx := context.Background()
	userRepo.On("FindByUsername", ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	output, err := service.SignIn(ctx, &usecase.SignInInput{Username: "ghost", Password: "whatever"})

	require.Error(t, err)
	assert.Nil(t, output)
	// Missing user and bad password are distinct outcomes.
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_SignIn_WrongPassword(t *testing.T) {
	userRepo := &mockUserRepository{}
	hasher := newTestHasher()
	service := NewAuthService(&stubTxManager{repo: userRepo}, hasher, newTestTokenService(), newDiscardLogger())

	ctx := context.Background()
	digest, err := hasher.Hash("right password")
	require.NoError(t, err)

	userRepo.On("FindByUsername", ctx, "alice").Return(&entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: digest,
	}, nil)

	output, err := service.SignIn(ctx, &usecase.SignInInput{Username: "alice", Password: "wrong password"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.False(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
