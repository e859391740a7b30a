package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelhub/reelhub/internal/application/user/dto"
	"github.com/reelhub/reelhub/internal/application/user/testutil"
	"github.com/reelhub/reelhub/internal/domain/user"
	apperrors "github.com/reelhub/reelhub/internal/shared/errors"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

func newCreateUserUseCase(repo *testutil.MockUserRepository) *CreateUserUseCase {
	return NewCreateUserUseCase(repo, &testutil.FakePasswordHasher{}, logger.NewNopLogger())
}

func seedUser(t *testing.T, repo *testutil.MockUserRepository, username, email string) *user.User {
	t.Helper()
	u, err := user.NewUser(username, email, "", "hashed:secret", user.RoleUser)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestCreateUserUseCase_Execute_Success(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	uc := newCreateUserUseCase(repo)

	result, err := uc.Execute(context.Background(), dto.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		FullName: "Alice Smith",
		Password: "s3cret",
		Role:     "ADMIN",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotZero(t, result.ID)
	assert.Equal(t, "alice", result.Username)
	assert.Equal(t, user.RoleAdmin.String(), result.Role)
	assert.Equal(t, user.StatusActive.String(), result.Status)

	// Only the hash is stored, never the plaintext.
	stored, err := repo.GetByID(context.Background(), result.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "hashed:s3cret", stored.PasswordHash())
	assert.NotEqual(t, "s3cret", stored.PasswordHash())
}

func TestCreateUserUseCase_Execute_DuplicateUsername(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	seedUser(t, repo, "alice", "alice@example.com")
	uc := newCreateUserUseCase(repo)

	result, err := uc.Execute(context.Background(), dto.CreateUserRequest{
		Username: "ALICE",
		Email:    "other@example.com",
		Password: "pw",
		Role:     "USER",
	})

	assert.ErrorIs(t, err, user.ErrUsernameExists)
	assert.Nil(t, result)
}

func TestCreateUserUseCase_Execute_DuplicateEmail(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	seedUser(t, repo, "alice", "alice@example.com")
	uc := newCreateUserUseCase(repo)

	result, err := uc.Execute(context.Background(), dto.CreateUserRequest{
		Username: "bob",
		Email:    "Alice@Example.com",
		Password: "pw",
		Role:     "USER",
	})

	assert.ErrorIs(t, err, user.ErrEmailExists)
	assert.Nil(t, result)
}

func TestCreateUserUseCase_Execute_InvalidRole(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	uc := newCreateUserUseCase(repo)

	result, err := uc.Execute(context.Background(), dto.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pw",
		Role:     "SUPERUSER",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestCreateUserUseCase_Execute_EmptyPassword(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	uc := newCreateUserUseCase(repo)

	result, err := uc.Execute(context.Background(), dto.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Role:     "USER",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}
