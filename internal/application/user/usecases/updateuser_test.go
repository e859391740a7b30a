package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelhub/reelhub/internal/application/user/dto"
	"github.com/reelhub/reelhub/internal/application/user/testutil"
	"github.com/reelhub/reelhub/internal/domain/user"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

func newUpdateUserUseCase(repo *testutil.MockUserRepository) *UpdateUserUseCase {
	return NewUpdateUserUseCase(repo, &testutil.FakePasswordHasher{}, logger.NewNopLogger())
}

func TestUpdateUserUseCase_Execute_Success(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	u := seedUser(t, repo, "alice", "alice@example.com")
	uc := newUpdateUserUseCase(repo)

	result, err := uc.Execute(context.Background(), u.ID(), dto.UpdateUserRequest{
		Username: "alice2",
		Email:    "alice2@example.com",
		FullName: "Alice Smith",
		Role:     "ADMIN",
		Active:   true,
	})

	require.NoError(t, err)
	assert.Equal(t, "alice2", result.Username)
	assert.Equal(t, "alice2@example.com", result.Email)
	assert.Equal(t, user.RoleAdmin.String(), result.Role)
}

func TestUpdateUserUseCase_Execute_EmptyPasswordKeepsHash(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	u := seedUser(t, repo, "alice", "alice@example.com")
	before := u.PasswordHash()
	uc := newUpdateUserUseCase(repo)

	_, err := uc.Execute(context.Background(), u.ID(), dto.UpdateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Role:     "USER",
		Active:   true,
	})

	require.NoError(t, err)
	stored, err := repo.GetByID(context.Background(), u.ID())
	require.NoError(t, err)
	assert.Equal(t, before, stored.PasswordHash())
}

func TestUpdateUserUseCase_Execute_NewPasswordRehashed(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	u := seedUser(t, repo, "alice", "alice@example.com")
	uc := newUpdateUserUseCase(repo)

	_, err := uc.Execute(context.Background(), u.ID(), dto.UpdateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "newpw",
		Role:     "USER",
		Active:   true,
	})

	require.NoError(t, err)
	stored, err := repo.GetByID(context.Background(), u.ID())
	require.NoError(t, err)
	assert.Equal(t, "hashed:newpw", stored.PasswordHash())
}

func TestUpdateUserUseCase_Execute_OwnIdentifiersAreNotConflicts(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	u := seedUser(t, repo, "alice", "alice@example.com")
	uc := newUpdateUserUseCase(repo)

	result, err := uc.Execute(context.Background(), u.ID(), dto.UpdateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Role:     "USER",
		Active:   true,
	})

	require.NoError(t, err)
	assert.Equal(t, "alice", result.Username)
}

func TestUpdateUserUseCase_Execute_UsernameHeldByOther(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	seedUser(t, repo, "alice", "alice@example.com")
	bob := seedUser(t, repo, "bob", "bob@example.com")
	uc := newUpdateUserUseCase(repo)

	result, err := uc.Execute(context.Background(), bob.ID(), dto.UpdateUserRequest{
		Username: "Alice",
		Email:    "bob@example.com",
		Role:     "USER",
		Active:   true,
	})

	assert.ErrorIs(t, err, user.ErrUsernameExists)
	assert.Nil(t, result)
}

func TestUpdateUserUseCase_Execute_EmailHeldByOther(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	seedUser(t, repo, "alice", "alice@example.com")
	bob := seedUser(t, repo, "bob", "bob@example.com")
	uc := newUpdateUserUseCase(repo)

	result, err := uc.Execute(context.Background(), bob.ID(), dto.UpdateUserRequest{
		Username: "bob",
		Email:    "ALICE@example.com",
		Role:     "USER",
		Active:   true,
	})

	assert.ErrorIs(t, err, user.ErrEmailExists)
	assert.Nil(t, result)
}

func TestUpdateUserUseCase_Execute_NotFound(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	uc := newUpdateUserUseCase(repo)

	result, err := uc.Execute(context.Background(), 404, dto.UpdateUserRequest{
		Username: "ghost",
		Email:    "ghost@example.com",
		Role:     "USER",
		Active:   true,
	})

	assert.ErrorIs(t, err, user.ErrUserNotFound)
	assert.Nil(t, result)
}
