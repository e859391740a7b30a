package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelhub/reelhub/internal/application/user/dto"
	"github.com/reelhub/reelhub/internal/application/user/testutil"
	"github.com/reelhub/reelhub/internal/domain/user"
	apperrors "github.com/reelhub/reelhub/internal/shared/errors"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

func TestListUsersUseCase_Execute_Pagination(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	ctx := context.Background()
	for i := 0; i < 25; i++ {
		seedUser(t, repo, fmt.Sprintf("user%02d", i), fmt.Sprintf("user%02d@example.com", i))
	}
	uc := NewListUsersUseCase(repo, logger.NewNopLogger())

	result, err := uc.Execute(ctx, dto.ListUsersRequest{Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, result.Items, 5)
	assert.Equal(t, int64(25), result.Total)
	assert.Equal(t, 3, result.TotalPages)
}

func TestListUsersUseCase_Execute_RoleFilter(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	ctx := context.Background()
	seedUser(t, repo, "alice", "alice@example.com")
	admin, err := user.NewUser("root", "root@example.com", "", "hashed:pw", user.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, admin))

	uc := NewListUsersUseCase(repo, logger.NewNopLogger())

	result, err := uc.Execute(ctx, dto.ListUsersRequest{Role: "ADMIN", Page: 0, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "root", result.Items[0].Username)
}

func TestListUsersUseCase_Execute_InvalidRole(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	uc := NewListUsersUseCase(repo, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), dto.ListUsersRequest{Role: "ROOT", Page: 0, PageSize: 10})
	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestListUsersUseCase_Execute_KeywordAndInactive(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	ctx := context.Background()
	seedUser(t, repo, "alice", "alice@example.com")
	hidden := seedUser(t, repo, "alicia", "alicia@example.com")
	hidden.Deactivate()
	require.NoError(t, repo.Update(ctx, hidden))
	seedUser(t, repo, "bob", "bob@example.com")

	uc := NewListUsersUseCase(repo, logger.NewNopLogger())
	result, err := uc.Execute(ctx, dto.ListUsersRequest{Keyword: "alic", Page: 0, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "alice", result.Items[0].Username)
}
