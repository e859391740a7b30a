package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelhub/reelhub/internal/application/user/testutil"
	"github.com/reelhub/reelhub/internal/domain/user"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

func TestUpdateUserStatusUseCase_DeactivateAndReactivate(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	u := seedUser(t, repo, "alice", "alice@example.com")
	statusUC := NewUpdateUserStatusUseCase(repo, logger.NewNopLogger())
	getUC := NewGetUserUseCase(repo, logger.NewNopLogger())
	ctx := context.Background()

	result, err := statusUC.Deactivate(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, user.StatusInactive.String(), result.Status)

	_, err = getUC.ExecuteActive(ctx, u.ID())
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	found, err := getUC.Execute(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, user.StatusInactive.String(), found.Status)

	_, err = statusUC.Activate(ctx, u.ID())
	require.NoError(t, err)

	restored, err := getUC.ExecuteActive(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, user.StatusActive.String(), restored.Status)
}

func TestUpdateUserStatusUseCase_NotFound(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	uc := NewUpdateUserStatusUseCase(repo, logger.NewNopLogger())

	_, err := uc.Deactivate(context.Background(), 42)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
