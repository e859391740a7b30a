package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelhub/reelhub/internal/application/category/testutil"
	"github.com/reelhub/reelhub/internal/domain/category"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

func TestUpdateCategoryStatusUseCase_DeactivateHidesFromActiveLookup(t *testing.T) {
	repo := testutil.NewMockCategoryRepository()
	cat := seedCategory(t, repo, "Music")
	statusUC := NewUpdateCategoryStatusUseCase(repo, logger.NewNopLogger())
	getUC := NewGetCategoryUseCase(repo, logger.NewNopLogger())
	ctx := context.Background()

	result, err := statusUC.Deactivate(ctx, cat.ID())
	require.NoError(t, err)
	assert.Equal(t, category.StatusInactive.String(), result.Status)

	// Active lookup treats the record as absent, plain lookup still sees it.
	_, err = getUC.ExecuteActive(ctx, cat.ID())
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)

	found, err := getUC.Execute(ctx, cat.ID())
	require.NoError(t, err)
	assert.Equal(t, category.StatusInactive.String(), found.Status)

	// Reactivation restores visibility.
	_, err = statusUC.Activate(ctx, cat.ID())
	require.NoError(t, err)

	restored, err := getUC.ExecuteActive(ctx, cat.ID())
	require.NoError(t, err)
	assert.Equal(t, category.StatusActive.String(), restored.Status)
}

func TestUpdateCategoryStatusUseCase_Idempotent(t *testing.T) {
	repo := testutil.NewMockCategoryRepository()
	cat := seedCategory(t, repo, "Music")
	uc := NewUpdateCategoryStatusUseCase(repo, logger.NewNopLogger())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		result, err := uc.Deactivate(ctx, cat.ID())
		require.NoError(t, err)
		assert.Equal(t, category.StatusInactive.String(), result.Status)
	}
	for i := 0; i < 2; i++ {
		result, err := uc.Activate(ctx, cat.ID())
		require.NoError(t, err)
		assert.Equal(t, category.StatusActive.String(), result.Status)
	}
}

func TestUpdateCategoryStatusUseCase_NotFound(t *testing.T) {
	repo := testutil.NewMockCategoryRepository()
	uc := NewUpdateCategoryStatusUseCase(repo, logger.NewNopLogger())

	_, err := uc.Deactivate(context.Background(), 42)
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)

	_, err = uc.Activate(context.Background(), 42)
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}
