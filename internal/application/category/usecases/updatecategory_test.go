package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelhub/reelhub/internal/application/category/dto"
	"github.com/reelhub/reelhub/internal/application/category/testutil"
	"github.com/reelhub/reelhub/internal/domain/category"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

func seedCategory(t *testing.T, repo *testutil.MockCategoryRepository, name string) *category.Category {
	t.Helper()
	cat, err := category.NewCategory(name, "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), cat))
	return cat
}

func TestUpdateCategoryUseCase_Execute_Success(t *testing.T) {
	repo := testutil.NewMockCategoryRepository()
	cat := seedCategory(t, repo, "Music")
	uc := NewUpdateCategoryUseCase(repo, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), cat.ID(), dto.UpdateCategoryRequest{
		Name:        "Movies",
		Description: "Feature films",
		Active:      true,
	})

	require.NoError(t, err)
	assert.Equal(t, "Movies", result.Name)
	assert.Equal(t, "Feature films", result.Description)
	assert.Equal(t, category.StatusActive.String(), result.Status)
}

func TestUpdateCategoryUseCase_Execute_OwnNameIsNotConflict(t *testing.T) {
	repo := testutil.NewMockCategoryRepository()
	cat := seedCategory(t, repo, "Music")
	uc := NewUpdateCategoryUseCase(repo, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), cat.ID(), dto.UpdateCategoryRequest{
		Name:        "Music",
		Description: "updated",
		Active:      true,
	})

	require.NoError(t, err)
	assert.Equal(t, "Music", result.Name)
	assert.Equal(t, "updated", result.Description)
}

func TestUpdateCategoryUseCase_Execute_NameHeldByOther(t *testing.T) {
	repo := testutil.NewMockCategoryRepository()
	seedCategory(t, repo, "Music")
	other := seedCategory(t, repo, "Movies")
	uc := NewUpdateCategoryUseCase(repo, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), other.ID(), dto.UpdateCategoryRequest{
		Name:   "MUSIC",
		Active: true,
	})

	assert.ErrorIs(t, err, category.ErrNameExists)
	assert.Nil(t, result)
}

func TestUpdateCategoryUseCase_Execute_NotFound(t *testing.T) {
	repo := testutil.NewMockCategoryRepository()
	uc := NewUpdateCategoryUseCase(repo, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), 404, dto.UpdateCategoryRequest{Name: "Music", Active: true})

	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	assert.Nil(t, result)
}

func TestUpdateCategoryUseCase_Execute_CanDeactivate(t *testing.T) {
	repo := testutil.NewMockCategoryRepository()
	cat := seedCategory(t, repo, "Music")
	uc := NewUpdateCategoryUseCase(repo, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), cat.ID(), dto.UpdateCategoryRequest{
		Name:   "Music",
		Active: false,
	})

	require.NoError(t, err)
	assert.Equal(t, category.StatusInactive.String(), result.Status)
}
