package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelhub/reelhub/internal/application/category/dto"
	"github.com/reelhub/reelhub/internal/application/category/testutil"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

func TestListCategoriesUseCase_Execute_Pagination(t *testing.T) {
	repo := testutil.NewMockCategoryRepository()
	ctx := context.Background()
	for i := 0; i < 25; i++ {
		seedCategory(t, repo, fmt.Sprintf("Category %02d", i))
	}
	uc := NewListCategoriesUseCase(repo, logger.NewNopLogger())

	tests := []struct {
		name       string
		page       int
		wantItems  int
		totalPages int
	}{
		{name: "first page", page: 0, wantItems: 10, totalPages: 3},
		{name: "middle page", page: 1, wantItems: 10, totalPages: 3},
		{name: "last page", page: 2, wantItems: 5, totalPages: 3},
		{name: "past the end", page: 3, wantItems: 0, totalPages: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.Execute(ctx, dto.ListCategoriesRequest{Page: tt.page, PageSize: 10})
			require.NoError(t, err)
			assert.Len(t, result.Items, tt.wantItems)
			assert.Equal(t, int64(25), result.Total)
			assert.Equal(t, tt.page, result.Page)
			assert.Equal(t, tt.totalPages, result.TotalPages)
		})
	}
}

func TestListCategoriesUseCase_Execute_KeywordFilter(t *testing.T) {
	repo := testutil.NewMockCategoryRepository()
	ctx := context.Background()
	seedCategory(t, repo, "Rock Music")
	seedCategory(t, repo, "Jazz Music")
	seedCategory(t, repo, "Documentaries")
	uc := NewListCategoriesUseCase(repo, logger.NewNopLogger())

	result, err := uc.Execute(ctx, dto.ListCategoriesRequest{Keyword: "music", Page: 0, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)
	assert.Len(t, result.Items, 2)
}

func TestListCategoriesUseCase_Execute_ExcludesInactive(t *testing.T) {
	repo := testutil.NewMockCategoryRepository()
	ctx := context.Background()
	seedCategory(t, repo, "Music")
	hidden := seedCategory(t, repo, "Movies")
	hidden.Deactivate()
	require.NoError(t, repo.Update(ctx, hidden))

	uc := NewListCategoriesUseCase(repo, logger.NewNopLogger())
	result, err := uc.Execute(ctx, dto.ListCategoriesRequest{Page: 0, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Music", result.Items[0].Name)
}

func TestListCategoriesUseCase_Execute_EmptyResult(t *testing.T) {
	repo := testutil.NewMockCategoryRepository()
	uc := NewListCategoriesUseCase(repo, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), dto.ListCategoriesRequest{Page: 0, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, int64(0), result.Total)
	assert.Equal(t, 0, result.TotalPages)
}

func TestListCategoriesUseCase_Execute_SortDescending(t *testing.T) {
	repo := testutil.NewMockCategoryRepository()
	ctx := context.Background()
	seedCategory(t, repo, "Alpha")
	seedCategory(t, repo, "Beta")
	uc := NewListCategoriesUseCase(repo, logger.NewNopLogger())

	result, err := uc.Execute(ctx, dto.ListCategoriesRequest{Page: 0, PageSize: 10, SortBy: "name", SortDir: "desc"})
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "Beta", result.Items[0].Name)
}

func TestListCategoriesUseCase_ExecuteAll(t *testing.T) {
	repo := testutil.NewMockCategoryRepository()
	ctx := context.Background()
	seedCategory(t, repo, "Music")
	hidden := seedCategory(t, repo, "Movies")
	hidden.Deactivate()
	require.NoError(t, repo.Update(ctx, hidden))

	uc := NewListCategoriesUseCase(repo, logger.NewNopLogger())
	items, err := uc.ExecuteAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Music", items[0].Name)
}
