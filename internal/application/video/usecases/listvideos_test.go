package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelhub/reelhub/internal/application/video/dto"
	"github.com/reelhub/reelhub/internal/domain/user"
	apperrors "github.com/reelhub/reelhub/internal/shared/errors"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

func TestListVideosUseCase_Execute_Pagination(t *testing.T) {
	f := newVideoFixture(t)
	for i := 0; i < 25; i++ {
		f.seedVideo(t, fmt.Sprintf("Video %02d", i))
	}
	uc := NewListVideosUseCase(f.videos, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), dto.ListVideosRequest{Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, result.Items, 5)
	assert.Equal(t, int64(25), result.Total)
	assert.Equal(t, 3, result.TotalPages)
}

func TestListVideosUseCase_Execute_KeywordFilter(t *testing.T) {
	f := newVideoFixture(t)
	f.seedVideo(t, "Song A")
	f.seedVideo(t, "Song B")
	f.seedVideo(t, "Documentary")
	uc := NewListVideosUseCase(f.videos, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), dto.ListVideosRequest{Keyword: "song", Page: 0, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)
}

func TestListVideosUseCase_Execute_CategoryAndUserFilter(t *testing.T) {
	f := newVideoFixture(t)
	ctx := context.Background()
	f.seedVideo(t, "Song A")

	bob, err := user.NewUser("bob", "bob@example.com", "", "hashed:pw", user.RoleUser)
	require.NoError(t, err)
	require.NoError(t, f.users.Create(ctx, bob))

	bobUC := f.createUseCase()
	_, err = bobUC.Execute(ctx, dto.CreateVideoRequest{
		Title:      "Song B",
		URL:        "https://videos.example.com/song-b",
		CategoryID: f.category.ID(),
		UserID:     bob.ID(),
	})
	require.NoError(t, err)

	uc := NewListVideosUseCase(f.videos, logger.NewNopLogger())
	userID := f.user.ID()
	result, err := uc.Execute(ctx, dto.ListVideosRequest{UserID: &userID, Page: 0, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Song A", result.Items[0].Title)

	catID := f.category.ID()
	result, err = uc.Execute(ctx, dto.ListVideosRequest{CategoryID: &catID, Page: 0, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
}

func TestListVideosUseCase_Execute_Ranking(t *testing.T) {
	f := newVideoFixture(t)
	ctx := context.Background()
	a := f.seedVideo(t, "Song A")
	b := f.seedVideo(t, "Song B")

	// b gets more views, a gets more likes.
	require.NoError(t, f.videos.IncrementViews(ctx, b.ID()))
	require.NoError(t, f.videos.IncrementViews(ctx, b.ID()))
	require.NoError(t, f.videos.IncrementViews(ctx, a.ID()))
	require.NoError(t, f.videos.IncrementLikes(ctx, a.ID()))

	uc := NewListVideosUseCase(f.videos, logger.NewNopLogger())

	result, err := uc.Execute(ctx, dto.ListVideosRequest{Ranking: "most_viewed", Page: 0, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "Song B", result.Items[0].Title)

	result, err = uc.Execute(ctx, dto.ListVideosRequest{Ranking: "most_liked", Page: 0, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "Song A", result.Items[0].Title)
}

func TestListVideosUseCase_Execute_InvalidRanking(t *testing.T) {
	f := newVideoFixture(t)
	uc := NewListVideosUseCase(f.videos, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), dto.ListVideosRequest{Ranking: "trending", Page: 0, PageSize: 10})
	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestListVideosUseCase_Execute_ExcludesInactive(t *testing.T) {
	f := newVideoFixture(t)
	ctx := context.Background()
	f.seedVideo(t, "Song A")
	hidden := f.seedVideo(t, "Song B")
	hidden.Deactivate()
	require.NoError(t, f.videos.Update(ctx, hidden))

	uc := NewListVideosUseCase(f.videos, logger.NewNopLogger())
	result, err := uc.Execute(ctx, dto.ListVideosRequest{Page: 0, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Song A", result.Items[0].Title)
}
