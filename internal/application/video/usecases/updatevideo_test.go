package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelhub/reelhub/internal/application/video/dto"
	"github.com/reelhub/reelhub/internal/domain/category"
	"github.com/reelhub/reelhub/internal/domain/video"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

func (f *videoFixture) updateUseCase() *UpdateVideoUseCase {
	return NewUpdateVideoUseCase(f.videos, f.categories, f.users, logger.NewNopLogger())
}

func TestUpdateVideoUseCase_Execute_Success(t *testing.T) {
	f := newVideoFixture(t)
	v := f.seedVideo(t, "Song A")
	uc := f.updateUseCase()

	result, err := uc.Execute(context.Background(), v.ID(), dto.UpdateVideoRequest{
		Title:       "Song A (Remastered)",
		Description: "2026 remaster",
		URL:         v.URL(),
		CategoryID:  f.category.ID(),
		UserID:      f.user.ID(),
		Active:      true,
	})

	require.NoError(t, err)
	assert.Equal(t, "Song A (Remastered)", result.Title)
	assert.Equal(t, "2026 remaster", result.Description)
}

func TestUpdateVideoUseCase_Execute_RevalidatesUnchangedRefs(t *testing.T) {
	f := newVideoFixture(t)
	v := f.seedVideo(t, "Song A")
	f.category.Deactivate()
	require.NoError(t, f.categories.Update(context.Background(), f.category))
	uc := f.updateUseCase()

	// The category reference is unchanged but no longer active.
	result, err := uc.Execute(context.Background(), v.ID(), dto.UpdateVideoRequest{
		Title:      "Song A",
		URL:        v.URL(),
		CategoryID: f.category.ID(),
		UserID:     f.user.ID(),
		Active:     true,
	})

	assert.ErrorIs(t, err, video.ErrCategoryNotActive)
	assert.Nil(t, result)
}

func TestUpdateVideoUseCase_Execute_Reassign(t *testing.T) {
	f := newVideoFixture(t)
	v := f.seedVideo(t, "Song A")
	ctx := context.Background()

	other, err := category.NewCategory("Movies", "")
	require.NoError(t, err)
	require.NoError(t, f.categories.Create(ctx, other))

	uc := f.updateUseCase()
	result, err := uc.Execute(ctx, v.ID(), dto.UpdateVideoRequest{
		Title:      "Song A",
		URL:        v.URL(),
		CategoryID: other.ID(),
		UserID:     f.user.ID(),
		Active:     true,
	})

	require.NoError(t, err)
	assert.Equal(t, other.ID(), result.CategoryID)
}

func TestUpdateVideoUseCase_Execute_NotFound(t *testing.T) {
	f := newVideoFixture(t)
	uc := f.updateUseCase()

	result, err := uc.Execute(context.Background(), 404, dto.UpdateVideoRequest{
		Title:      "Ghost",
		URL:        "https://videos.example.com/ghost",
		CategoryID: f.category.ID(),
		UserID:     f.user.ID(),
		Active:     true,
	})

	assert.ErrorIs(t, err, video.ErrVideoNotFound)
	assert.Nil(t, result)
}

func TestUpdateVideoUseCase_Execute_CountersUntouched(t *testing.T) {
	f := newVideoFixture(t)
	v := f.seedVideo(t, "Song A")
	ctx := context.Background()
	require.NoError(t, f.videos.IncrementViews(ctx, v.ID()))
	require.NoError(t, f.videos.IncrementLikes(ctx, v.ID()))

	uc := f.updateUseCase()
	result, err := uc.Execute(ctx, v.ID(), dto.UpdateVideoRequest{
		Title:      "Song B",
		URL:        v.URL(),
		CategoryID: f.category.ID(),
		UserID:     f.user.ID(),
		Active:     true,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Views)
	assert.Equal(t, int64(1), result.Likes)
}
