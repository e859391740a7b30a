package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	categorytestutil "github.com/reelhub/reelhub/internal/application/category/testutil"
	usertestutil "github.com/reelhub/reelhub/internal/application/user/testutil"
	videotestutil "github.com/reelhub/reelhub/internal/application/video/testutil"
	"github.com/reelhub/reelhub/internal/domain/category"
	"github.com/reelhub/reelhub/internal/domain/user"
	"github.com/reelhub/reelhub/internal/domain/video"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

func TestGetDashboardUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	categories := categorytestutil.NewMockCategoryRepository()
	users := usertestutil.NewMockUserRepository()
	videos := videotestutil.NewMockVideoRepository()

	cat, err := category.NewCategory("Music", "")
	require.NoError(t, err)
	require.NoError(t, categories.Create(ctx, cat))

	hiddenCat, err := category.NewCategory("Movies", "")
	require.NoError(t, err)
	hiddenCat.Deactivate()
	require.NoError(t, categories.Create(ctx, hiddenCat))

	u, err := user.NewUser("alice", "alice@example.com", "", "hashed:pw", user.RoleUser)
	require.NoError(t, err)
	require.NoError(t, users.Create(ctx, u))

	for _, title := range []string{"Song A", "Song B"} {
		v, err := video.NewVideo(title, "", "https://videos.example.com/"+title, nil, cat.ID(), u.ID())
		require.NoError(t, err)
		require.NoError(t, videos.Create(ctx, v))
	}

	uc := NewGetDashboardUseCase(categories, users, videos, logger.NewNopLogger())
	result, err := uc.Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.Categories, "inactive categories are not counted")
	assert.Equal(t, int64(1), result.Users)
	assert.Equal(t, int64(2), result.Videos)
}

func TestGetDashboardUseCase_Execute_Empty(t *testing.T) {
	uc := NewGetDashboardUseCase(
		categorytestutil.NewMockCategoryRepository(),
		usertestutil.NewMockUserRepository(),
		videotestutil.NewMockVideoRepository(),
		logger.NewNopLogger(),
	)

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.Categories)
	assert.Zero(t, result.Users)
	assert.Zero(t, result.Videos)
}
