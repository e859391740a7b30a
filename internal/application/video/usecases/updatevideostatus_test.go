package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelhub/reelhub/internal/domain/video"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

func TestUpdateVideoStatusUseCase_DeactivateAndReactivate(t *testing.T) {
	f := newVideoFixture(t)
	v := f.seedVideo(t, "Song A")
	statusUC := NewUpdateVideoStatusUseCase(f.videos, logger.NewNopLogger())
	getUC := NewGetVideoUseCase(f.videos, logger.NewNopLogger())
	ctx := context.Background()

	result, err := statusUC.Deactivate(ctx, v.ID())
	require.NoError(t, err)
	assert.Equal(t, video.StatusInactive.String(), result.Status)

	_, err = getUC.ExecuteActive(ctx, v.ID())
	assert.ErrorIs(t, err, video.ErrVideoNotFound)

	found, err := getUC.Execute(ctx, v.ID())
	require.NoError(t, err)
	assert.Equal(t, video.StatusInactive.String(), found.Status)

	_, err = statusUC.Activate(ctx, v.ID())
	require.NoError(t, err)

	restored, err := getUC.ExecuteActive(ctx, v.ID())
	require.NoError(t, err)
	assert.Equal(t, video.StatusActive.String(), restored.Status)
}

func TestUpdateVideoStatusUseCase_NotFound(t *testing.T) {
	f := newVideoFixture(t)
	uc := NewUpdateVideoStatusUseCase(f.videos, logger.NewNopLogger())

	_, err := uc.Deactivate(context.Background(), 42)
	assert.ErrorIs(t, err, video.ErrVideoNotFound)
}
