package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelhub/reelhub/internal/domain/video"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

func TestDeleteVideoUseCase_Execute(t *testing.T) {
	f := newVideoFixture(t)
	v := f.seedVideo(t, "Song A")
	uc := NewDeleteVideoUseCase(f.videos, logger.NewNopLogger())
	ctx := context.Background()

	require.NoError(t, uc.Execute(ctx, v.ID()))

	stored, err := f.videos.GetByID(ctx, v.ID())
	require.NoError(t, err)
	assert.Nil(t, stored)

	err = uc.Execute(ctx, v.ID())
	assert.ErrorIs(t, err, video.ErrVideoNotFound)
}
