package usecases

import (
	"context"
	"fmt"

	"github.com/reelhub/reelhub/internal/application/video/dto"
	"github.com/reelhub/reelhub/internal/domain/video"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

// UpdateVideoStatusUseCase handles activating and deactivating a video
type UpdateVideoStatusUseCase struct {
	repo   video.Repository
	logger logger.Interface
}

// NewUpdateVideoStatusUseCase creates a new UpdateVideoStatusUseCase
func NewUpdateVideoStatusUseCase(repo video.Repository, logger logger.Interface) *UpdateVideoStatusUseCase {
	return &UpdateVideoStatusUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Activate activates a video. Activating an already active video is a
// no-op, not an error.
func (uc *UpdateVideoStatusUseCase) Activate(ctx context.Context, id uint) (*dto.VideoResponse, error) {
	return uc.setStatus(ctx, id, true)
}

// Deactivate soft deletes a video. Deactivating an already inactive
// video is a no-op, not an error.
func (uc *UpdateVideoStatusUseCase) Deactivate(ctx context.Context, id uint) (*dto.VideoResponse, error) {
	return uc.setStatus(ctx, id, false)
}

func (uc *UpdateVideoStatusUseCase) setStatus(ctx context.Context, id uint, active bool) (*dto.VideoResponse, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get video", "error", err, "id", id)
		return nil, fmt.Errorf("failed to get video: %w", err)
	}
	if v == nil {
		return nil, video.ErrVideoNotFound
	}

	if active {
		v.Activate()
	} else {
		v.Deactivate()
	}

	if err := uc.repo.Update(ctx, v); err != nil {
		uc.logger.Errorw("failed to update video status", "error", err, "id", id)
		return nil, fmt.Errorf("failed to update video: %w", err)
	}

	uc.logger.Infow("video status updated", "id", id, "status", v.Status().String())

	resp := toVideoResponse(v)
	return &resp, nil
}
