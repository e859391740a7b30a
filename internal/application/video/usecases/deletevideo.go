package usecases

import (
	"context"
	"fmt"

	"github.com/reelhub/reelhub/internal/domain/video"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

// DeleteVideoUseCase handles permanently removing a video
type DeleteVideoUseCase struct {
	repo   video.Repository
	logger logger.Interface
}

// NewDeleteVideoUseCase creates a new DeleteVideoUseCase
func NewDeleteVideoUseCase(repo video.Repository, logger logger.Interface) *DeleteVideoUseCase {
	return &DeleteVideoUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute hard deletes a video. Deactivation is the supported deletion
// path; this is the permanent one.
func (uc *DeleteVideoUseCase) Execute(ctx context.Context, id uint) error {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get video", "error", err, "id", id)
		return fmt.Errorf("failed to get video: %w", err)
	}
	if v == nil {
		return video.ErrVideoNotFound
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete video", "error", err, "id", id)
		return fmt.Errorf("failed to delete video: %w", err)
	}

	uc.logger.Infow("video deleted", "id", id, "title", v.Title())
	return nil
}
