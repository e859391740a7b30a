package usecases

import (
	"context"
	"fmt"

	"github.com/reelhub/reelhub/internal/application/video/dto"
	"github.com/reelhub/reelhub/internal/domain/video"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

// IncrementVideoCountersUseCase handles bumping a video's view and like
// counters. The increments happen in storage so concurrent requests do
// not lose updates.
type IncrementVideoCountersUseCase struct {
	repo   video.Repository
	logger logger.Interface
}

// NewIncrementVideoCountersUseCase creates a new IncrementVideoCountersUseCase
func NewIncrementVideoCountersUseCase(repo video.Repository, logger logger.Interface) *IncrementVideoCountersUseCase {
	return &IncrementVideoCountersUseCase{
		repo:   repo,
		logger: logger,
	}
}

// IncrementViews adds 1 to the view counter and returns the updated video
func (uc *IncrementVideoCountersUseCase) IncrementViews(ctx context.Context, id uint) (*dto.VideoResponse, error) {
	if err := uc.repo.IncrementViews(ctx, id); err != nil {
		if err == video.ErrVideoNotFound {
			return nil, err
		}
		uc.logger.Errorw("failed to increment views", "error", err, "id", id)
		return nil, fmt.Errorf("failed to increment views: %w", err)
	}
	return uc.reload(ctx, id)
}

// IncrementLikes adds 1 to the like counter and returns the updated video
func (uc *IncrementVideoCountersUseCase) IncrementLikes(ctx context.Context, id uint) (*dto.VideoResponse, error) {
	if err := uc.repo.IncrementLikes(ctx, id); err != nil {
		if err == video.ErrVideoNotFound {
			return nil, err
		}
		uc.logger.Errorw("failed to increment likes", "error", err, "id", id)
		return nil, fmt.Errorf("failed to increment likes: %w", err)
	}
	return uc.reload(ctx, id)
}

func (uc *IncrementVideoCountersUseCase) reload(ctx context.Context, id uint) (*dto.VideoResponse, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get video", "error", err, "id", id)
		return nil, fmt.Errorf("failed to get video: %w", err)
	}
	if v == nil {
		return nil, video.ErrVideoNotFound
	}

	resp := toVideoResponse(v)
	return &resp, nil
}
