package usecases

import (
	"context"
	"fmt"

	"github.com/reelhub/reelhub/internal/application/video/dto"
	"github.com/reelhub/reelhub/internal/domain/video"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

// GetVideoUseCase handles video lookups by ID
type GetVideoUseCase struct {
	repo   video.Repository
	logger logger.Interface
}

// NewGetVideoUseCase creates a new GetVideoUseCase
func NewGetVideoUseCase(repo video.Repository, logger logger.Interface) *GetVideoUseCase {
	return &GetVideoUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute retrieves a video by ID regardless of its active state
func (uc *GetVideoUseCase) Execute(ctx context.Context, id uint) (*dto.VideoResponse, error) {
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

// ExecuteActive retrieves a video by ID. An inactive video behaves as
// not found.
func (uc *GetVideoUseCase) ExecuteActive(ctx context.Context, id uint) (*dto.VideoResponse, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get video", "error", err, "id", id)
		return nil, fmt.Errorf("failed to get video: %w", err)
	}
	if v == nil || !v.IsActive() {
		return nil, video.ErrVideoNotFound
	}

	resp := toVideoResponse(v)
	return &resp, nil
}
