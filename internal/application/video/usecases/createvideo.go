package usecases

import (
	"context"
	"fmt"

	"github.com/reelhub/reelhub/internal/application/video/dto"
	"github.com/reelhub/reelhub/internal/domain/category"
	"github.com/reelhub/reelhub/internal/domain/user"
	"github.com/reelhub/reelhub/internal/domain/video"
	apperrors "github.com/reelhub/reelhub/internal/shared/errors"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

// CreateVideoUseCase handles the creation of a new video
type CreateVideoUseCase struct {
	repo   video.Repository
	refs   refChecker
	logger logger.Interface
}

// NewCreateVideoUseCase creates a new CreateVideoUseCase
func NewCreateVideoUseCase(repo video.Repository, categories category.Repository, users user.Repository, logger logger.Interface) *CreateVideoUseCase {
	return &CreateVideoUseCase{
		repo:   repo,
		refs:   refChecker{categories: categories, users: users},
		logger: logger,
	}
}

// Execute creates a new active video with zeroed counters. The
// referenced category and user must exist and be active.
func (uc *CreateVideoUseCase) Execute(ctx context.Context, req dto.CreateVideoRequest) (*dto.VideoResponse, error) {
	if err := uc.refs.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}
	if err := uc.refs.checkUser(ctx, req.UserID); err != nil {
		return nil, err
	}

	v, err := video.NewVideo(req.Title, req.Description, req.URL, req.Duration, req.CategoryID, req.UserID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, v); err != nil {
		uc.logger.Errorw("failed to save video", "error", err, "title", req.Title)
		return nil, fmt.Errorf("failed to save video: %w", err)
	}

	uc.logger.Infow("video created", "id", v.ID(), "title", v.Title())

	resp := toVideoResponse(v)
	return &resp, nil
}
