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

// UpdateVideoUseCase handles updating an existing video
type UpdateVideoUseCase struct {
	repo   video.Repository
	refs   refChecker
	logger logger.Interface
}

// NewUpdateVideoUseCase creates a new UpdateVideoUseCase
func NewUpdateVideoUseCase(repo video.Repository, categories category.Repository, users user.Repository, logger logger.Interface) *UpdateVideoUseCase {
	return &UpdateVideoUseCase{
		repo:   repo,
		refs:   refChecker{categories: categories, users: users},
		logger: logger,
	}
}

// Execute overwrites a video's fields, references and active flag. The
// referenced category and user are validated even when unchanged.
// Counters are never touched here.
func (uc *UpdateVideoUseCase) Execute(ctx context.Context, id uint, req dto.UpdateVideoRequest) (*dto.VideoResponse, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get video", "error", err, "id", id)
		return nil, fmt.Errorf("failed to get video: %w", err)
	}
	if v == nil {
		return nil, video.ErrVideoNotFound
	}

	if err := uc.refs.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}
	if err := uc.refs.checkUser(ctx, req.UserID); err != nil {
		return nil, err
	}

	if err := v.UpdateTitle(req.Title); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := v.UpdateDescription(req.Description); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := v.UpdateURL(req.URL); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := v.UpdateDuration(req.Duration); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := v.AssignCategory(req.CategoryID); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := v.AssignUser(req.UserID); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if req.Active {
		v.Activate()
	} else {
		v.Deactivate()
	}

	if err := uc.repo.Update(ctx, v); err != nil {
		uc.logger.Errorw("failed to update video", "error", err, "id", id)
		return nil, fmt.Errorf("failed to update video: %w", err)
	}

	uc.logger.Infow("video updated", "id", v.ID(), "title", v.Title())

	resp := toVideoResponse(v)
	return &resp, nil
}
