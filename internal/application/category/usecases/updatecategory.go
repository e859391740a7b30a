package usecases

import (
	"context"
	"fmt"

	"github.com/reelhub/reelhub/internal/application/category/dto"
	"github.com/reelhub/reelhub/internal/domain/category"
	apperrors "github.com/reelhub/reelhub/internal/shared/errors"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

// UpdateCategoryUseCase handles updating an existing category
type UpdateCategoryUseCase struct {
	repo   category.Repository
	logger logger.Interface
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase
func NewUpdateCategoryUseCase(repo category.Repository, logger logger.Interface) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute overwrites a category's name, description and active flag.
// Updating a category to its own current name is not a conflict.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, id uint, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	cat, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get category", "error", err, "id", id)
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if cat == nil {
		return nil, category.ErrCategoryNotFound
	}

	exists, err := uc.repo.ExistsByName(ctx, req.Name, id)
	if err != nil {
		uc.logger.Errorw("failed to check category name existence", "error", err, "name", req.Name)
		return nil, fmt.Errorf("failed to check name existence: %w", err)
	}
	if exists {
		return nil, category.ErrNameExists
	}

	if err := cat.UpdateName(req.Name); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := cat.UpdateDescription(req.Description); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if req.Active {
		cat.Activate()
	} else {
		cat.Deactivate()
	}

	if err := uc.repo.Update(ctx, cat); err != nil {
		uc.logger.Errorw("failed to update category", "error", err, "id", id)
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	uc.logger.Infow("category updated", "id", cat.ID(), "name", cat.Name())

	resp := toCategoryResponse(cat)
	return &resp, nil
}
