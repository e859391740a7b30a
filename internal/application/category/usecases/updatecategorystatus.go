package usecases

import (
	"context"
	"fmt"

	"github.com/reelhub/reelhub/internal/application/category/dto"
	"github.com/reelhub/reelhub/internal/domain/category"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

// UpdateCategoryStatusUseCase handles activating and deactivating a category
type UpdateCategoryStatusUseCase struct {
	repo   category.Repository
	logger logger.Interface
}

// NewUpdateCategoryStatusUseCase creates a new UpdateCategoryStatusUseCase
func NewUpdateCategoryStatusUseCase(repo category.Repository, logger logger.Interface) *UpdateCategoryStatusUseCase {
	return &UpdateCategoryStatusUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Activate activates a category. Activating an already active category is
// a no-op, not an error.
func (uc *UpdateCategoryStatusUseCase) Activate(ctx context.Context, id uint) (*dto.CategoryResponse, error) {
	return uc.setStatus(ctx, id, true)
}

// Deactivate soft deletes a category. Deactivating an already inactive
// category is a no-op, not an error.
func (uc *UpdateCategoryStatusUseCase) Deactivate(ctx context.Context, id uint) (*dto.CategoryResponse, error) {
	return uc.setStatus(ctx, id, false)
}

func (uc *UpdateCategoryStatusUseCase) setStatus(ctx context.Context, id uint, active bool) (*dto.CategoryResponse, error) {
	cat, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get category", "error", err, "id", id)
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if cat == nil {
		return nil, category.ErrCategoryNotFound
	}

	if active {
		cat.Activate()
	} else {
		cat.Deactivate()
	}

	if err := uc.repo.Update(ctx, cat); err != nil {
		uc.logger.Errorw("failed to update category status", "error", err, "id", id)
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	uc.logger.Infow("category status updated", "id", id, "status", cat.Status().String())

	resp := toCategoryResponse(cat)
	return &resp, nil
}
