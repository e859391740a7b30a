package usecases

import (
	"context"
	"fmt"

	"github.com/reelhub/reelhub/internal/domain/category"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

// DeleteCategoryUseCase handles permanently removing a category
type DeleteCategoryUseCase struct {
	repo   category.Repository
	logger logger.Interface
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase
func NewDeleteCategoryUseCase(repo category.Repository, logger logger.Interface) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute hard deletes a category. The category's videos are removed with
// it. Deactivation is the supported deletion path; this is the permanent
// one.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, id uint) error {
	cat, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get category", "error", err, "id", id)
		return fmt.Errorf("failed to get category: %w", err)
	}
	if cat == nil {
		return category.ErrCategoryNotFound
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete category", "error", err, "id", id)
		return fmt.Errorf("failed to delete category: %w", err)
	}

	uc.logger.Infow("category deleted", "id", id, "name", cat.Name())
	return nil
}
