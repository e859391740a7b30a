package usecases

import (
	"context"
	"fmt"

	"github.com/reelhub/reelhub/internal/application/category/dto"
	"github.com/reelhub/reelhub/internal/domain/category"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

// GetCategoryUseCase handles category lookups by ID
type GetCategoryUseCase struct {
	repo   category.Repository
	logger logger.Interface
}

// NewGetCategoryUseCase creates a new GetCategoryUseCase
func NewGetCategoryUseCase(repo category.Repository, logger logger.Interface) *GetCategoryUseCase {
	return &GetCategoryUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute retrieves a category by ID regardless of its active state
func (uc *GetCategoryUseCase) Execute(ctx context.Context, id uint) (*dto.CategoryResponse, error) {
	cat, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get category", "error", err, "id", id)
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if cat == nil {
		return nil, category.ErrCategoryNotFound
	}

	resp := toCategoryResponse(cat)
	return &resp, nil
}

// ExecuteActive retrieves a category by ID. An inactive category behaves
// as not found.
func (uc *GetCategoryUseCase) ExecuteActive(ctx context.Context, id uint) (*dto.CategoryResponse, error) {
	cat, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get category", "error", err, "id", id)
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if cat == nil || !cat.IsActive() {
		return nil, category.ErrCategoryNotFound
	}

	resp := toCategoryResponse(cat)
	return &resp, nil
}
