package usecases

import (
	"context"
	"fmt"

	"github.com/reelhub/reelhub/internal/application/category/dto"
	"github.com/reelhub/reelhub/internal/domain/category"
	apperrors "github.com/reelhub/reelhub/internal/shared/errors"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

// CreateCategoryUseCase handles the creation of a new category
type CreateCategoryUseCase struct {
	repo   category.Repository
	logger logger.Interface
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase
func NewCreateCategoryUseCase(repo category.Repository, logger logger.Interface) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute creates a new active category. The name must be unique across
// all categories, active or not, compared case-insensitively.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	exists, err := uc.repo.ExistsByName(ctx, req.Name, 0)
	if err != nil {
		uc.logger.Errorw("failed to check category name existence", "error", err, "name", req.Name)
		return nil, fmt.Errorf("failed to check name existence: %w", err)
	}
	if exists {
		return nil, category.ErrNameExists
	}

	cat, err := category.NewCategory(req.Name, req.Description)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, cat); err != nil {
		uc.logger.Errorw("failed to save category", "error", err, "name", req.Name)
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	uc.logger.Infow("category created", "id", cat.ID(), "name", cat.Name())

	resp := toCategoryResponse(cat)
	return &resp, nil
}
