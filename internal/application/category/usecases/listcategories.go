package usecases

import (
	"context"
	"fmt"

	"github.com/reelhub/reelhub/internal/application/category/dto"
	"github.com/reelhub/reelhub/internal/domain/category"
	"github.com/reelhub/reelhub/internal/shared/logger"
	"github.com/reelhub/reelhub/internal/shared/utils"
)

// ListCategoriesUseCase handles listing active categories with keyword
// search, sorting and pagination
type ListCategoriesUseCase struct {
	repo   category.Repository
	logger logger.Interface
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase
func NewListCategoriesUseCase(repo category.Repository, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute lists active categories matching the request
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, req dto.ListCategoriesRequest) (*dto.ListCategoriesResponse, error) {
	filter := category.ListFilter{
		Keyword:  req.Keyword,
		Page:     req.Page,
		PageSize: req.PageSize,
		SortBy:   req.SortBy,
		SortDir:  req.SortDir,
	}

	categories, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	items := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		items = append(items, toCategoryResponse(cat))
	}

	return &dto.ListCategoriesResponse{
		Items:      items,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: utils.TotalPages(total, req.PageSize),
	}, nil
}

// ExecuteAll lists every active category without pagination
func (uc *ListCategoriesUseCase) ExecuteAll(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := uc.repo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list active categories", "error", err)
		return nil, fmt.Errorf("failed to list active categories: %w", err)
	}

	items := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		items = append(items, toCategoryResponse(cat))
	}
	return items, nil
}
