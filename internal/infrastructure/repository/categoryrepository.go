// Package repository implements the domain repository interfaces on top
// of gorm.
package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/reelhub/reelhub/internal/domain/category"
	"github.com/reelhub/reelhub/internal/infrastructure/persistence/mappers"
	"github.com/reelhub/reelhub/internal/infrastructure/persistence/models"
	"github.com/reelhub/reelhub/internal/shared/constants"
	"github.com/reelhub/reelhub/internal/shared/errors"
)

// categorySortColumns maps exposed sort attributes to columns. Unknown
// attributes are rejected rather than passed through to SQL.
var categorySortColumns = map[string]string{
	"name":      "name",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type CategoryRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CategoryMapper
}

func NewCategoryRepository(db *gorm.DB) category.Repository {
	return &CategoryRepositoryImpl{db: db, mapper: mappers.NewCategoryMapper()}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, cat *category.Category) error {
	model := r.mapper.ToModel(cat)
	model.ID = 0

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateKeyError(err) {
			return category.ErrNameExists
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	return cat.SetID(model.ID)
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, cat *category.Category) error {
	result := r.db.WithContext(ctx).Model(&models.CategoryModel{}).
		Where("id = ?", cat.ID()).
		Updates(map[string]interface{}{
			"name":        cat.Name(),
			"description": cat.Description(),
			"status":      cat.Status().String(),
			"updated_at":  cat.UpdatedAt(),
		})

	if result.Error != nil {
		if errors.IsDuplicateKeyError(result.Error) {
			return category.ErrNameExists
		}
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}

// Delete removes the category and all of its videos in one transaction.
func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.VideoModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete category videos: %w", err)
		}

		result := tx.Delete(&models.CategoryModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete category: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return category.ErrCategoryNotFound
		}
		return nil
	})
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	var model models.CategoryModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CategoryRepositoryImpl) ListActive(ctx context.Context) ([]*category.Category, error) {
	var categoryModels []*models.CategoryModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", category.StatusActive.String()).
		Order("name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list active categories: %w", err)
	}

	return r.mapper.ToEntities(categoryModels)
}

func (r *CategoryRepositoryImpl) List(ctx context.Context, filter category.ListFilter) ([]*category.Category, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.CategoryModel{}).
		Where("status = ?", category.StatusActive.String())

	if filter.Keyword != "" {
		keyword := "%" + strings.ToLower(filter.Keyword) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", keyword, keyword)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count categories: %w", err)
	}

	order, err := buildOrderClause(categorySortColumns, filter.SortBy, filter.SortDir, "name ASC")
	if err != nil {
		return nil, 0, err
	}

	page, pageSize := clampPage(filter.Page, filter.PageSize)
	var categoryModels []*models.CategoryModel
	if err := query.Order(order).
		Offset(page * pageSize).Limit(pageSize).
		Find(&categoryModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list categories: %w", err)
	}

	categories, err := r.mapper.ToEntities(categoryModels)
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (r *CategoryRepositoryImpl) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.CategoryModel{}).
		Where("LOWER(name) = ?", strings.ToLower(name))
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check category name existence: %w", err)
	}
	return count > 0, nil
}

func (r *CategoryRepositoryImpl) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CategoryModel{}).
		Where("status = ?", category.StatusActive.String()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active categories: %w", err)
	}
	return count, nil
}

// buildOrderClause resolves a sort attribute against the allowlist. Only
// "desc" (any case) selects descending order.
func buildOrderClause(allowed map[string]string, sortBy, sortDir, fallback string) (string, error) {
	if sortBy == "" {
		return fallback, nil
	}
	column, ok := allowed[sortBy]
	if !ok {
		return "", errors.NewBadRequestError(fmt.Sprintf("unknown sort attribute: %s", sortBy))
	}
	dir := "ASC"
	if strings.EqualFold(sortDir, "desc") {
		dir = "DESC"
	}
	return column + " " + dir, nil
}

// clampPage normalizes pagination to the shared defaults. Pages are
// zero-based.
func clampPage(page, pageSize int) (int, int) {
	if page < 0 {
		page = constants.DefaultPage
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return page, pageSize
}
