// Package mappers converts between persistence models and domain
// entities.
package mappers

import (
	"fmt"

	"github.com/reelhub/reelhub/internal/domain/category"
	"github.com/reelhub/reelhub/internal/infrastructure/persistence/models"
	"github.com/reelhub/reelhub/internal/shared/mapper"
)

type CategoryMapper interface {
	ToEntity(model *models.CategoryModel) (*category.Category, error)
	ToModel(entity *category.Category) *models.CategoryModel
	ToEntities(models []*models.CategoryModel) ([]*category.Category, error)
}

type CategoryMapperImpl struct{}

func NewCategoryMapper() CategoryMapper {
	return &CategoryMapperImpl{}
}

func (m *CategoryMapperImpl) ToEntity(model *models.CategoryModel) (*category.Category, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := category.ReconstructCategory(
		model.ID,
		model.Name,
		model.Description,
		model.Status,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct category entity: %w", err)
	}
	return entity, nil
}

func (m *CategoryMapperImpl) ToModel(entity *category.Category) *models.CategoryModel {
	if entity == nil {
		return nil
	}

	return &models.CategoryModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		Status:      entity.Status().String(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *CategoryMapperImpl) ToEntities(modelList []*models.CategoryModel) ([]*category.Category, error) {
	return mapper.MapSliceErr(modelList, m.ToEntity, func(model *models.CategoryModel) uint { return model.ID })
}
