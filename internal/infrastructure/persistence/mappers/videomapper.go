package mappers

import (
	"fmt"

	"github.com/reelhub/reelhub/internal/domain/video"
	"github.com/reelhub/reelhub/internal/infrastructure/persistence/models"
	"github.com/reelhub/reelhub/internal/shared/mapper"
)

type VideoMapper interface {
	ToEntity(model *models.VideoModel) (*video.Video, error)
	ToModel(entity *video.Video) *models.VideoModel
	ToEntities(models []*models.VideoModel) ([]*video.Video, error)
}

type VideoMapperImpl struct{}

func NewVideoMapper() VideoMapper {
	return &VideoMapperImpl{}
}

func (m *VideoMapperImpl) ToEntity(model *models.VideoModel) (*video.Video, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := video.ReconstructVideo(
		model.ID,
		model.Title,
		model.Description,
		model.URL,
		model.Duration,
		model.Views,
		model.Likes,
		model.CategoryID,
		model.UserID,
		model.Status,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct video entity: %w", err)
	}
	return entity, nil
}

func (m *VideoMapperImpl) ToModel(entity *video.Video) *models.VideoModel {
	if entity == nil {
		return nil
	}

	return &models.VideoModel{
		ID:          entity.ID(),
		Title:       entity.Title(),
		Description: entity.Description(),
		URL:         entity.URL(),
		Duration:    entity.Duration(),
		Views:       entity.Views(),
		Likes:       entity.Likes(),
		CategoryID:  entity.CategoryID(),
		UserID:      entity.UserID(),
		Status:      entity.Status().String(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *VideoMapperImpl) ToEntities(modelList []*models.VideoModel) ([]*video.Video, error) {
	return mapper.MapSliceErr(modelList, m.ToEntity, func(model *models.VideoModel) uint { return model.ID })
}
