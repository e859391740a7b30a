package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/reelhub/reelhub/internal/domain/video"
	"github.com/reelhub/reelhub/internal/infrastructure/persistence/mappers"
	"github.com/reelhub/reelhub/internal/infrastructure/persistence/models"
)

var videoSortColumns = map[string]string{
	"title":     "title",
	"views":     "views",
	"likes":     "likes",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type VideoRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.VideoMapper
}

func NewVideoRepository(db *gorm.DB) video.Repository {
	return &VideoRepositoryImpl{db: db, mapper: mappers.NewVideoMapper()}
}

func (r *VideoRepositoryImpl) Create(ctx context.Context, v *video.Video) error {
	model := r.mapper.ToModel(v)
	model.ID = 0

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}

	return v.SetID(model.ID)
}

// Update persists a video's fields. Counters are excluded; they only
// change through the atomic increment operations.
func (r *VideoRepositoryImpl) Update(ctx context.Context, v *video.Video) error {
	result := r.db.WithContext(ctx).Model(&models.VideoModel{}).
		Where("id = ?", v.ID()).
		Updates(map[string]interface{}{
			"title":       v.Title(),
			"description": v.Description(),
			"url":         v.URL(),
			"duration":    v.Duration(),
			"category_id": v.CategoryID(),
			"user_id":     v.UserID(),
			"status":      v.Status().String(),
			"updated_at":  v.UpdatedAt(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update video: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return video.ErrVideoNotFound
	}

	return nil
}

func (r *VideoRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.VideoModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete video: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return video.ErrVideoNotFound
	}
	return nil
}

func (r *VideoRepositoryImpl) GetByID(ctx context.Context, id uint) (*video.Video, error) {
	var model models.VideoModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get video: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *VideoRepositoryImpl) ListActive(ctx context.Context) ([]*video.Video, error) {
	return r.findActive(ctx, r.activeQuery(ctx))
}

func (r *VideoRepositoryImpl) ListByCategory(ctx context.Context, categoryID uint) ([]*video.Video, error) {
	return r.findActive(ctx, r.activeQuery(ctx).Where("category_id = ?", categoryID))
}

func (r *VideoRepositoryImpl) ListByUser(ctx context.Context, userID uint) ([]*video.Video, error) {
	return r.findActive(ctx, r.activeQuery(ctx).Where("user_id = ?", userID))
}

func (r *VideoRepositoryImpl) ListByCategoryAndUser(ctx context.Context, categoryID, userID uint) ([]*video.Video, error) {
	return r.findActive(ctx, r.activeQuery(ctx).
		Where("category_id = ? AND user_id = ?", categoryID, userID))
}

func (r *VideoRepositoryImpl) activeQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.VideoModel{}).
		Where("status = ?", video.StatusActive.String())
}

func (r *VideoRepositoryImpl) findActive(ctx context.Context, query *gorm.DB) ([]*video.Video, error) {
	var videoModels []*models.VideoModel
	if err := query.Order("created_at DESC").Find(&videoModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	return r.mapper.ToEntities(videoModels)
}

func (r *VideoRepositoryImpl) List(ctx context.Context, filter video.ListFilter) ([]*video.Video, int64, error) {
	query := r.activeQuery(ctx)

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Keyword != "" {
		keyword := "%" + strings.ToLower(filter.Keyword) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", keyword, keyword)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count videos: %w", err)
	}

	order, err := videoOrderClause(filter)
	if err != nil {
		return nil, 0, err
	}

	page, pageSize := clampPage(filter.Page, filter.PageSize)
	var videoModels []*models.VideoModel
	if err := query.Order(order).
		Offset(page * pageSize).Limit(pageSize).
		Find(&videoModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list videos: %w", err)
	}

	videos, err := r.mapper.ToEntities(videoModels)
	if err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

// videoOrderClause resolves the ordering for a listing. A ranking takes
// precedence over explicit sort parameters.
func videoOrderClause(filter video.ListFilter) (string, error) {
	switch filter.Ranking {
	case video.RankingMostViewed:
		return "views DESC", nil
	case video.RankingMostLiked:
		return "likes DESC", nil
	case video.RankingRecent:
		return "created_at DESC", nil
	}
	return buildOrderClause(videoSortColumns, filter.SortBy, filter.SortDir, "created_at DESC")
}

func (r *VideoRepositoryImpl) IncrementViews(ctx context.Context, id uint) error {
	return r.incrementColumn(ctx, id, "views")
}

func (r *VideoRepositoryImpl) IncrementLikes(ctx context.Context, id uint) error {
	return r.incrementColumn(ctx, id, "likes")
}

// incrementColumn bumps a counter in a single UPDATE so concurrent
// increments cannot lose updates.
func (r *VideoRepositoryImpl) incrementColumn(ctx context.Context, id uint, column string) error {
	result := r.db.WithContext(ctx).Model(&models.VideoModel{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))

	if result.Error != nil {
		return fmt.Errorf("failed to increment %s: %w", column, result.Error)
	}
	if result.RowsAffected == 0 {
		return video.ErrVideoNotFound
	}
	return nil
}

func (r *VideoRepositoryImpl) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.activeQuery(ctx).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count active videos: %w", err)
	}
	return count, nil
}

func (r *VideoRepositoryImpl) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	if err := r.activeQuery(ctx).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count videos by category: %w", err)
	}
	return count, nil
}

func (r *VideoRepositoryImpl) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.activeQuery(ctx).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count videos by user: %w", err)
	}
	return count, nil
}
