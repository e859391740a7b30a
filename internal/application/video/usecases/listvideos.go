package usecases

import (
	"context"
	"fmt"

	"github.com/reelhub/reelhub/internal/application/video/dto"
	"github.com/reelhub/reelhub/internal/domain/video"
	apperrors "github.com/reelhub/reelhub/internal/shared/errors"
	"github.com/reelhub/reelhub/internal/shared/logger"
	"github.com/reelhub/reelhub/internal/shared/utils"
)

// ListVideosUseCase handles listing active videos with keyword search,
// category/user filtering, ranking, sorting and pagination
type ListVideosUseCase struct {
	repo   video.Repository
	logger logger.Interface
}

// NewListVideosUseCase creates a new ListVideosUseCase
func NewListVideosUseCase(repo video.Repository, logger logger.Interface) *ListVideosUseCase {
	return &ListVideosUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute lists active videos matching the request
func (uc *ListVideosUseCase) Execute(ctx context.Context, req dto.ListVideosRequest) (*dto.ListVideosResponse, error) {
	filter := video.ListFilter{
		Keyword:    req.Keyword,
		CategoryID: req.CategoryID,
		UserID:     req.UserID,
		Page:       req.Page,
		PageSize:   req.PageSize,
		SortBy:     req.SortBy,
		SortDir:    req.SortDir,
	}
	if req.Ranking != "" {
		ranking := video.Ranking(req.Ranking)
		if !ranking.IsValid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid ranking: %s", req.Ranking))
		}
		filter.Ranking = ranking
	}

	videos, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list videos", "error", err)
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}

	items := make([]dto.VideoResponse, 0, len(videos))
	for _, v := range videos {
		items = append(items, toVideoResponse(v))
	}

	return &dto.ListVideosResponse{
		Items:      items,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: utils.TotalPages(total, req.PageSize),
	}, nil
}
