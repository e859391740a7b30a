// Package usecases implements the dashboard application layer.
package usecases

import (
	"context"
	"fmt"

	"github.com/reelhub/reelhub/internal/application/dashboard/dto"
	"github.com/reelhub/reelhub/internal/domain/category"
	"github.com/reelhub/reelhub/internal/domain/user"
	"github.com/reelhub/reelhub/internal/domain/video"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

// GetDashboardUseCase aggregates the active record counts for the admin
// dashboard
type GetDashboardUseCase struct {
	categories category.Repository
	users      user.Repository
	videos     video.Repository
	logger     logger.Interface
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase
func NewGetDashboardUseCase(categories category.Repository, users user.Repository, videos video.Repository, logger logger.Interface) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		categories: categories,
		users:      users,
		videos:     videos,
		logger:     logger,
	}
}

// Execute counts active categories, users and videos
func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*dto.DashboardResponse, error) {
	categories, err := uc.categories.CountActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count categories", "error", err)
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	users, err := uc.users.CountActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count users", "error", err)
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	videos, err := uc.videos.CountActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count videos", "error", err)
		return nil, fmt.Errorf("failed to count videos: %w", err)
	}

	return &dto.DashboardResponse{
		Categories: categories,
		Users:      users,
		Videos:     videos,
	}, nil
}
