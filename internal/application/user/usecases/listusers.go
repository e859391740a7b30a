package usecases

import (
	"context"
	"fmt"

	"github.com/reelhub/reelhub/internal/application/user/dto"
	"github.com/reelhub/reelhub/internal/domain/user"
	apperrors "github.com/reelhub/reelhub/internal/shared/errors"
	"github.com/reelhub/reelhub/internal/shared/logger"
	"github.com/reelhub/reelhub/internal/shared/utils"
)

// ListUsersUseCase handles listing active users with keyword search, role
// filtering, sorting and pagination
type ListUsersUseCase struct {
	repo   user.Repository
	logger logger.Interface
}

// NewListUsersUseCase creates a new ListUsersUseCase
func NewListUsersUseCase(repo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute lists active users matching the request
func (uc *ListUsersUseCase) Execute(ctx context.Context, req dto.ListUsersRequest) (*dto.ListUsersResponse, error) {
	filter := user.ListFilter{
		Keyword:  req.Keyword,
		Page:     req.Page,
		PageSize: req.PageSize,
		SortBy:   req.SortBy,
		SortDir:  req.SortDir,
	}
	if req.Role != "" {
		role := user.Role(req.Role)
		if !role.IsValid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid role: %s", req.Role))
		}
		filter.Role = &role
	}

	users, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, toUserResponse(u))
	}

	return &dto.ListUsersResponse{
		Items:      items,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: utils.TotalPages(total, req.PageSize),
	}, nil
}

// ExecuteAll lists every active user without pagination
func (uc *ListUsersUseCase) ExecuteAll(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list active users", "error", err)
		return nil, fmt.Errorf("failed to list active users: %w", err)
	}

	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, toUserResponse(u))
	}
	return items, nil
}
