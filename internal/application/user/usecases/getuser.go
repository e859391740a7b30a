package usecases

import (
	"context"
	"fmt"

	"github.com/reelhub/reelhub/internal/application/user/dto"
	"github.com/reelhub/reelhub/internal/domain/user"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

// GetUserUseCase handles user lookups by ID
type GetUserUseCase struct {
	repo   user.Repository
	logger logger.Interface
}

// NewGetUserUseCase creates a new GetUserUseCase
func NewGetUserUseCase(repo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute retrieves a user by ID regardless of their active state
func (uc *GetUserUseCase) Execute(ctx context.Context, id uint) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "id", id)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, user.ErrUserNotFound
	}

	resp := toUserResponse(u)
	return &resp, nil
}

// ExecuteActive retrieves a user by ID. An inactive user behaves as not
// found.
func (uc *GetUserUseCase) ExecuteActive(ctx context.Context, id uint) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "id", id)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil || !u.IsActive() {
		return nil, user.ErrUserNotFound
	}

	resp := toUserResponse(u)
	return &resp, nil
}
