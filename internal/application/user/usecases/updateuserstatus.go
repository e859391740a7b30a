package usecases

import (
	"context"
	"fmt"

	"github.com/reelhub/reelhub/internal/application/user/dto"
	"github.com/reelhub/reelhub/internal/domain/user"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

// UpdateUserStatusUseCase handles activating and deactivating a user
type UpdateUserStatusUseCase struct {
	repo   user.Repository
	logger logger.Interface
}

// NewUpdateUserStatusUseCase creates a new UpdateUserStatusUseCase
func NewUpdateUserStatusUseCase(repo user.Repository, logger logger.Interface) *UpdateUserStatusUseCase {
	return &UpdateUserStatusUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Activate activates a user. Activating an already active user is a
// no-op, not an error.
func (uc *UpdateUserStatusUseCase) Activate(ctx context.Context, id uint) (*dto.UserResponse, error) {
	return uc.setStatus(ctx, id, true)
}

// Deactivate soft deletes a user. Deactivating an already inactive user
// is a no-op, not an error.
func (uc *UpdateUserStatusUseCase) Deactivate(ctx context.Context, id uint) (*dto.UserResponse, error) {
	return uc.setStatus(ctx, id, false)
}

func (uc *UpdateUserStatusUseCase) setStatus(ctx context.Context, id uint, active bool) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "id", id)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, user.ErrUserNotFound
	}

	if active {
		u.Activate()
	} else {
		u.Deactivate()
	}

	if err := uc.repo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user status", "error", err, "id", id)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("user status updated", "id", id, "status", u.Status().String())

	resp := toUserResponse(u)
	return &resp, nil
}
