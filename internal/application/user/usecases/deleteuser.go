package usecases

import (
	"context"
	"fmt"

	"github.com/reelhub/reelhub/internal/domain/user"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

// DeleteUserUseCase handles permanently removing a user
type DeleteUserUseCase struct {
	repo   user.Repository
	logger logger.Interface
}

// NewDeleteUserUseCase creates a new DeleteUserUseCase
func NewDeleteUserUseCase(repo user.Repository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute hard deletes a user. The user's videos are removed with them.
// Deactivation is the supported deletion path; this is the permanent one.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, id uint) error {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "id", id)
		return fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return user.ErrUserNotFound
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete user", "error", err, "id", id)
		return fmt.Errorf("failed to delete user: %w", err)
	}

	uc.logger.Infow("user deleted", "id", id, "username", u.Username())
	return nil
}
