package usecases

import (
	"context"
	"fmt"

	"github.com/reelhub/reelhub/internal/application/user/dto"
	"github.com/reelhub/reelhub/internal/domain/user"
	apperrors "github.com/reelhub/reelhub/internal/shared/errors"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

// UpdateUserUseCase handles updating an existing user
type UpdateUserUseCase struct {
	repo   user.Repository
	hasher PasswordHasher
	logger logger.Interface
}

// NewUpdateUserUseCase creates a new UpdateUserUseCase
func NewUpdateUserUseCase(repo user.Repository, hasher PasswordHasher, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

// Execute overwrites a user's profile fields, role and active flag. An
// empty password keeps the stored credential; a non-empty one replaces
// it with a fresh hash. Keeping the user's own username or email is not
// a conflict.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "id", id)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, user.ErrUserNotFound
	}

	exists, err := uc.repo.ExistsByUsername(ctx, req.Username, id)
	if err != nil {
		uc.logger.Errorw("failed to check username existence", "error", err, "username", req.Username)
		return nil, fmt.Errorf("failed to check username existence: %w", err)
	}
	if exists {
		return nil, user.ErrUsernameExists
	}

	exists, err = uc.repo.ExistsByEmail(ctx, req.Email, id)
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err, "email", req.Email)
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, user.ErrEmailExists
	}

	if err := u.UpdateUsername(req.Username); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := u.UpdateEmail(req.Email); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	u.UpdateFullName(req.FullName)
	if err := u.UpdateRole(user.Role(req.Role)); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if req.Password != "" {
		hash, err := uc.hasher.Hash(req.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		if err := u.ChangePasswordHash(hash); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if req.Active {
		u.Activate()
	} else {
		u.Deactivate()
	}

	if err := uc.repo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "id", id)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("user updated", "id", u.ID(), "username", u.Username())

	resp := toUserResponse(u)
	return &resp, nil
}
