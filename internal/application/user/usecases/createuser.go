package usecases

import (
	"context"
	"fmt"

	"github.com/reelhub/reelhub/internal/application/user/dto"
	"github.com/reelhub/reelhub/internal/domain/user"
	apperrors "github.com/reelhub/reelhub/internal/shared/errors"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

// CreateUserUseCase handles the creation of a new user
type CreateUserUseCase struct {
	repo   user.Repository
	hasher PasswordHasher
	logger logger.Interface
}

// NewCreateUserUseCase creates a new CreateUserUseCase
func NewCreateUserUseCase(repo user.Repository, hasher PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

// Execute creates a new active user. Username and email must each be
// unique across all users, active or not, compared case-insensitively.
// Only the hash of the password is stored.
func (uc *CreateUserUseCase) Execute(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	exists, err := uc.repo.ExistsByUsername(ctx, req.Username, 0)
	if err != nil {
		uc.logger.Errorw("failed to check username existence", "error", err, "username", req.Username)
		return nil, fmt.Errorf("failed to check username existence: %w", err)
	}
	if exists {
		return nil, user.ErrUsernameExists
	}

	exists, err = uc.repo.ExistsByEmail(ctx, req.Email, 0)
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err, "email", req.Email)
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, user.ErrEmailExists
	}

	if req.Password == "" {
		return nil, apperrors.NewValidationError("password is required")
	}
	hash, err := uc.hasher.Hash(req.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := user.NewUser(req.Username, req.Email, req.FullName, hash, user.Role(req.Role))
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, u); err != nil {
		uc.logger.Errorw("failed to save user", "error", err, "username", req.Username)
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	uc.logger.Infow("user created", "id", u.ID(), "username", u.Username())

	resp := toUserResponse(u)
	return &resp, nil
}
