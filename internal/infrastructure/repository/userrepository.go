package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/reelhub/reelhub/internal/domain/user"
	"github.com/reelhub/reelhub/internal/infrastructure/persistence/mappers"
	"github.com/reelhub/reelhub/internal/infrastructure/persistence/models"
	"github.com/reelhub/reelhub/internal/shared/errors"
)

var userSortColumns = map[string]string{
	"username":  "username",
	"email":     "email",
	"fullName":  "full_name",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepositoryImpl{db: db, mapper: mappers.NewUserMapper()}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	model.ID = 0

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateKeyError(err) {
			return user.ErrUsernameExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *UserRepositoryImpl) Update(ctx context.Context, u *user.User) error {
	result := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ?", u.ID()).
		Updates(map[string]interface{}{
			"username":      u.Username(),
			"email":         u.Email(),
			"full_name":     u.FullName(),
			"password_hash": u.PasswordHash(),
			"role":          u.Role().String(),
			"status":        u.Status().String(),
			"updated_at":    u.UpdatedAt(),
		})

	if result.Error != nil {
		if errors.IsDuplicateKeyError(result.Error) {
			return user.ErrUsernameExists
		}
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// Delete removes the user and all of their videos in one transaction.
func (r *UserRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.VideoModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete user videos: %w", err)
		}

		result := tx.Delete(&models.UserModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete user: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return user.ErrUserNotFound
		}
		return nil
	})
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepositoryImpl) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepositoryImpl) ListActive(ctx context.Context) ([]*user.User, error) {
	var userModels []*models.UserModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", user.StatusActive.String()).
		Order("username ASC").
		Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list active users: %w", err)
	}

	return r.mapper.ToEntities(userModels)
}

func (r *UserRepositoryImpl) ListByRole(ctx context.Context, role user.Role) ([]*user.User, error) {
	var userModels []*models.UserModel
	if err := r.db.WithContext(ctx).
		Where("status = ? AND role = ?", user.StatusActive.String(), role.String()).
		Order("username ASC").
		Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}

	return r.mapper.ToEntities(userModels)
}

func (r *UserRepositoryImpl) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("status = ?", user.StatusActive.String())

	if filter.Role != nil {
		query = query.Where("role = ?", filter.Role.String())
	}
	if filter.Keyword != "" {
		keyword := "%" + strings.ToLower(filter.Keyword) + "%"
		query = query.Where("LOWER(username) LIKE ? OR LOWER(email) LIKE ? OR LOWER(full_name) LIKE ?",
			keyword, keyword, keyword)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	order, err := buildOrderClause(userSortColumns, filter.SortBy, filter.SortDir, "username ASC")
	if err != nil {
		return nil, 0, err
	}

	page, pageSize := clampPage(filter.Page, filter.PageSize)
	var userModels []*models.UserModel
	if err := query.Order(order).
		Offset(page * pageSize).Limit(pageSize).
		Find(&userModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	users, err := r.mapper.ToEntities(userModels)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepositoryImpl) ExistsByUsername(ctx context.Context, username string, excludeID uint) (bool, error) {
	return r.existsBy(ctx, "username", username, excludeID)
}

func (r *UserRepositoryImpl) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	return r.existsBy(ctx, "email", email, excludeID)
}

func (r *UserRepositoryImpl) existsBy(ctx context.Context, column, value string, excludeID uint) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("LOWER("+column+") = ?", strings.ToLower(value))
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user %s existence: %w", column, err)
	}
	return count > 0, nil
}

func (r *UserRepositoryImpl) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("status = ?", user.StatusActive.String()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active users: %w", err)
	}
	return count, nil
}

func (r *UserRepositoryImpl) CountByRole(ctx context.Context, role user.Role) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("status = ? AND role = ?", user.StatusActive.String(), role.String()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count users by role: %w", err)
	}
	return count, nil
}
