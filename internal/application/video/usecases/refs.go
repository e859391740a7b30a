package usecases

import (
	"context"
	"fmt"

	"github.com/reelhub/reelhub/internal/domain/category"
	"github.com/reelhub/reelhub/internal/domain/user"
	"github.com/reelhub/reelhub/internal/domain/video"
)

// refChecker validates that a video's category and user references point
// at existing, active records. Create and update share the same checks.
type refChecker struct {
	categories category.Repository
	users      user.Repository
}

func (c refChecker) checkCategory(ctx context.Context, id uint) error {
	cat, err := c.categories.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get category: %w", err)
	}
	if cat == nil || !cat.IsActive() {
		return video.ErrCategoryNotActive
	}
	return nil
}

func (c refChecker) checkUser(ctx context.Context, id uint) error {
	u, err := c.users.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil || !u.IsActive() {
		return video.ErrUserNotActive
	}
	return nil
}
