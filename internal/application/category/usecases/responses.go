package usecases

import (
	"github.com/reelhub/reelhub/internal/application/category/dto"
	"github.com/reelhub/reelhub/internal/domain/category"
)

func toCategoryResponse(c *category.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		Status:      c.Status().String(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}
