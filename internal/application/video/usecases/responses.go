package usecases

import (
	"github.com/reelhub/reelhub/internal/application/video/dto"
	"github.com/reelhub/reelhub/internal/domain/video"
)

func toVideoResponse(v *video.Video) dto.VideoResponse {
	return dto.VideoResponse{
		ID:          v.ID(),
		Title:       v.Title(),
		Description: v.Description(),
		URL:         v.URL(),
		Duration:    v.Duration(),
		Views:       v.Views(),
		Likes:       v.Likes(),
		CategoryID:  v.CategoryID(),
		UserID:      v.UserID(),
		Status:      v.Status().String(),
		CreatedAt:   v.CreatedAt(),
		UpdatedAt:   v.UpdatedAt(),
	}
}
