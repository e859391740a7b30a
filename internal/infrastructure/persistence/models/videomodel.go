package models

import (
	"time"

	"github.com/reelhub/reelhub/internal/shared/constants"
)

// VideoModel represents the database persistence model for videos. The
// category and user references are plain foreign key columns; hard
// deleting a category or user removes its videos in the same
// transaction.
type VideoModel struct {
	ID          uint   `gorm:"primarykey"`
	Title       string `gorm:"not null;size:200"`
	Description string `gorm:"size:1000"`
	URL         string `gorm:"not null;size:500"`
	Duration    *int
	Views       int64  `gorm:"not null;default:0"`
	Likes       int64  `gorm:"not null;default:0"`
	CategoryID  uint   `gorm:"not null;index"`
	UserID      uint   `gorm:"not null;index"`
	Status      string `gorm:"not null;default:active;size:20;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (VideoModel) TableName() string {
	return constants.TableVideos
}
