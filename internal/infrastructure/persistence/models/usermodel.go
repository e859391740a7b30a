package models

import (
	"time"

	"github.com/reelhub/reelhub/internal/shared/constants"
)

// UserModel represents the database persistence model for users
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Username     string `gorm:"uniqueIndex;not null;size:100"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	FullName     string `gorm:"size:255"`
	PasswordHash string `gorm:"not null;size:255"`
	Role         string `gorm:"not null;default:USER;size:20"`
	Status       string `gorm:"not null;default:active;size:20;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
