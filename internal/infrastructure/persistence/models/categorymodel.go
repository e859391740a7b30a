// Package models defines the database persistence models. They are the
// anti-corruption layer between domain and database.
package models

import (
	"time"

	"github.com/reelhub/reelhub/internal/shared/constants"
)

// CategoryModel represents the database persistence model for categories.
// The unique index backstops the application-level duplicate check.
type CategoryModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"uniqueIndex;not null;size:100"`
	Description string `gorm:"size:500"`
	Status      string `gorm:"not null;default:active;size:20;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (CategoryModel) TableName() string {
	return constants.TableCategories
}
