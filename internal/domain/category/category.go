// Package category provides the domain model for video categories.
package category

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Status represents the visibility status of a category
type Status string

const (
	// StatusActive indicates the category is active
	StatusActive Status = "active"
	// StatusInactive indicates the category is soft deleted
	StatusInactive Status = "inactive"
)

// IsValid checks if the status is valid
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// String returns the string representation of the status
func (s Status) String() string {
	return string(s)
}

const (
	nameMinLen        = 2
	nameMaxLen        = 100
	descriptionMaxLen = 500
)

// Category represents the category aggregate root. A category owns zero or
// more videos; the videos reference it by plain foreign key.
type Category struct {
	id          uint
	name        string
	description string
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("category name is required")
	}
	if n := utf8.RuneCountInString(name); n < nameMinLen || n > nameMaxLen {
		return fmt.Errorf("category name must be between %d and %d characters", nameMinLen, nameMaxLen)
	}
	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > descriptionMaxLen {
		return fmt.Errorf("category description must not exceed %d characters", descriptionMaxLen)
	}
	return nil
}

// NewCategory creates a new active category
func NewCategory(name, description string) (*Category, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Category{
		name:        name,
		description: description,
		status:      StatusActive,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructCategory reconstructs a category from persistence
func ReconstructCategory(id uint, name, description, status string, createdAt, updatedAt time.Time) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	categoryStatus := Status(status)
	if !categoryStatus.IsValid() {
		return nil, fmt.Errorf("invalid category status: %s", status)
	}

	return &Category{
		id:          id,
		name:        name,
		description: description,
		status:      categoryStatus,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// ID returns the category ID
func (c *Category) ID() uint {
	return c.id
}

// Name returns the category name
func (c *Category) Name() string {
	return c.name
}

// Description returns the category description
func (c *Category) Description() string {
	return c.description
}

// Status returns the category status
func (c *Category) Status() Status {
	return c.status
}

// CreatedAt returns when the category was created
func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns when the category was last updated
func (c *Category) UpdatedAt() time.Time {
	return c.updatedAt
}

// IsActive checks if the category is active
func (c *Category) IsActive() bool {
	return c.status == StatusActive
}

// SetID sets the category ID (only for persistence layer use)
func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}

// UpdateName updates the category name
func (c *Category) UpdateName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if c.name == name {
		return nil
	}
	c.name = name
	c.updatedAt = time.Now()
	return nil
}

// UpdateDescription updates the category description
func (c *Category) UpdateDescription(description string) error {
	if err := validateDescription(description); err != nil {
		return err
	}
	if c.description == description {
		return nil
	}
	c.description = description
	c.updatedAt = time.Now()
	return nil
}

// Activate activates the category. No-op when already active.
func (c *Category) Activate() {
	if c.status == StatusActive {
		return
	}
	c.status = StatusActive
	c.updatedAt = time.Now()
}

// Deactivate soft deletes the category. No-op when already inactive.
func (c *Category) Deactivate() {
	if c.status == StatusInactive {
		return
	}
	c.status = StatusInactive
	c.updatedAt = time.Now()
}
