// Package video provides the domain model for videos. A video references
// exactly one category and one user by plain foreign key.
package video

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Status represents the visibility status of a video
type Status string

const (
	// StatusActive indicates the video is active
	StatusActive Status = "active"
	// StatusInactive indicates the video is soft deleted
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
	titleMinLen       = 2
	titleMaxLen       = 200
	descriptionMaxLen = 1000
	urlMaxLen         = 500
)

// Video represents the video aggregate root
type Video struct {
	id          uint
	title       string
	description string
	url         string
	duration    *int // seconds
	views       int64
	likes       int64
	categoryID  uint
	userID      uint
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("video title is required")
	}
	if n := utf8.RuneCountInString(title); n < titleMinLen || n > titleMaxLen {
		return fmt.Errorf("video title must be between %d and %d characters", titleMinLen, titleMaxLen)
	}
	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > descriptionMaxLen {
		return fmt.Errorf("video description must not exceed %d characters", descriptionMaxLen)
	}
	return nil
}

func validateURL(url string) error {
	if strings.TrimSpace(url) == "" {
		return fmt.Errorf("video url is required")
	}
	if utf8.RuneCountInString(url) > urlMaxLen {
		return fmt.Errorf("video url must not exceed %d characters", urlMaxLen)
	}
	return nil
}

func validateDuration(duration *int) error {
	if duration != nil && *duration < 0 {
		return fmt.Errorf("video duration cannot be negative")
	}
	return nil
}

// NewVideo creates a new active video with zeroed counters
func NewVideo(title, description, url string, duration *int, categoryID, userID uint) (*Video, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	if err := validateURL(url); err != nil {
		return nil, err
	}
	if err := validateDuration(duration); err != nil {
		return nil, err
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	now := time.Now()
	return &Video{
		title:       title,
		description: description,
		url:         url,
		duration:    duration,
		categoryID:  categoryID,
		userID:      userID,
		status:      StatusActive,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructVideo reconstructs a video from persistence
func ReconstructVideo(id uint, title, description, url string, duration *int, views, likes int64, categoryID, userID uint, status string, createdAt, updatedAt time.Time) (*Video, error) {
	if id == 0 {
		return nil, fmt.Errorf("video ID cannot be zero")
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateURL(url); err != nil {
		return nil, err
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	videoStatus := Status(status)
	if !videoStatus.IsValid() {
		return nil, fmt.Errorf("invalid video status: %s", status)
	}

	return &Video{
		id:          id,
		title:       title,
		description: description,
		url:         url,
		duration:    duration,
		views:       views,
		likes:       likes,
		categoryID:  categoryID,
		userID:      userID,
		status:      videoStatus,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// ID returns the video ID
func (v *Video) ID() uint {
	return v.id
}

// Title returns the video title
func (v *Video) Title() string {
	return v.title
}

// Description returns the video description
func (v *Video) Description() string {
	return v.description
}

// URL returns the video URL
func (v *Video) URL() string {
	return v.url
}

// Duration returns the duration in seconds, nil when unknown
func (v *Video) Duration() *int {
	return v.duration
}

// Views returns the view counter
func (v *Video) Views() int64 {
	return v.views
}

// Likes returns the like counter
func (v *Video) Likes() int64 {
	return v.likes
}

// CategoryID returns the owning category ID
func (v *Video) CategoryID() uint {
	return v.categoryID
}

// UserID returns the owning user ID
func (v *Video) UserID() uint {
	return v.userID
}

// Status returns the video status
func (v *Video) Status() Status {
	return v.status
}

// CreatedAt returns when the video was created
func (v *Video) CreatedAt() time.Time {
	return v.createdAt
}

// UpdatedAt returns when the video was last updated
func (v *Video) UpdatedAt() time.Time {
	return v.updatedAt
}

// IsActive checks if the video is active
func (v *Video) IsActive() bool {
	return v.status == StatusActive
}

// SetID sets the video ID (only for persistence layer use)
func (v *Video) SetID(id uint) error {
	if v.id != 0 {
		return fmt.Errorf("video ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("video ID cannot be zero")
	}
	v.id = id
	return nil
}

// UpdateTitle updates the video title
func (v *Video) UpdateTitle(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	if v.title == title {
		return nil
	}
	v.title = title
	v.updatedAt = time.Now()
	return nil
}

// UpdateDescription updates the video description
func (v *Video) UpdateDescription(description string) error {
	if err := validateDescription(description); err != nil {
		return err
	}
	if v.description == description {
		return nil
	}
	v.description = description
	v.updatedAt = time.Now()
	return nil
}

// UpdateURL updates the video URL
func (v *Video) UpdateURL(url string) error {
	if err := validateURL(url); err != nil {
		return err
	}
	if v.url == url {
		return nil
	}
	v.url = url
	v.updatedAt = time.Now()
	return nil
}

// UpdateDuration updates the duration in seconds
func (v *Video) UpdateDuration(duration *int) error {
	if err := validateDuration(duration); err != nil {
		return err
	}
	v.duration = duration
	v.updatedAt = time.Now()
	return nil
}

// AssignCategory repoints the video at a category by ID
func (v *Video) AssignCategory(categoryID uint) error {
	if categoryID == 0 {
		return fmt.Errorf("category ID is required")
	}
	if v.categoryID == categoryID {
		return nil
	}
	v.categoryID = categoryID
	v.updatedAt = time.Now()
	return nil
}

// AssignUser repoints the video at a user by ID
func (v *Video) AssignUser(userID uint) error {
	if userID == 0 {
		return fmt.Errorf("user ID is required")
	}
	if v.userID == userID {
		return nil
	}
	v.userID = userID
	v.updatedAt = time.Now()
	return nil
}

// Activate activates the video. No-op when already active.
func (v *Video) Activate() {
	if v.status == StatusActive {
		return
	}
	v.status = StatusActive
	v.updatedAt = time.Now()
}

// Deactivate soft deletes the video. No-op when already inactive.
func (v *Video) Deactivate() {
	if v.status == StatusInactive {
		return
	}
	v.status = StatusInactive
	v.updatedAt = time.Now()
}
