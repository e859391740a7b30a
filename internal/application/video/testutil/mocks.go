// Package testutil provides in-memory mock implementations for testing the
// video application layer.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/reelhub/reelhub/internal/domain/video"
)

// MockVideoRepository is an in-memory implementation of video.Repository
// for testing.
type MockVideoRepository struct {
	mu     sync.RWMutex
	videos map[uint]*video.Video
	nextID uint

	// Error injection for testing
	CreateErr    error
	GetErr       error
	UpdateErr    error
	DeleteErr    error
	ListErr      error
	IncrementErr error
}

// NewMockVideoRepository creates a new mock video repository.
func NewMockVideoRepository() *MockVideoRepository {
	return &MockVideoRepository{
		videos: make(map[uint]*video.Video),
	}
}

// Create stores a new video, assigning the next ID.
func (m *MockVideoRepository) Create(ctx context.Context, v *video.Video) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateErr != nil {
		return m.CreateErr
	}

	if v.ID() == 0 {
		m.nextID++
		if err := v.SetID(m.nextID); err != nil {
			return err
		}
	}
	m.videos[v.ID()] = v
	return nil
}

// Update replaces a stored video.
func (m *MockVideoRepository) Update(ctx context.Context, v *video.Video) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.UpdateErr != nil {
		return m.UpdateErr
	}

	if _, exists := m.videos[v.ID()]; !exists {
		return video.ErrVideoNotFound
	}
	m.videos[v.ID()] = v
	return nil
}

// Delete removes a video permanently.
func (m *MockVideoRepository) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.DeleteErr != nil {
		return m.DeleteErr
	}

	if _, exists := m.videos[id]; !exists {
		return video.ErrVideoNotFound
	}
	delete(m.videos, id)
	return nil
}

// DeleteByCategory removes all videos in a category. Mirrors the cascade
// the real repository performs when a category is hard deleted.
func (m *MockVideoRepository) DeleteByCategory(ctx context.Context, categoryID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, v := range m.videos {
		if v.CategoryID() == categoryID {
			delete(m.videos, id)
		}
	}
}

// DeleteByUser removes all videos owned by a user. Mirrors the cascade
// the real repository performs when a user is hard deleted.
func (m *MockVideoRepository) DeleteByUser(ctx context.Context, userID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, v := range m.videos {
		if v.UserID() == userID {
			delete(m.videos, id)
		}
	}
}

// GetByID retrieves a video by ID, (nil, nil) when absent.
func (m *MockVideoRepository) GetByID(ctx context.Context, id uint) (*video.Video, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.videos[id], nil
}

// ListActive returns all active videos.
func (m *MockVideoRepository) ListActive(ctx context.Context) ([]*video.Video, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.ListErr != nil {
		return nil, m.ListErr
	}

	var result []*video.Video
	for _, v := range m.videos {
		if v.IsActive() {
			result = append(result, v)
		}
	}
	return result, nil
}

// ListByCategory returns all active videos in a category.
func (m *MockVideoRepository) ListByCategory(ctx context.Context, categoryID uint) ([]*video.Video, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.ListErr != nil {
		return nil, m.ListErr
	}

	var result []*video.Video
	for _, v := range m.videos {
		if v.IsActive() && v.CategoryID() == categoryID {
			result = append(result, v)
		}
	}
	return result, nil
}

// ListByUser returns all active videos owned by a user.
func (m *MockVideoRepository) ListByUser(ctx context.Context, userID uint) ([]*video.Video, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.ListErr != nil {
		return nil, m.ListErr
	}

	var result []*video.Video
	for _, v := range m.videos {
		if v.IsActive() && v.UserID() == userID {
			result = append(result, v)
		}
	}
	return result, nil
}

// ListByCategoryAndUser returns all active videos in a category owned by
// a user.
func (m *MockVideoRepository) ListByCategoryAndUser(ctx context.Context, categoryID, userID uint) ([]*video.Video, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.ListErr != nil {
		return nil, m.ListErr
	}

	var result []*video.Video
	for _, v := range m.videos {
		if v.IsActive() && v.CategoryID() == categoryID && v.UserID() == userID {
			result = append(result, v)
		}
	}
	return result, nil
}

// List filters, sorts and paginates active videos.
func (m *MockVideoRepository) List(ctx context.Context, filter video.ListFilter) ([]*video.Video, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.ListErr != nil {
		return nil, 0, m.ListErr
	}

	var matched []*video.Video
	keyword := strings.ToLower(filter.Keyword)
	for _, v := range m.videos {
		if !v.IsActive() {
			continue
		}
		if filter.CategoryID != nil && v.CategoryID() != *filter.CategoryID {
			continue
		}
		if filter.UserID != nil && v.UserID() != *filter.UserID {
			continue
		}
		if keyword != "" &&
			!strings.Contains(strings.ToLower(v.Title()), keyword) &&
			!strings.Contains(strings.ToLower(v.Description()), keyword) {
			continue
		}
		matched = append(matched, v)
	}

	sort.Slice(matched, func(i, j int) bool {
		switch filter.Ranking {
		case video.RankingMostViewed:
			return matched[i].Views() > matched[j].Views()
		case video.RankingMostLiked:
			return matched[i].Likes() > matched[j].Likes()
		case video.RankingRecent:
			return matched[i].CreatedAt().After(matched[j].CreatedAt())
		}

		var less bool
		switch filter.SortBy {
		case "createdAt":
			less = matched[i].CreatedAt().Before(matched[j].CreatedAt())
		case "views":
			less = matched[i].Views() < matched[j].Views()
		case "likes":
			less = matched[i].Likes() < matched[j].Likes()
		default:
			less = matched[i].Title() < matched[j].Title()
		}
		if strings.EqualFold(filter.SortDir, "desc") {
			return !less
		}
		return less
	})

	total := int64(len(matched))
	start := filter.Page * filter.PageSize
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// IncrementViews adds 1 to the view counter.
func (m *MockVideoRepository) IncrementViews(ctx context.Context, id uint) error {
	return m.increment(id, 1, 0)
}

// IncrementLikes adds 1 to the like counter.
func (m *MockVideoRepository) IncrementLikes(ctx context.Context, id uint) error {
	return m.increment(id, 0, 1)
}

func (m *MockVideoRepository) increment(id uint, views, likes int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.IncrementErr != nil {
		return m.IncrementErr
	}

	v, exists := m.videos[id]
	if !exists {
		return video.ErrVideoNotFound
	}

	bumped, err := video.ReconstructVideo(
		v.ID(), v.Title(), v.Description(), v.URL(), v.Duration(),
		v.Views()+views, v.Likes()+likes,
		v.CategoryID(), v.UserID(), v.Status().String(),
		v.CreatedAt(), v.UpdatedAt(),
	)
	if err != nil {
		return err
	}
	m.videos[id] = bumped
	return nil
}

// CountActive counts active videos.
func (m *MockVideoRepository) CountActive(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var count int64
	for _, v := range m.videos {
		if v.IsActive() {
			count++
		}
	}
	return count, nil
}

// CountByCategory counts active videos in a category.
func (m *MockVideoRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var count int64
	for _, v := range m.videos {
		if v.IsActive() && v.CategoryID() == categoryID {
			count++
		}
	}
	return count, nil
}

// CountByUser counts active videos owned by a user.
func (m *MockVideoRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var count int64
	for _, v := range m.videos {
		if v.IsActive() && v.UserID() == userID {
			count++
		}
	}
	return count, nil
}
