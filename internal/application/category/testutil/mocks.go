// Package testutil provides in-memory mock implementations for testing the
// category application layer.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/reelhub/reelhub/internal/domain/category"
)

// MockCategoryRepository is an in-memory implementation of
// category.Repository for testing.
type MockCategoryRepository struct {
	mu         sync.RWMutex
	categories map[uint]*category.Category
	nextID     uint

	// Error injection for testing
	CreateErr error
	GetErr    error
	UpdateErr error
	DeleteErr error
	ListErr   error
	ExistsErr error
}

// NewMockCategoryRepository creates a new mock category repository.
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		categories: make(map[uint]*category.Category),
	}
}

// Create stores a new category, assigning the next ID.
func (m *MockCategoryRepository) Create(ctx context.Context, cat *category.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateErr != nil {
		return m.CreateErr
	}

	if cat.ID() == 0 {
		m.nextID++
		if err := cat.SetID(m.nextID); err != nil {
			return err
		}
	}
	m.categories[cat.ID()] = cat
	return nil
}

// Update replaces a stored category.
func (m *MockCategoryRepository) Update(ctx context.Context, cat *category.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.UpdateErr != nil {
		return m.UpdateErr
	}

	if _, exists := m.categories[cat.ID()]; !exists {
		return category.ErrCategoryNotFound
	}
	m.categories[cat.ID()] = cat
	return nil
}

// Delete removes a category permanently.
func (m *MockCategoryRepository) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.DeleteErr != nil {
		return m.DeleteErr
	}

	if _, exists := m.categories[id]; !exists {
		return category.ErrCategoryNotFound
	}
	delete(m.categories, id)
	return nil
}

// GetByID retrieves a category by ID, (nil, nil) when absent.
func (m *MockCategoryRepository) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.categories[id], nil
}

// ListActive returns all active categories.
func (m *MockCategoryRepository) ListActive(ctx context.Context) ([]*category.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.ListErr != nil {
		return nil, m.ListErr
	}

	var result []*category.Category
	for _, cat := range m.categories {
		if cat.IsActive() {
			result = append(result, cat)
		}
	}
	return result, nil
}

// List filters, sorts and paginates active categories.
func (m *MockCategoryRepository) List(ctx context.Context, filter category.ListFilter) ([]*category.Category, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.ListErr != nil {
		return nil, 0, m.ListErr
	}

	var matched []*category.Category
	keyword := strings.ToLower(filter.Keyword)
	for _, cat := range m.categories {
		if !cat.IsActive() {
			continue
		}
		if keyword != "" &&
			!strings.Contains(strings.ToLower(cat.Name()), keyword) &&
			!strings.Contains(strings.ToLower(cat.Description()), keyword) {
			continue
		}
		matched = append(matched, cat)
	}

	desc := strings.EqualFold(filter.SortDir, "desc")
	sort.Slice(matched, func(i, j int) bool {
		var less bool
		switch filter.SortBy {
		case "createdAt":
			less = matched[i].CreatedAt().Before(matched[j].CreatedAt())
		default:
			less = matched[i].Name() < matched[j].Name()
		}
		if desc {
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

// ExistsByName reports a case-insensitive name match, excluding excludeID.
func (m *MockCategoryRepository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.ExistsErr != nil {
		return false, m.ExistsErr
	}

	for _, cat := range m.categories {
		if cat.ID() == excludeID {
			continue
		}
		if strings.EqualFold(cat.Name(), name) {
			return true, nil
		}
	}
	return false, nil
}

// CountActive counts active categories.
func (m *MockCategoryRepository) CountActive(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var count int64
	for _, cat := range m.categories {
		if cat.IsActive() {
			count++
		}
	}
	return count, nil
}
