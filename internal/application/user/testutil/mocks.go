// Package testutil provides in-memory mock implementations for testing the
// user application layer.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/reelhub/reelhub/internal/domain/user"
)

// MockUserRepository is an in-memory implementation of user.Repository
// for testing.
type MockUserRepository struct {
	mu     sync.RWMutex
	users  map[uint]*user.User
	nextID uint

	// Error injection for testing
	CreateErr error
	GetErr    error
	UpdateErr error
	DeleteErr error
	ListErr   error
	ExistsErr error
}

// NewMockUserRepository creates a new mock user repository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uint]*user.User),
	}
}

// Create stores a new user, assigning the next ID.
func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateErr != nil {
		return m.CreateErr
	}

	if u.ID() == 0 {
		m.nextID++
		if err := u.SetID(m.nextID); err != nil {
			return err
		}
	}
	m.users[u.ID()] = u
	return nil
}

// Update replaces a stored user.
func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.UpdateErr != nil {
		return m.UpdateErr
	}

	if _, exists := m.users[u.ID()]; !exists {
		return user.ErrUserNotFound
	}
	m.users[u.ID()] = u
	return nil
}

// Delete removes a user permanently.
func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.DeleteErr != nil {
		return m.DeleteErr
	}

	if _, exists := m.users[id]; !exists {
		return user.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

// GetByID retrieves a user by ID, (nil, nil) when absent.
func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.users[id], nil
}

// GetByUsername retrieves a user by exact username, (nil, nil) when absent.
func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for _, u := range m.users {
		if u.Username() == username {
			return u, nil
		}
	}
	return nil, nil
}

// GetByEmail retrieves a user by exact email, (nil, nil) when absent.
func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for _, u := range m.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, nil
}

// ListActive returns all active users.
func (m *MockUserRepository) ListActive(ctx context.Context) ([]*user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.ListErr != nil {
		return nil, m.ListErr
	}

	var result []*user.User
	for _, u := range m.users {
		if u.IsActive() {
			result = append(result, u)
		}
	}
	return result, nil
}

// ListByRole returns all active users with the given role.
func (m *MockUserRepository) ListByRole(ctx context.Context, role user.Role) ([]*user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.ListErr != nil {
		return nil, m.ListErr
	}

	var result []*user.User
	for _, u := range m.users {
		if u.IsActive() && u.Role() == role {
			result = append(result, u)
		}
	}
	return result, nil
}

// List filters, sorts and paginates active users.
func (m *MockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.ListErr != nil {
		return nil, 0, m.ListErr
	}

	var matched []*user.User
	keyword := strings.ToLower(filter.Keyword)
	for _, u := range m.users {
		if !u.IsActive() {
			continue
		}
		if filter.Role != nil && u.Role() != *filter.Role {
			continue
		}
		if keyword != "" &&
			!strings.Contains(strings.ToLower(u.Username()), keyword) &&
			!strings.Contains(strings.ToLower(u.Email()), keyword) &&
			!strings.Contains(strings.ToLower(u.FullName()), keyword) {
			continue
		}
		matched = append(matched, u)
	}

	desc := strings.EqualFold(filter.SortDir, "desc")
	sort.Slice(matched, func(i, j int) bool {
		var less bool
		switch filter.SortBy {
		case "createdAt":
			less = matched[i].CreatedAt().Before(matched[j].CreatedAt())
		case "email":
			less = matched[i].Email() < matched[j].Email()
		default:
			less = matched[i].Username() < matched[j].Username()
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

// ExistsByUsername reports a case-insensitive username match, excluding
// excludeID.
func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string, excludeID uint) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.ExistsErr != nil {
		return false, m.ExistsErr
	}

	for _, u := range m.users {
		if u.ID() == excludeID {
			continue
		}
		if strings.EqualFold(u.Username(), username) {
			return true, nil
		}
	}
	return false, nil
}

// ExistsByEmail reports a case-insensitive email match, excluding
// excludeID.
func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.ExistsErr != nil {
		return false, m.ExistsErr
	}

	for _, u := range m.users {
		if u.ID() == excludeID {
			continue
		}
		if strings.EqualFold(u.Email(), email) {
			return true, nil
		}
	}
	return false, nil
}

// CountActive counts active users.
func (m *MockUserRepository) CountActive(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var count int64
	for _, u := range m.users {
		if u.IsActive() {
			count++
		}
	}
	return count, nil
}

// CountByRole counts active users with the given role.
func (m *MockUserRepository) CountByRole(ctx context.Context, role user.Role) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var count int64
	for _, u := range m.users {
		if u.IsActive() && u.Role() == role {
			count++
		}
	}
	return count, nil
}

// FakePasswordHasher is a deterministic hasher for tests. It prefixes
// the plaintext so tests can tell hash and plaintext apart.
type FakePasswordHasher struct {
	HashErr error
}

// Hash returns "hashed:" + password, or the injected error.
func (f *FakePasswordHasher) Hash(password string) (string, error) {
	if f.HashErr != nil {
		return "", f.HashErr
	}
	return "hashed:" + password, nil
}
