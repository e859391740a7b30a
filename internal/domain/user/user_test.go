package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		fullName string
		hash     string
		role     Role
		wantErr  bool
	}{
		{name: "valid admin", username: "alice", email: "a@x.com", fullName: "Alice A", hash: "$2a$12$hash", role: RoleAdmin},
		{name: "valid user", username: "bob", email: "b@x.com", hash: "$2a$12$hash", role: RoleUser},
		{name: "missing username", email: "a@x.com", hash: "h", role: RoleUser, wantErr: true},
		{name: "missing email", username: "alice", hash: "h", role: RoleUser, wantErr: true},
		{name: "malformed email", username: "alice", email: "not-an-email", hash: "h", role: RoleUser, wantErr: true},
		{name: "missing password hash", username: "alice", email: "a@x.com", role: RoleUser, wantErr: true},
		{name: "unknown role", username: "alice", email: "a@x.com", hash: "h", role: Role("ROOT"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(tt.username, tt.email, tt.fullName, tt.hash, tt.role)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, u)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.username, u.Username())
			assert.Equal(t, tt.email, u.Email())
			assert.Equal(t, tt.hash, u.PasswordHash())
			assert.Equal(t, tt.role, u.Role())
			assert.True(t, u.IsActive())
		})
	}
}

func TestReconstructUser(t *testing.T) {
	now := time.Now()

	u, err := ReconstructUser(5, "alice", "a@x.com", "Alice", "hash", "ADMIN", "inactive", now, now)
	require.NoError(t, err)
	assert.Equal(t, uint(5), u.ID())
	assert.Equal(t, RoleAdmin, u.Role())
	assert.False(t, u.IsActive())

	_, err = ReconstructUser(5, "alice", "a@x.com", "", "hash", "SUPER", "active", now, now)
	assert.Error(t, err)

	_, err = ReconstructUser(5, "alice", "a@x.com", "", "hash", "ADMIN", "gone", now, now)
	assert.Error(t, err)
}

func TestUserChangePasswordHash(t *testing.T) {
	u, err := NewUser("alice", "a@x.com", "", "old-hash", RoleUser)
	require.NoError(t, err)

	require.NoError(t, u.ChangePasswordHash("new-hash"))
	assert.Equal(t, "new-hash", u.PasswordHash())

	assert.Error(t, u.ChangePasswordHash(""))
	assert.Equal(t, "new-hash", u.PasswordHash())
}

func TestUserStatusTransitions(t *testing.T) {
	u, err := NewUser("alice", "a@x.com", "", "hash", RoleUser)
	require.NoError(t, err)

	u.Deactivate()
	assert.False(t, u.IsActive())
	u.Deactivate()
	assert.False(t, u.IsActive())

	u.Activate()
	assert.True(t, u.IsActive())
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleUser.IsValid())
	assert.False(t, Role("").IsValid())
	assert.False(t, Role("root").IsValid())
}
