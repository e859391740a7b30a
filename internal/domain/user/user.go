// Package user provides the domain model for admin-managed user accounts.
package user

import (
	"fmt"
	"strings"
	"time"
)

// Status represents the visibility status of a user
type Status string

const (
	// StatusActive indicates the user is active
	StatusActive Status = "active"
	// StatusInactive indicates the user is soft deleted
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

// Role is the enumerated access role of a user
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// IsValid checks if the role is one of the known variants
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// User represents the user aggregate root. The password is held only as an
// opaque hash produced by the application-layer hasher; plaintext never
// enters the domain.
type User struct {
	id           uint
	username     string
	email        string
	fullName     string
	passwordHash string
	role         Role
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
}

func validateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username is required")
	}
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("email is malformed")
	}
	return nil
}

// NewUser creates a new active user with an already-hashed password
func NewUser(username, email, fullName, passwordHash string, role Role) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now()
	return &User{
		username:     username,
		email:        email,
		fullName:     fullName,
		passwordHash: passwordHash,
		role:         role,
		status:       StatusActive,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser reconstructs a user from persistence
func ReconstructUser(id uint, username, email, fullName, passwordHash, role, status string, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	userRole := Role(role)
	if !userRole.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	userStatus := Status(status)
	if !userStatus.IsValid() {
		return nil, fmt.Errorf("invalid user status: %s", status)
	}

	return &User{
		id:           id,
		username:     username,
		email:        email,
		fullName:     fullName,
		passwordHash: passwordHash,
		role:         userRole,
		status:       userStatus,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// ID returns the user ID
func (u *User) ID() uint {
	return u.id
}

// Username returns the username
func (u *User) Username() string {
	return u.username
}

// Email returns the email address
func (u *User) Email() string {
	return u.email
}

// FullName returns the full display name
func (u *User) FullName() string {
	return u.fullName
}

// PasswordHash returns the opaque password hash
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user role
func (u *User) Role() Role {
	return u.role
}

// Status returns the user status
func (u *User) Status() Status {
	return u.status
}

// CreatedAt returns when the user was created
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns when the user was last updated
func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// IsActive checks if the user is active
func (u *User) IsActive() bool {
	return u.status == StatusActive
}

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// UpdateUsername updates the username
func (u *User) UpdateUsername(username string) error {
	if err := validateUsername(username); err != nil {
		return err
	}
	if u.username == username {
		return nil
	}
	u.username = username
	u.updatedAt = time.Now()
	return nil
}

// UpdateEmail updates the email address
func (u *User) UpdateEmail(email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	if u.email == email {
		return nil
	}
	u.email = email
	u.updatedAt = time.Now()
	return nil
}

// UpdateFullName updates the full display name
func (u *User) UpdateFullName(fullName string) {
	if u.fullName == fullName {
		return
	}
	u.fullName = fullName
	u.updatedAt = time.Now()
}

// UpdateRole updates the user role
func (u *User) UpdateRole(role Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	if u.role == role {
		return nil
	}
	u.role = role
	u.updatedAt = time.Now()
	return nil
}

// ChangePasswordHash replaces the stored password hash
func (u *User) ChangePasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = passwordHash
	u.updatedAt = time.Now()
	return nil
}

// Activate activates the user. No-op when already active.
func (u *User) Activate() {
	if u.status == StatusActive {
		return
	}
	u.status = StatusActive
	u.updatedAt = time.Now()
}

// Deactivate soft deletes the user. No-op when already inactive.
func (u *User) Deactivate() {
	if u.status == StatusInactive {
		return
	}
	u.status = StatusInactive
	u.updatedAt = time.Now()
}
