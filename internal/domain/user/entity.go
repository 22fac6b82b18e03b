package user

import (
	"time"

	"travel-backoffice/internal/domain/contact"

	"github.com/google/uuid"
)

// User is a back-office staff account.
type User struct {
	id           uuid.UUID
	username     Username
	email        contact.Email
	passwordHash string
	role         Role
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username Username, email contact.Email, passwordHash string, role Role, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}
}

func ReconstructUser(
	id uuid.UUID, username Username, email contact.Email, passwordHash string,
	role Role, createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Revise replaces the profile. An empty passwordHash keeps the current one.
func (u *User) Revise(username Username, email contact.Email, role Role, passwordHash string, now time.Time) {
	u.username = username
	u.email = email
	u.role = role
	if passwordHash != "" {
		u.passwordHash = passwordHash
	}
	u.updatedAt = now
}

func (u *User) ID() uuid.UUID          { return u.id }
func (u *User) Username() Username     { return u.username }
func (u *User) Email() contact.Email   { return u.email }
func (u *User) PasswordHash() string   { return u.passwordHash }
func (u *User) Role() Role             { return u.role }
func (u *User) IsAdmin() bool          { return u.role == RoleAdmin }
func (u *User) CreatedAt() time.Time   { return u.createdAt }
func (u *User) UpdatedAt() time.Time   { return u.updatedAt }

// EnsureDeletable guards account removal: nobody deletes themselves and the
// last admin always survives.
func EnsureDeletable(actorID *uuid.UUID, target uuid.UUID, targetRole Role, adminCount int64) error {
	if actorID != nil && *actorID == target {
		return ErrDeleteSelf
	}
	if targetRole == RoleAdmin && adminCount <= 1 {
		return ErrLastAdmin
	}
	return nil
}
