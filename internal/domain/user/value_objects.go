package user

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidUsername = errors.New("username must be 3-50 characters of letters, digits, '.', '_' or '-'")
	ErrInvalidRole     = errors.New("role must be admin or staff")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
	ErrDeleteSelf      = errors.New("You cannot delete your own account")
	ErrLastAdmin       = errors.New("Cannot delete the last admin user")
	ErrDuplicate       = errors.New("Username or email already exists")
)

const MinPasswordLength = 8

// Role decides access to the settings and user management screens.
type Role string

const (
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

// NewRole accepts the role names case-insensitively.
func NewRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleStaff, RoleAdmin:
		return r, nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._\-]{3,50}$`)

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = strings.TrimSpace(s)
	if !usernameRegex.MatchString(s) {
		return Username{}, ErrInvalidUsername
	}
	return Username{value: s}, nil
}

func (u Username) Value() string {
	return u.value
}

func (u Username) String() string {
	return u.value
}

// CheckPassword enforces the plain-text rules before hashing.
func CheckPassword(plain string) error {
	if utf8.RuneCountInString(plain) < MinPasswordLength {
		return ErrPasswordTooWeak
	}
	return nil
}
