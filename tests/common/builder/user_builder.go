//go:build unit || e2e

package builder

import (
	"time"

	"travel-backoffice/internal/domain/contact"
	"travel-backoffice/internal/domain/user"
	sqlc "travel-backoffice/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// FixedNow is the clock reading every builder stamps onto its output.
var FixedNow = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

type UserBuilder struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.MustParse("5f0c8a3e-2b7d-4f1e-9c6a-1d2e3f4a5b6c"),
		Username:     "mia.staff",
		Email:        "mia@example.com",
		PasswordHash: "hashed_password",
		Role:         "staff",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}
	email, err := contact.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	return user.NewUser(username, email, u.PasswordHash, role, FixedNow), nil
}

// BuildReconstructed keeps the builder's ID, as a row loaded from the database would.
func (u *UserBuilder) BuildReconstructed() *user.User {
	username, _ := user.NewUsername(u.Username)
	email, _ := contact.NewEmail(u.Email)
	return user.ReconstructUser(u.ID, username, email, u.PasswordHash, user.Role(u.Role), FixedNow, FixedNow)
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	return sqlc.Users{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		CreatedAt:    pgtype.Timestamptz{Time: FixedNow, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: FixedNow, Valid: true},
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "admin"
	return u
}
