package repository

import (
	"context"

	"travel-backoffice/internal/domain/user"
	"travel-backoffice/internal/infra"
	"travel-backoffice/internal/infra/repository/converter"
	sqlc "travel-backoffice/internal/infra/sqlc/generated"
	"travel-backoffice/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error
	UpdateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserParams) (int64, error)
	DeleteUser(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	GetUser(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	CountUsersByUsernameOrEmail(ctx context.Context, db sqlc.DBTX, arg sqlc.CountUsersByUsernameOrEmailParams) (int64, error)
	CountAdmins(ctx context.Context, db sqlc.DBTX) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	if err := r.queries.CreateUser(ctx, tx, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	affected, err := r.queries.UpdateUser(ctx, tx, converter.UserToUpdateParams(u))
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteUser(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.GetUser(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	u, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map user row", err)
	}
	return u, nil
}

// CountDuplicates counts other users sharing the username or email, case-insensitively.
func (r *UserRepository) CountDuplicates(ctx context.Context, tx sqlc.DBTX, username, email string, exclude *uuid.UUID) (int64, error) {
	n, err := r.queries.CountUsersByUsernameOrEmail(ctx, tx, sqlc.CountUsersByUsernameOrEmailParams{
		Username:  username,
		Email:     email,
		ExcludeID: pgconv.UUIDPtrToPgtype(exclude),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to check for duplicate users", err)
	}
	return n, nil
}

func (r *UserRepository) CountAdmins(ctx context.Context, tx sqlc.DBTX) (int64, error) {
	n, err := r.queries.CountAdmins(ctx, tx)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count admins", err)
	}
	return n, nil
}
