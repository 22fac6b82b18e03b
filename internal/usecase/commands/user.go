package commands

import (
	"context"

	"travel-backoffice/internal/domain/audit"
	"travel-backoffice/internal/domain/contact"
	"travel-backoffice/internal/domain/user"
	"travel-backoffice/internal/pkg/clock"
	"travel-backoffice/internal/pkg/errs"
	"travel-backoffice/internal/pkg/password"
	"travel-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserInput struct {
	Username string
	Email    string
	// Password may be empty on update to keep the current one.
	Password string
	Role     string
}

type UserCommands interface {
	Create(ctx context.Context, in UserInput, actor audit.Actor) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, in UserInput, actor audit.Actor) error
	Delete(ctx context.Context, id uuid.UUID, actor audit.Actor) error
}

type userUseCaseImpl struct {
	uow      shared.UnitOfWork
	auditLog shared.AuditLog
	clock    clock.Clock
}

func NewUserUseCase(uow shared.UnitOfWork, auditLog shared.AuditLog, clk clock.Clock) UserCommands {
	return &userUseCaseImpl{uow: uow, auditLog: auditLog, clock: clk}
}

type userFields struct {
	username user.Username
	email    contact.Email
	role     user.Role
	hash     string
}

func parseUserInput(in UserInput, passwordRequired bool) (userFields, error) {
	username, err := user.NewUsername(in.Username)
	if err != nil {
		return userFields{}, invalid(err)
	}
	email, err := contact.NewEmail(in.Email)
	if err != nil {
		return userFields{}, invalid(err)
	}
	role, err := user.NewRole(in.Role)
	if err != nil {
		return userFields{}, invalid(err)
	}
	f := userFields{username: username, email: email, role: role}
	if in.Password == "" && !passwordRequired {
		return f, nil
	}
	if err := user.CheckPassword(in.Password); err != nil {
		return userFields{}, invalid(err)
	}
	if f.hash, err = password.Hash(in.Password); err != nil {
		if errs.Is(err, password.ErrTooLong) {
			return userFields{}, invalid(err)
		}
		return userFields{}, errs.Wrap(err, "hash password")
	}
	return f, nil
}

func duplicateUser(err error) error {
	if errs.Is(err, errs.ErrIntegrity) {
		return errs.Mark(user.ErrDuplicate, errs.ErrIntegrity)
	}
	return err
}

func (uc *userUseCaseImpl) Create(ctx context.Context, in UserInput, actor audit.Actor) (uuid.UUID, error) {
	f, err := parseUserInput(in, true)
	if err != nil {
		return uuid.Nil, err
	}
	now := uc.clock.Now()
	u := user.NewUser(f.username, f.email, f.hash, f.role, now)

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Users().CountDuplicates(ctx, tx.DB(), f.username.Value(), f.email.Value(), nil)
		if derr != nil {
			return repoErr(derr, ErrUserNotFound)
		}
		if n > 0 {
			return errs.Mark(user.ErrDuplicate, errs.ErrIntegrity)
		}
		return duplicateUser(repoErr(tx.Users().Create(ctx, tx.DB(), u), ErrUserNotFound))
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.auditLog.Record(ctx, audit.UserCreated(actor, f.username.Value(), f.role.String(), now))
	return u.ID(), nil
}

func (uc *userUseCaseImpl) Update(ctx context.Context, id uuid.UUID, in UserInput, actor audit.Actor) error {
	f, err := parseUserInput(in, false)
	if err != nil {
		return err
	}
	now := uc.clock.Now()

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, derr := tx.Users().FindByID(ctx, tx.DB(), id)
		if derr != nil {
			return repoErr(derr, ErrUserNotFound)
		}
		n, derr := tx.Users().CountDuplicates(ctx, tx.DB(), f.username.Value(), f.email.Value(), &id)
		if derr != nil {
			return repoErr(derr, ErrUserNotFound)
		}
		if n > 0 {
			return errs.Mark(user.ErrDuplicate, errs.ErrIntegrity)
		}
		u.Revise(f.username, f.email, f.role, f.hash, now)
		return duplicateUser(repoErr(tx.Users().Update(ctx, tx.DB(), u), ErrUserNotFound))
	})
	if err != nil {
		return err
	}

	uc.auditLog.Record(ctx, audit.UserUpdated(actor, f.username.Value(), now))
	return nil
}

func (uc *userUseCaseImpl) Delete(ctx context.Context, id uuid.UUID, actor audit.Actor) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, derr := tx.Users().FindByID(ctx, tx.DB(), id)
		if derr != nil {
			return repoErr(derr, ErrUserNotFound)
		}
		admins, derr := tx.Users().CountAdmins(ctx, tx.DB())
		if derr != nil {
			return repoErr(derr, ErrUserNotFound)
		}
		if derr = user.EnsureDeletable(actor.ID, id, u.Role(), admins); derr != nil {
			return errs.Mark(derr, errs.ErrIntegrity)
		}
		return repoErr(tx.Users().Delete(ctx, tx.DB(), id), ErrUserNotFound)
	})
	if err != nil {
		return err
	}

	uc.auditLog.Record(ctx, audit.UserDeleted(actor, id, uc.clock.Now()))
	return nil
}
