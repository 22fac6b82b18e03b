package commands

import (
	"context"
	"log/slog"

	"travel-backoffice/internal/domain/audit"
	"travel-backoffice/internal/domain/setting"
	"travel-backoffice/internal/pkg/clock"
	"travel-backoffice/internal/pkg/errs"
	"travel-backoffice/internal/usecase/shared"
)

type SettingsCommands interface {
	Update(ctx context.Context, updates map[setting.Key]string, actor audit.Actor) error
}

type settingsUseCaseImpl struct {
	uow      shared.UnitOfWork
	auditLog shared.AuditLog
	cache    shared.Cache
	clock    clock.Clock
}

func NewSettingsUseCase(uow shared.UnitOfWork, auditLog shared.AuditLog, cache shared.Cache, clk clock.Clock) SettingsCommands {
	return &settingsUseCaseImpl{uow: uow, auditLog: auditLog, cache: cache, clock: clk}
}

// Update validates the whole batch before writing any of it.
func (uc *settingsUseCaseImpl) Update(ctx context.Context, updates map[setting.Key]string, actor audit.Actor) error {
	values, err := setting.ValidateUpdate(updates)
	if err != nil {
		return invalid(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Settings().Upsert(ctx, tx.DB(), values); derr != nil {
			return errs.Mark(derr, errs.ErrPersistence)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := uc.cache.DeletePattern(ctx, shared.CacheKeySettings); err != nil {
		slog.WarnContext(ctx, "Settings cache invalidation failed", "error", err.Error())
	}
	uc.auditLog.Record(ctx, audit.SettingsUpdated(actor, uc.clock.Now()))
	return nil
}
