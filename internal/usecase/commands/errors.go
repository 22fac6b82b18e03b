package commands

import (
	"context"
	"log/slog"

	"travel-backoffice/internal/infra"
	"travel-backoffice/internal/pkg/errs"
	"travel-backoffice/internal/usecase/shared"
)

var (
	ErrBookingNotFound = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
	ErrInvoiceNotFound = errs.Mark(errs.New("invoice not found"), errs.ErrNotFound)
	ErrUserNotFound    = errs.Mark(errs.New("user not found"), errs.ErrNotFound)
	ErrUnknownBooking  = errs.Mark(errs.New("referenced booking does not exist"), errs.ErrValidation)
)

// repoErr maps a repository failure onto the usecase error taxonomy.
func repoErr(err, notFound error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return notFound
	case infra.IsKind(err, infra.KindDuplicateKey), infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, errs.ErrIntegrity)
	default:
		return errs.Mark(err, errs.ErrPersistence)
	}
}

func invalid(err error) error {
	return errs.Mark(err, errs.ErrValidation)
}

func invalidateReports(ctx context.Context, cache shared.Cache) {
	if err := cache.DeletePattern(ctx, shared.CacheKeyReportPrefix+"*"); err != nil {
		slog.WarnContext(ctx, "Report cache invalidation failed", "error", err.Error())
	}
}
