package readstore

import (
	"context"

	"travel-backoffice/internal/infra"
	sqlc "travel-backoffice/internal/infra/sqlc/generated"
	"travel-backoffice/internal/pkg/pgconv"
	"travel-backoffice/internal/usecase/queries"
)

type AuditLogReadQueries interface {
	ListSystemLogs(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSystemLogsParams) ([]sqlc.SystemLog, error)
	GetSystemCounts(ctx context.Context, db sqlc.DBTX) (sqlc.GetSystemCountsRow, error)
}

// AuditLogReadStore serves both the activity feed and the system counters.
type AuditLogReadStore struct {
	queries AuditLogReadQueries
	db      sqlc.DBTX
}

func NewAuditLogReadStore(queries AuditLogReadQueries, db sqlc.DBTX) *AuditLogReadStore {
	return &AuditLogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AuditLogReadStore) Recent(ctx context.Context, limit int) ([]*queries.AuditLogView, error) {
	rows, err := r.queries.ListSystemLogs(ctx, r.db, sqlc.ListSystemLogsParams{Limit: pgconv.IntToInt32(limit)})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list system logs", err)
	}

	views := make([]*queries.AuditLogView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.AuditLogView{
			ID:          row.ID,
			UserID:      pgconv.UUIDPtrFromPgtype(row.UserID),
			Action:      row.Action,
			Details:     row.ActionDetails,
			PerformedBy: row.PerformedBy,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}

func (r *AuditLogReadStore) Counts(ctx context.Context) (*queries.SystemCounts, error) {
	row, err := r.queries.GetSystemCounts(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get system counts", err)
	}
	return &queries.SystemCounts{
		Invoices: row.Invoices,
		Bookings: row.Bookings,
		Users:    row.Users,
	}, nil
}
