package repository

import (
	"context"

	"travel-backoffice/internal/domain/audit"
	"travel-backoffice/internal/infra"
	sqlc "travel-backoffice/internal/infra/sqlc/generated"
	"travel-backoffice/internal/pkg/pgconv"
)

type AuditLogQueries interface {
	InsertSystemLog(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSystemLogParams) error
}

type AuditLogRepository struct {
	queries AuditLogQueries
	db      sqlc.DBTX
}

func NewAuditLogRepository(queries AuditLogQueries, db sqlc.DBTX) *AuditLogRepository {
	return &AuditLogRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AuditLogRepository) Insert(ctx context.Context, e audit.Entry) error {
	performedBy := e.PerformedBy
	if performedBy == "" {
		performedBy = audit.SystemActorName
	}
	err := r.queries.InsertSystemLog(ctx, r.db, sqlc.InsertSystemLogParams{
		UserID:        pgconv.UUIDPtrToPgtype(e.UserID),
		Action:        string(e.Action),
		ActionDetails: e.Details,
		PerformedBy:   performedBy,
		CreatedAt:     pgconv.TimeToPgtype(e.OccurredAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to insert system log", err)
	}
	return nil
}
