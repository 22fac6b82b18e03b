package queries

import (
	"context"

	"travel-backoffice/internal/pkg/errs"
)

const (
	DefaultAuditLimit   = 20
	MaxAuditLimit       = 100
	systemRecentEntries = 10
)

type AuditLogReadStore interface {
	Recent(ctx context.Context, limit int) ([]*AuditLogView, error)
}

type SystemReadStore interface {
	Counts(ctx context.Context) (*SystemCounts, error)
}

type AuditQueries interface {
	Recent(ctx context.Context, limit int) ([]*AuditLogView, error)
	SystemInfo(ctx context.Context) (*SystemInfo, error)
}

type auditQueriesImpl struct {
	logs   AuditLogReadStore
	system SystemReadStore
}

func NewAuditQueries(logs AuditLogReadStore, system SystemReadStore) AuditQueries {
	return &auditQueriesImpl{logs: logs, system: system}
}

// Recent clamps limit into 1..MaxAuditLimit, zero meaning DefaultAuditLimit.
func (q *auditQueriesImpl) Recent(ctx context.Context, limit int) ([]*AuditLogView, error) {
	switch {
	case limit <= 0:
		limit = DefaultAuditLimit
	case limit > MaxAuditLimit:
		limit = MaxAuditLimit
	}
	entries, err := q.logs.Recent(ctx, limit)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistence)
	}
	if entries == nil {
		entries = []*AuditLogView{}
	}
	return entries, nil
}

func (q *auditQueriesImpl) SystemInfo(ctx context.Context) (*SystemInfo, error) {
	counts, err := q.system.Counts(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistence)
	}
	recent, err := q.Recent(ctx, systemRecentEntries)
	if err != nil {
		return nil, err
	}
	return &SystemInfo{Counts: *counts, RecentActivity: recent}, nil
}
