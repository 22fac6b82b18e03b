package shared

import (
	"context"
	"time"

	"travel-backoffice/internal/domain/audit"
	"travel-backoffice/internal/pkg/errs"
)

var ErrCacheMiss = errs.New("cache miss")

// AuditLog records entries off the request path. Failures are logged by the
// implementation and never reach the caller.
type AuditLog interface {
	Record(ctx context.Context, e audit.Entry)
}

// Cache stores JSON-encodable values by key.
type Cache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	DeletePattern(ctx context.Context, pattern string) error
}

const (
	CacheKeySettings     = "settings:all"
	CacheKeyReportPrefix = "report:"
)
