package cache

import (
	"context"
	"time"

	"travel-backoffice/internal/usecase/shared"
)

// Noop always misses. It stands in when no redis address is configured.
type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) Get(context.Context, string, any) error { return shared.ErrCacheMiss }

func (Noop) Set(context.Context, string, any, time.Duration) error { return nil }

func (Noop) DeletePattern(context.Context, string) error { return nil }
