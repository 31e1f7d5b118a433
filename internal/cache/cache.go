// Package cache provides the TTL key-value layer used by the roadmap read
// path. Values are stored as JSON documents; expiration is enforced by the
// backend and an absent key on lookup is the staleness signal.
package cache

import (
	"context"
	"log/slog"
	"time"
)

// Cache is the contract consumed by services. Implementations must be safe
// for concurrent use.
type Cache interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// Get decodes the cached document into dest and reports whether the key
	// was present and fresh.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// BestEffort wraps a Cache so that backend failures surface as misses and
// no-ops instead of errors. The cache is a performance layer only; it must
// never turn a working request into a failed one. Failures are logged.
type BestEffort struct {
	inner  Cache
	logger *slog.Logger
}

var _ Cache = (*BestEffort)(nil)

func NewBestEffort(inner Cache, logger *slog.Logger) *BestEffort {
	if logger == nil {
		logger = slog.Default()
	}
	return &BestEffort{inner: inner, logger: logger}
}

func (b *BestEffort) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if err := b.inner.Set(ctx, key, value, ttl); err != nil {
		b.logger.Warn("cache set failed", slog.String("key", key), slog.Any("err", err))
	}
	return nil
}

func (b *BestEffort) Get(ctx context.Context, key string, dest any) (bool, error) {
	ok, err := b.inner.Get(ctx, key, dest)
	if err != nil {
		b.logger.Warn("cache get failed", slog.String("key", key), slog.Any("err", err))
		return false, nil
	}
	return ok, nil
}

func (b *BestEffort) Delete(ctx context.Context, key string) error {
	if err := b.inner.Delete(ctx, key); err != nil {
		b.logger.Warn("cache delete failed", slog.String("key", key), slog.Any("err", err))
	}
	return nil
}

func (b *BestEffort) Exists(ctx context.Context, key string) (bool, error) {
	ok, err := b.inner.Exists(ctx, key)
	if err != nil {
		b.logger.Warn("cache exists failed", slog.String("key", key), slog.Any("err", err))
		return false, nil
	}
	return ok, nil
}
