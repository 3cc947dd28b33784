// Package cache memoizes expensive market computations behind a pluggable
// key/value backend with per-entry time-to-live.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/donaldgifford/property-market-engine/internal/metrics"
)

// Backend stores opaque values with a time-to-live. A missing or expired
// key is reported as found=false with a nil error.
type Backend interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}

// Layer is the get-or-compute front of a Backend. Concurrent misses on the
// same key within one process share a single computation.
type Layer struct {
	backend Backend
	group   singleflight.Group
	log     *slog.Logger
}

// Option configures a Layer.
type Option func(*Layer)

// WithLogger sets the logger for cache warnings.
func WithLogger(l *slog.Logger) Option {
	return func(c *Layer) {
		c.log = l
	}
}

// New creates a Layer over the given backend.
func New(b Backend, opts ...Option) *Layer {
	l := &Layer{
		backend: b,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Close releases the backend.
func (l *Layer) Close() error {
	return l.backend.Close()
}

// Key joins a namespace and its parts into a cache key.
func Key(namespace string, parts ...string) string {
	k := namespace
	for _, p := range parts {
		k += ":" + p
	}
	return k
}

// Load returns the cached value for key or computes, stores and returns it.
// Values round-trip through JSON so every caller receives its own copy.
// Backend failures degrade to a recomputation and are only logged; errors
// returned by compute are returned unchanged and nothing is stored.
func Load[T any](
	ctx context.Context,
	l *Layer,
	namespace, key string,
	ttl time.Duration,
	compute func(context.Context) (T, error),
) (T, error) {
	var zero T

	if data, ok := l.lookup(ctx, namespace, key); ok {
		var v T
		if err := json.Unmarshal(data, &v); err == nil {
			metrics.CacheRequestsTotal.WithLabelValues(namespace, "hit").Inc()
			return v, nil
		}
		l.log.Warn("discarding undecodable cache entry", "key", key)
	}
	metrics.CacheRequestsTotal.WithLabelValues(namespace, "miss").Inc()

	shared, err, _ := l.group.Do(key, func() (any, error) {
		v, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", key, err)
		}
		if err := l.backend.Set(ctx, key, data, ttl); err != nil {
			metrics.CacheRequestsTotal.WithLabelValues(namespace, "error").Inc()
			l.log.Warn("cache write failed", "key", key, "error", err)
		}
		return data, nil
	})
	if err != nil {
		return zero, err
	}

	var v T
	if err := json.Unmarshal(shared.([]byte), &v); err != nil {
		return zero, fmt.Errorf("decoding %s: %w", key, err)
	}
	return v, nil
}

func (l *Layer) lookup(ctx context.Context, namespace, key string) ([]byte, bool) {
	data, found, err := l.backend.Get(ctx, key)
	if err != nil {
		metrics.CacheRequestsTotal.WithLabelValues(namespace, "error").Inc()
		l.log.Warn("cache read failed", "key", key, "error", err)
		return nil, false
	}
	return data, found
}
