package cache

import (
	"context"
	"fmt"
)

// Backend kinds.
const (
	KindMemory = "memory"
	KindRedis  = "redis"
	KindBadger = "badger"
)

// Config selects and configures a backend.
type Config struct {
	Kind   string
	Redis  RedisConfig
	Badger BadgerConfig
}

// Open creates the backend named by cfg.Kind. An empty kind means memory.
func Open(ctx context.Context, cfg Config) (Backend, error) {
	switch cfg.Kind {
	case "", KindMemory:
		return NewMemoryBackend(), nil
	case KindRedis:
		b, err := NewRedisBackend(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return b, nil
	case KindBadger:
		b, err := NewBadgerBackend(cfg.Badger)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Kind)
	}
}
