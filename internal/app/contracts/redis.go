package contracts

import (
	"context"
	"time"
)

// RedisRepository stores JSON documents and opaque tokens under string keys.
type RedisRepository interface {
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// GetJSON decodes the value at key into dest and reports whether the key existed.
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetIfAbsent(ctx context.Context, key, token string, ttl time.Duration) (bool, error)
	// DeleteIfEquals removes key only while it still holds token.
	DeleteIfEquals(ctx context.Context, key, token string) (bool, error)
	Delete(ctx context.Context, key string) error
}
