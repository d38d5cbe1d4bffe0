// Package redisstore implementa session.Provider sobre Redis.
// Cada sesión es un hash "session:<id>" con TTL deslizante.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/carwash-api/internal/application/session"
)

const keyPrefix = "session:"

var _ session.Provider = (*Provider)(nil)

// Provider abre sesiones respaldadas por un cliente go-redis.
type Provider struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewClient crea y valida la conexión a Redis.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: parse URL: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	return rdb, nil
}

// NewProvider construye el provider. ttl <= 0 deja las sesiones sin vencimiento.
func NewProvider(rdb redis.Cmdable, ttl time.Duration) *Provider {
	return &Provider{rdb: rdb, ttl: ttl}
}

// Open devuelve la vista de una sesión.
func (p *Provider) Open(sessionID string) session.Store {
	return &store{rdb: p.rdb, key: keyPrefix + sessionID, ttl: p.ttl}
}

type store struct {
	rdb redis.Cmdable
	key string
	ttl time.Duration
}

func (s *store) Get(ctx context.Context, field string) (string, error) {
	v, err := s.rdb.HGet(ctx, s.key, field).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis: hget %s: %w", field, err)
	}
	return v, nil
}

func (s *store) Set(ctx context.Context, field, value string) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, s.key, field, value)
		if s.ttl > 0 {
			pipe.Expire(ctx, s.key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis: hset %s: %w", field, err)
	}
	return nil
}

// Clear elimina el hash con un único DEL: ningún lector observa un borrado parcial.
func (s *store) Clear(ctx context.Context) error {
	if err := s.rdb.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis: del: %w", err)
	}
	return nil
}
