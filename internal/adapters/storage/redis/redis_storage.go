// Package redis disponibiliza a implementação do storage de contadores
// baseada em Redis, para quem quiser compartilhar cota entre réplicas.
package redis

import (
	"context"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/paraschopra/newsmadefun/internal/core/ports"
)

type Storage struct {
	client *redis.Client
}

var _ ports.CounterStorage = (*Storage)(nil)

type Config struct {
	Addr     string
	Password string
	DB       int
}

func New(cfg Config) (*Storage, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Storage{client: client}, nil
}

func (s *Storage) Close() error {
	return s.client.Close()
}

// Increment incrementa o contador da chave e fixa a expiração apenas na
// primeira chamada da janela (ExpireNX), preservando a semântica de janela
// fixa: o TTL restante diz quando a janela reseta.
func (s *Storage) Increment(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	pipe := s.client.TxPipeline()
	counter := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	ttl := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, err
	}

	remaining := ttl.Val()
	if remaining < 0 {
		remaining = window
	}
	return counter.Val(), time.Now().Add(remaining), nil
}

// Sweep é no-op: o próprio Redis expira as chaves pelo TTL.
func (s *Storage) Sweep(context.Context) error {
	return nil
}
