// Package services implementa a lógica central do jogo: rate limiting,
// busca de manchetes e geração de decoys.
package services

import (
	"context"
	"fmt"
	"log"

	"github.com/paraschopra/newsmadefun/internal/core/domain"
	"github.com/paraschopra/newsmadefun/internal/core/ports"
)

// RateLimiterService implementa janela fixa sobre um CounterStorage.
type RateLimiterService struct {
	storage ports.CounterStorage
}

// NewRateLimiterService cria uma nova instância do serviço.
func NewRateLimiterService(storage ports.CounterStorage) (*RateLimiterService, error) {
	if storage == nil {
		return nil, fmt.Errorf("storage is required")
	}
	return &RateLimiterService{storage: storage}, nil
}

var _ ports.RateLimiter = (*RateLimiterService)(nil)

// Check conta a chamada e decide. A chamada rejeitada também incrementa o
// contador, então a (limite+1)-ésima chamada da janela é a primeira negada.
// Erro de storage não derruba a requisição: a decisão degrada para permitido.
func (s *RateLimiterService) Check(ctx context.Context, key string, rule domain.RateLimitRule) domain.RateLimitResult {
	count, resetAt, err := s.storage.Increment(ctx, key, rule.Window)
	if err != nil {
		log.Printf("rate limiter storage failed for key %s: %v", key, err)
		return domain.RateLimitResult{
			Allowed:   true,
			Limit:     rule.Requests,
			Remaining: rule.Requests,
		}
	}

	remaining := rule.Requests - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return domain.RateLimitResult{
		Allowed:   count <= int64(rule.Requests),
		Limit:     rule.Requests,
		Remaining: remaining,
		ResetAt:   resetAt,
	}
}
