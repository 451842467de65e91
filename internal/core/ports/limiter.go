package ports

import (
	"context"

	"github.com/paraschopra/newsmadefun/internal/core/domain"
)

// RateLimiter decide se uma chamada cabe na cota da chave. Check é total:
// nunca falha para entradas válidas, quem decide o que fazer com a rejeição
// é o chamador.
type RateLimiter interface {
	Check(ctx context.Context, key string, rule domain.RateLimitRule) domain.RateLimitResult
}
