package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/paraschopra/newsmadefun/internal/core/domain"
	"github.com/paraschopra/newsmadefun/internal/core/ports"
)

// DecoyGenerationService produz a manchete falsa de cada rodada. O caminho
// feliz chama o provedor de geração; cache e limiter ficam na frente dele
// porque cada chamada externa custa cota e dinheiro.
type DecoyGenerationService struct {
	cache    ports.DecoyCache
	limiter  ports.RateLimiter
	provider ports.DecoyProvider
	rule     domain.RateLimitRule
}

func NewDecoyGenerationService(cache ports.DecoyCache, limiter ports.RateLimiter, provider ports.DecoyProvider, rule domain.RateLimitRule) (*DecoyGenerationService, error) {
	if cache == nil {
		return nil, fmt.Errorf("decoy cache is required")
	}
	if limiter == nil {
		return nil, fmt.Errorf("rate limiter is required")
	}
	if provider == nil {
		return nil, fmt.Errorf("decoy provider is required")
	}
	if rule.Requests <= 0 || rule.Window <= 0 {
		return nil, fmt.Errorf("generation rate limit rule must have positive values")
	}
	return &DecoyGenerationService{cache: cache, limiter: limiter, provider: provider, rule: rule}, nil
}

// GetDecoy nunca falha: toda rota de erro degrada para o gerador de regras.
// Ordem: cache do decoy (de graça, não consome cota), depois limiter, depois
// provedor. Fallbacks também entram no cache para que a repetição da mesma
// manchete dentro do TTL não volte a consumir cota.
func (s *DecoyGenerationService) GetDecoy(ctx context.Context, realHeadline, clientKey string) domain.Decoy {
	cacheKey := domain.NormalizeHeadline(realHeadline)

	if cached, ok := s.cache.Get(cacheKey); ok {
		return domain.Decoy{Headline: cached}
	}

	result := s.limiter.Check(ctx, "generation_"+clientKey, s.rule)
	if !result.Allowed {
		fallback := ruleBasedDecoy(realHeadline)
		s.cache.Put(cacheKey, fallback)
		return domain.Decoy{Headline: fallback, Throttled: true, RateLimit: &result}
	}

	generated, err := s.provider.GenerateDecoy(ctx, realHeadline)
	if err != nil {
		log.Printf("decoy provider failed, falling back to rule engine: %v", err)
		fallback := ruleBasedDecoy(realHeadline)
		s.cache.Put(cacheKey, fallback)
		return domain.Decoy{Headline: fallback, RateLimit: &result}
	}

	generated = strings.TrimSpace(generated)
	if generated == "" || generated == realHeadline {
		// O provedor respondeu, mas com algo inutilizável como decoy.
		fallback := ruleBasedDecoy(realHeadline)
		s.cache.Put(cacheKey, fallback)
		return domain.Decoy{Headline: fallback, RateLimit: &result}
	}

	s.cache.Put(cacheKey, generated)
	return domain.Decoy{Headline: generated, RateLimit: &result}
}
