package ports

import (
	"context"

	"github.com/paraschopra/newsmadefun/internal/core/domain"
)

// HeadlineProvider busca manchetes reais no provedor externo.
type HeadlineProvider interface {
	TopHeadlines(ctx context.Context, count int, category string) ([]domain.Headline, error)
}

// DecoyProvider gera uma manchete falsa plausível a partir de uma real.
type DecoyProvider interface {
	GenerateDecoy(ctx context.Context, realHeadline string) (string, error)
}
