package ports

import (
	"context"

	"github.com/paraschopra/newsmadefun/internal/core/domain"
)

// SnapshotStore persiste o conjunto de manchetes buscado em cada dia.
// GetSnapshot devolve domain.ErrSnapshotMiss quando não há snapshot para a
// data. PutSnapshot é um upsert: a segunda escrita do mesmo dia substitui a
// primeira por inteiro.
type SnapshotStore interface {
	GetSnapshot(ctx context.Context, date string) ([]domain.Headline, error)
	PutSnapshot(ctx context.Context, date string, headlines []domain.Headline) error
}
