// Package ports define contratos que conectam o domínio a implementações externas.
package ports

import (
	"context"
	"time"
)

// CounterStorage guarda os contadores de janela fixa do rate limiter.
// Increment cria a janela na primeira chamada da chave (ou quando a anterior
// expirou), incrementa o contador e devolve o valor já incrementado junto com
// o instante em que a janela reseta. Incremento e leitura são um passo
// atômico por chave.
type CounterStorage interface {
	Increment(ctx context.Context, key string, window time.Duration) (count int64, resetAt time.Time, err error)
	// Sweep remove janelas já expiradas. Afeta apenas memória, nunca o
	// resultado de Increment.
	Sweep(ctx context.Context) error
}
