package domain

import "time"

// RateLimitRule descreve uma janela fixa: quantas requisições cabem em cada
// janela de tempo.
type RateLimitRule struct {
	Requests int
	Window   time.Duration
}

// RateLimitResult é a decisão de uma checagem. A chamada que estoura o limite
// também é contada: a (limite+1)-ésima chamada dentro da janela é a primeira
// rejeitada.
type RateLimitResult struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Decoy é o resultado da geração de uma manchete falsa. RateLimit fica nil
// quando o limiter nem foi consultado (hit no cache).
type Decoy struct {
	Headline  string
	Throttled bool
	RateLimit *RateLimitResult
}
