// Package scheduler agenda as varreduras periódicas dos stores em memória
// (TTL do cache de decoys e janelas ociosas do rate limiter).
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
)

// Scheduler roda os jobs de varredura fora do caminho das requisições, com
// um handle parável para shutdown limpo. Os stores continuam varríveis de
// forma síncrona nos testes, sem depender do relógio de parede.
type Scheduler struct {
	cron *cron.Cron
}

// New registra os jobs no schedule informado (formato cron de 5 campos).
func New(schedule string, jobs ...func()) (*Scheduler, error) {
	c := cron.New()
	for _, job := range jobs {
		if _, err := c.AddFunc(schedule, job); err != nil {
			return nil, fmt.Errorf("registering sweep job: %w", err)
		}
	}
	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop interrompe o agendamento e espera os jobs em andamento terminarem.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
