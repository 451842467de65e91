package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"regexp"
	"sync"
	"time"

	"github.com/paraschopra/newsmadefun/internal/core/domain"
	"github.com/paraschopra/newsmadefun/internal/core/ports"
)

const snapshotDateLayout = "2006-01-02"

// sourceSuffixPattern remove o sufixo de atribuição que o provedor anexa ao
// título ("Headline - Reuters").
var sourceSuffixPattern = regexp.MustCompile(`\s*-\s*[^-]*$`)

// HeadlineService busca as manchetes reais do dia. A ordem é snapshot do dia,
// provedor externo, conjunto estático de fallback; o resultado de fallback não
// é persistido para que a próxima requisição tente o provedor de novo.
type HeadlineService struct {
	snapshots ports.SnapshotStore
	provider  ports.HeadlineProvider

	now func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// HeadlineServiceOption ajusta dependências implícitas do serviço, usada nos
// testes para relógio e embaralhamento determinísticos.
type HeadlineServiceOption func(*HeadlineService)

func WithClock(now func() time.Time) HeadlineServiceOption {
	return func(s *HeadlineService) { s.now = now }
}

func WithRand(rng *rand.Rand) HeadlineServiceOption {
	return func(s *HeadlineService) { s.rng = rng }
}

// NewHeadlineService cria o serviço. provider pode ser nil quando não há
// chave de API configurada: o serviço opera só com snapshot e fallback.
func NewHeadlineService(snapshots ports.SnapshotStore, provider ports.HeadlineProvider, opts ...HeadlineServiceOption) (*HeadlineService, error) {
	if snapshots == nil {
		return nil, fmt.Errorf("snapshot store is required")
	}
	s := &HeadlineService{
		snapshots: snapshots,
		provider:  provider,
		now:       time.Now,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// GetHeadlines nunca falha: sempre devolve exatamente count manchetes usáveis
// marcadas com a categoria pedida.
func (s *HeadlineService) GetHeadlines(ctx context.Context, count int, category string) []domain.Headline {
	date := s.now().UTC().Format(snapshotDateLayout)

	pool, err := s.snapshots.GetSnapshot(ctx, date)
	if err != nil && !domain.IsSnapshotMiss(err) {
		// Falha de leitura vira cache miss: seguimos para o provedor.
		log.Printf("snapshot read failed for %s: %v", date, err)
	}
	if len(pool) > 0 {
		return s.assemble(pool, count)
	}

	if s.provider != nil {
		fetched, err := s.provider.TopHeadlines(ctx, count, category)
		if err != nil {
			log.Printf("headline provider failed, serving fallback: %v", err)
		} else if len(fetched) > 0 {
			normalized := make([]domain.Headline, 0, len(fetched))
			for _, h := range fetched {
				normalized = append(normalized, normalizeFetched(h, category))
			}
			if err := s.snapshots.PutSnapshot(ctx, date, normalized); err != nil {
				// A escrita falhou, mas o resultado já está em mãos.
				log.Printf("snapshot write failed for %s: %v", date, err)
			}
			return s.assemble(normalized, count)
		}
	}

	return s.assemble(fallbackHeadlines(category), count)
}

// normalizeFetched aplica defaults defensivos aos campos que o provedor pode
// devolver vazios e limpa o sufixo de fonte do título.
func normalizeFetched(h domain.Headline, category string) domain.Headline {
	title := sourceSuffixPattern.ReplaceAllString(h.Title, "")
	if title == "" {
		title = "Untitled Article"
	}
	if h.Description == "" {
		h.Description = "No description available"
	}
	if h.Source == "" {
		h.Source = "Unknown source"
	}
	h.Title = title
	h.Category = category
	return h
}

// assemble transforma o pool disponível em exatamente count manchetes:
// repete ciclicamente quando falta (com sufixo para evitar títulos
// literalmente duplicados), embaralha e corta.
func (s *HeadlineService) assemble(pool []domain.Headline, count int) []domain.Headline {
	if count <= 0 || len(pool) == 0 {
		return []domain.Headline{}
	}

	out := make([]domain.Headline, 0, count)
	out = append(out, pool...)
	for i := len(pool); len(out) < count; i++ {
		padded := pool[i%len(pool)]
		padded.Title = fmt.Sprintf("%s - %s", padded.Title, s.padSuffix())
		out = append(out, padded)
	}

	s.mu.Lock()
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	s.mu.Unlock()

	return out[:count]
}

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func (s *HeadlineService) padSuffix() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := make([]byte, 5)
	for i := range b {
		b[i] = suffixAlphabet[s.rng.Intn(len(suffixAlphabet))]
	}
	return string(b)
}
