package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	httpHandlers "github.com/paraschopra/newsmadefun/internal/adapters/http/handlers"
	httpMiddleware "github.com/paraschopra/newsmadefun/internal/adapters/http/middleware"
	"github.com/paraschopra/newsmadefun/internal/adapters/providers/newsapi"
	"github.com/paraschopra/newsmadefun/internal/adapters/providers/openai"
	"github.com/paraschopra/newsmadefun/internal/adapters/storage/memory"
	redisstorage "github.com/paraschopra/newsmadefun/internal/adapters/storage/redis"
	"github.com/paraschopra/newsmadefun/internal/adapters/storage/sqlite"
	"github.com/paraschopra/newsmadefun/internal/config"
	"github.com/paraschopra/newsmadefun/internal/core/ports"
	"github.com/paraschopra/newsmadefun/internal/core/services"
	"github.com/paraschopra/newsmadefun/internal/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	counters, closeCounters, err := initCounterStorage(cfg.Storage)
	if err != nil {
		log.Fatalf("failed to init counter storage: %v", err)
	}
	defer closeCounters()

	snapshots, err := sqlite.Open(cfg.Snapshot.DBPath)
	if err != nil {
		log.Fatalf("failed to open snapshot store: %v", err)
	}
	defer func() {
		if err := snapshots.Close(); err != nil {
			log.Printf("failed to close snapshot store: %v", err)
		}
	}()

	limiter, err := services.NewRateLimiterService(counters)
	if err != nil {
		log.Fatalf("failed to create limiter: %v", err)
	}

	var headlineProvider ports.HeadlineProvider
	if cfg.News.APIKey != "" {
		headlineProvider, err = newsapi.New(newsapi.Config{
			APIKey:  cfg.News.APIKey,
			BaseURL: cfg.News.BaseURL,
			Timeout: cfg.News.Timeout,
		})
		if err != nil {
			log.Fatalf("failed to create news provider: %v", err)
		}
	} else {
		log.Println("NEWS_API_KEY not set, headlines will come from the fallback set")
	}

	decoyProvider, err := openai.New(openai.Config{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Model:   cfg.OpenAI.Model,
		Timeout: cfg.OpenAI.Timeout,
	})
	if err != nil {
		log.Fatalf("failed to create decoy provider: %v", err)
	}

	headlineService, err := services.NewHeadlineService(snapshots, headlineProvider)
	if err != nil {
		log.Fatalf("failed to create headline service: %v", err)
	}

	decoyCache := memory.NewExpiringCache[string](cfg.Cache.DecoyTTL)
	decoyService, err := services.NewDecoyGenerationService(decoyCache, limiter, decoyProvider, cfg.RateLimit.Generation)
	if err != nil {
		log.Fatalf("failed to create decoy service: %v", err)
	}

	sweeper, err := scheduler.New(cfg.Sweep.Schedule,
		decoyCache.Sweep,
		func() {
			if err := counters.Sweep(context.Background()); err != nil {
				log.Printf("counter sweep failed: %v", err)
			}
		},
	)
	if err != nil {
		log.Fatalf("failed to create sweep scheduler: %v", err)
	}
	sweeper.Start()

	r := chi.NewRouter()
	r.Use(httpMiddleware.ClientKey)
	r.Method(http.MethodGet, "/api/headlines", httpHandlers.NewHeadlinesHandler(headlineService, limiter, cfg.RateLimit.Headlines))
	r.Method(http.MethodPost, "/api/generate-fake", httpHandlers.NewDecoyHandler(decoyService))
	r.Method(http.MethodGet, "/healthz", httpHandlers.NewHealthHandler(snapshots))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("shutdown signal received")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}

	<-sweeper.Stop().Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}

func initCounterStorage(cfg config.StorageConfig) (ports.CounterStorage, func(), error) {
	switch cfg.Type {
	case "memory":
		return memory.NewCounterStore(), func() {}, nil
	case "redis":
		redisCfg := redisstorage.Config{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}
		storage, err := redisstorage.New(redisCfg)
		if err != nil {
			return nil, nil, err
		}
		return storage, func() {
			if err := storage.Close(); err != nil {
				log.Printf("failed to close redis storage: %v", err)
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
