// Package config centraliza o carregamento de configurações da aplicação.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/paraschopra/newsmadefun/internal/core/domain"
)

type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Snapshot  SnapshotConfig
	News      NewsConfig
	OpenAI    OpenAIConfig
	RateLimit RateLimitConfig
	Cache     CacheConfig
	Sweep     SweepConfig
}

type ServerConfig struct {
	Port string
}

type StorageConfig struct {
	Type  string
	Redis RedisConfig
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type SnapshotConfig struct {
	DBPath string
}

type NewsConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type RateLimitConfig struct {
	Headlines  domain.RateLimitRule
	Generation domain.RateLimitRule
}

type CacheConfig struct {
	DecoyTTL time.Duration
}

type SweepConfig struct {
	Schedule string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	server := ServerConfig{Port: getEnv("SERVER_PORT", "8080")}

	storageType := getEnv("STORAGE_TYPE", "memory")

	redisConfig, err := buildRedisConfig()
	if err != nil {
		return Config{}, err
	}

	rateLimitConfig, err := buildRateLimitConfig()
	if err != nil {
		return Config{}, err
	}

	providerTimeoutSeconds, err := intEnv("PROVIDER_TIMEOUT_SECONDS", 10)
	if err != nil {
		return Config{}, err
	}
	providerTimeout := time.Duration(providerTimeoutSeconds) * time.Second

	decoyTTLHours, err := intEnv("DECOY_CACHE_TTL_HOURS", 24)
	if err != nil {
		return Config{}, err
	}

	// O caminho de geração não tem fallback de configuração: sem a chave o
	// serviço não sobe. Já o caminho de manchetes degrada para o conjunto
	// estático quando a chave falta.
	openAIKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if openAIKey == "" {
		return Config{}, fmt.Errorf("OPENAI_API_KEY is required")
	}

	return Config{
		Server: server,
		Storage: StorageConfig{
			Type:  storageType,
			Redis: redisConfig,
		},
		Snapshot: SnapshotConfig{
			DBPath: getEnv("SNAPSHOT_DB_PATH", "data/headlines.db"),
		},
		News: NewsConfig{
			APIKey:  strings.TrimSpace(os.Getenv("NEWS_API_KEY")),
			BaseURL: getEnv("NEWS_API_BASE_URL", "https://newsapi.org"),
			Timeout: providerTimeout,
		},
		OpenAI: OpenAIConfig{
			APIKey:  openAIKey,
			BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			Timeout: providerTimeout,
		},
		RateLimit: rateLimitConfig,
		Cache: CacheConfig{
			DecoyTTL: time.Duration(decoyTTLHours) * time.Hour,
		},
		Sweep: SweepConfig{
			Schedule: getEnv("SWEEP_SCHEDULE", "0 * * * *"),
		},
	}, nil
}

func buildRedisConfig() (RedisConfig, error) {
	host := getEnv("REDIS_HOST", "localhost")
	port, err := intEnv("REDIS_PORT", 6379)
	if err != nil {
		return RedisConfig{}, err
	}
	db, err := intEnv("REDIS_DB", 0)
	if err != nil {
		return RedisConfig{}, err
	}

	return RedisConfig{
		Host:     host,
		Port:     port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	}, nil
}

func buildRateLimitConfig() (RateLimitConfig, error) {
	headlineRequests, err := intEnv("HEADLINES_RATE_LIMIT", 30)
	if err != nil {
		return RateLimitConfig{}, err
	}
	headlineWindow, err := intEnv("HEADLINES_RATE_WINDOW_SECONDS", 3600)
	if err != nil {
		return RateLimitConfig{}, err
	}
	generationRequests, err := intEnv("GENERATION_RATE_LIMIT", 20)
	if err != nil {
		return RateLimitConfig{}, err
	}
	generationWindow, err := intEnv("GENERATION_RATE_WINDOW_SECONDS", 3600)
	if err != nil {
		return RateLimitConfig{}, err
	}

	if headlineRequests <= 0 || headlineWindow <= 0 || generationRequests <= 0 || generationWindow <= 0 {
		return RateLimitConfig{}, fmt.Errorf("rate limit values must be positive")
	}

	return RateLimitConfig{
		Headlines: domain.RateLimitRule{
			Requests: headlineRequests,
			Window:   time.Duration(headlineWindow) * time.Second,
		},
		Generation: domain.RateLimitRule{
			Requests: generationRequests,
			Window:   time.Duration(generationWindow) * time.Second,
		},
	}, nil
}

func intEnv(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
