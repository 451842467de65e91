package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/paraschopra/newsmadefun/internal/adapters/http/middleware"
	"github.com/paraschopra/newsmadefun/internal/core/domain"
	"github.com/paraschopra/newsmadefun/internal/core/ports"
)

const defaultHeadlineCount = 50

// HeadlineGetter é o recorte do serviço de manchetes que o handler usa.
type HeadlineGetter interface {
	GetHeadlines(ctx context.Context, count int, category string) []domain.Headline
}

// HeadlinesHandler atende GET /api/headlines.
type HeadlinesHandler struct {
	service HeadlineGetter
	limiter ports.RateLimiter
	rule    domain.RateLimitRule
}

func NewHeadlinesHandler(service HeadlineGetter, limiter ports.RateLimiter, rule domain.RateLimitRule) *HeadlinesHandler {
	return &HeadlinesHandler{service: service, limiter: limiter, rule: rule}
}

func (h *HeadlinesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Validação vem antes de qualquer trabalho de cache ou provedor.
	category := r.URL.Query().Get("category")
	if category == "" {
		category = "general"
	}
	if !domain.ValidCategory(category) {
		writeError(w, http.StatusBadRequest, "Invalid category")
		return
	}

	count := defaultHeadlineCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid count")
			return
		}
		count = parsed
	}

	clientKey := middleware.ClientKeyFromContext(r.Context())
	result := h.limiter.Check(r.Context(), "headlines_"+clientKey, h.rule)
	setRateLimitHeaders(w, result)

	if !result.Allowed {
		setRetryAfter(w, result.ResetAt)
		writeJSON(w, http.StatusTooManyRequests, map[string]string{
			"error":   "Rate limit exceeded",
			"resetAt": result.ResetAt.UTC().Format(time.RFC3339),
		})
		return
	}

	writeJSON(w, http.StatusOK, h.service.GetHeadlines(r.Context(), count, category))
}
