package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/paraschopra/newsmadefun/internal/adapters/http/middleware"
	"github.com/paraschopra/newsmadefun/internal/core/domain"
)

// DecoyGetter é o recorte do serviço de geração que o handler usa.
type DecoyGetter interface {
	GetDecoy(ctx context.Context, realHeadline, clientKey string) domain.Decoy
}

// DecoyHandler atende POST /api/generate-fake.
type DecoyHandler struct {
	service DecoyGetter
}

func NewDecoyHandler(service DecoyGetter) *DecoyHandler {
	return &DecoyHandler{service: service}
}

type generateRequest struct {
	RealHeadline string `json:"realHeadline"`
}

func (h *DecoyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.RealHeadline) == "" {
		writeError(w, http.StatusBadRequest, "Missing realHeadline in request body")
		return
	}

	clientKey := middleware.ClientKeyFromContext(r.Context())
	decoy := h.service.GetDecoy(r.Context(), req.RealHeadline, clientKey)

	if decoy.RateLimit != nil {
		setRateLimitHeaders(w, *decoy.RateLimit)
	}

	// Mesmo estourando a cota a resposta carrega um decoy usável: a UI
	// nunca pode ficar bloqueada.
	if decoy.Throttled {
		setRetryAfter(w, decoy.RateLimit.ResetAt)
		writeJSON(w, http.StatusTooManyRequests, map[string]string{
			"error":        "Rate limit exceeded",
			"resetAt":      decoy.RateLimit.ResetAt.UTC().Format(time.RFC3339),
			"fakeHeadline": decoy.Headline,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"fakeHeadline": decoy.Headline})
}
