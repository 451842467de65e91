// Package newsapi implementa o provedor de manchetes reais sobre a API do
// NewsAPI (top-headlines).
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/paraschopra/newsmadefun/internal/core/domain"
	"github.com/paraschopra/newsmadefun/internal/core/ports"
)

const defaultBaseURL = "https://newsapi.org"

type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

var _ ports.HeadlineProvider = (*Client)(nil)

type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("news API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Schema explícito da resposta, com defaults aplicados pelo chamador para os
// campos que o provedor costuma devolver nulos.
type topHeadlinesResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
	} `json:"articles"`
}

func (c *Client) TopHeadlines(ctx context.Context, count int, category string) ([]domain.Headline, error) {
	params := url.Values{}
	params.Set("country", "us")
	params.Set("category", category)
	params.Set("pageSize", strconv.Itoa(count))
	params.Set("apiKey", c.apiKey)

	endpoint := c.baseURL + "/v2/top-headlines?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news API error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("news API %d: %s", resp.StatusCode, string(b))
	}

	var tr topHeadlinesResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("decoding news API response: %w", err)
	}

	headlines := make([]domain.Headline, 0, len(tr.Articles))
	for _, a := range tr.Articles {
		headlines = append(headlines, domain.Headline{
			Title:       a.Title,
			Description: a.Description,
			Source:      a.Source.Name,
			URL:         a.URL,
			Category:    category,
		})
	}
	return headlines, nil
}
