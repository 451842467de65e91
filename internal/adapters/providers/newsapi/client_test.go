package newsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTopHeadlines(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/top-headlines" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		q := r.URL.Query()
		gotQuery = map[string]string{
			"category": q.Get("category"),
			"pageSize": q.Get("pageSize"),
			"apiKey":   q.Get("apiKey"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "ok",
			"articles": [
				{"source": {"name": "Reuters"}, "title": "Markets climb", "description": "Up day", "url": "https://r.example.com/1"},
				{"source": {}, "title": "Quiet news day", "url": "https://r.example.com/2"}
			]
		}`))
	}))
	defer server.Close()

	client, err := New(Config{APIKey: "key123", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	headlines, err := client.TopHeadlines(context.Background(), 10, "business")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if gotQuery["category"] != "business" || gotQuery["pageSize"] != "10" || gotQuery["apiKey"] != "key123" {
		t.Errorf("unexpected query params: %v", gotQuery)
	}
	if len(headlines) != 2 {
		t.Fatalf("expected 2 headlines, got %d", len(headlines))
	}
	if headlines[0].Source != "Reuters" || headlines[0].Title != "Markets climb" {
		t.Errorf("unexpected first headline: %+v", headlines[0])
	}
	if headlines[0].Category != "business" {
		t.Errorf("expected category business, got %q", headlines[0].Category)
	}
	// Missing fields pass through raw; the service applies defaults.
	if headlines[1].Source != "" || headlines[1].Description != "" {
		t.Errorf("expected raw empty fields, got %+v", headlines[1])
	}
}

func TestTopHeadlines_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited upstream", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := New(Config{APIKey: "key123", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := client.TopHeadlines(context.Background(), 10, "general"); err == nil {
		t.Fatal("expected error on 429 response")
	}
}

func TestTopHeadlines_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client, err := New(Config{APIKey: "key123", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := client.TopHeadlines(context.Background(), 10, "general"); err == nil {
		t.Fatal("expected error on malformed body")
	}
}

func TestNew_RequiresKey(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error without API key")
	}
}
