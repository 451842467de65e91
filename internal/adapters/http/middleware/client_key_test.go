package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientKey_ResolutionOrder(t *testing.T) {
	tests := []struct {
		name       string
		forwarded  string
		realIP     string
		remoteAddr string
		want       string
	}{
		{"forwarded-for wins", "203.0.113.7, 10.0.0.1", "198.51.100.2", "192.0.2.1:1234", "203.0.113.7"},
		{"real-ip next", "", "198.51.100.2", "192.0.2.1:1234", "198.51.100.2"},
		{"remote addr host", "", "", "192.0.2.1:1234", "192.0.2.1"},
		{"remote addr without port", "", "", "192.0.2.1", "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			handler := ClientKey(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = ClientKeyFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}

			handler.ServeHTTP(httptest.NewRecorder(), req)
			if got != tt.want {
				t.Errorf("expected client key %q, got %q", tt.want, got)
			}
		})
	}
}

func TestClientKeyFromContext_WithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := ClientKeyFromContext(req.Context()); got != "unknown" {
		t.Errorf("expected unknown without middleware, got %q", got)
	}
}
