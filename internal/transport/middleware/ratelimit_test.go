package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/macrolog/macrolog-backend/internal/config"
)

func TestRateLimiter_Limit(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{Enabled: true, RPS: 1, Burst: 2}, time.Minute)
	defer rl.Stop()

	handler := rl.Limit()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	// Burst of 2 is allowed, third request is rejected.
	if got := do("10.0.0.1:1234"); got != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", got)
	}
	if got := do("10.0.0.1:1234"); got != http.StatusOK {
		t.Fatalf("second request: expected 200, got %d", got)
	}
	if got := do("10.0.0.1:1234"); got != http.StatusTooManyRequests {
		t.Fatalf("third request: expected 429, got %d", got)
	}

	// A different IP has its own bucket.
	if got := do("10.0.0.2:1234"); got != http.StatusOK {
		t.Fatalf("other client: expected 200, got %d", got)
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{Enabled: false, RPS: 1, Burst: 1}, time.Minute)
	defer rl.Stop()

	handler := rl.Limit()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for range 10 {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.3:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("disabled limiter should never reject, got %d", rec.Code)
		}
	}
}
