package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func limitedRouter(limit int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(limit, window))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestRateLimit_BudgetAndHeaders(t *testing.T) {
	r := limitedRouter(3, time.Minute)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, w.Code)
		}
		if got := w.Header().Get("X-RateLimit-Limit"); got != "3" {
			t.Errorf("X-RateLimit-Limit = %q, want 3", got)
		}
	}

	// Fourth request exceeds the budget
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
	if got := w.Header().Get("Retry-After"); got != "60" {
		t.Errorf("Retry-After = %q, want 60", got)
	}
	if got := w.Header().Get("X-RateLimit-Remaining"); got != "0" {
		t.Errorf("X-RateLimit-Remaining = %q, want 0", got)
	}
}

func TestLimiter_WindowExpiry(t *testing.T) {
	l := newLimiter(1, time.Minute)
	now := time.Now()

	if _, ok := l.take("10.0.0.1", now); !ok {
		t.Fatal("first request should pass")
	}
	if _, ok := l.take("10.0.0.1", now.Add(time.Second)); ok {
		t.Fatal("second request inside the window should be rejected")
	}
	// The same client gets fresh budget once the window has passed
	if _, ok := l.take("10.0.0.1", now.Add(2*time.Minute)); !ok {
		t.Fatal("request after window expiry should pass")
	}
}

func TestLimiter_PerClientBudgets(t *testing.T) {
	l := newLimiter(1, time.Minute)
	now := time.Now()

	l.take("10.0.0.1", now)
	if _, ok := l.take("10.0.0.2", now); !ok {
		t.Error("a different client must not share the first client's budget")
	}
}
