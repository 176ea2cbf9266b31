package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/fares-backend-go/pkg/response"
)

// limiter counts requests per client over a sliding window. Ingestion and
// training starts are cheap to request and expensive to run, so the whole
// /api/v1 group sits behind one per-IP budget.
type limiter struct {
	mu     sync.Mutex
	seen   map[string][]time.Time
	limit  int
	window time.Duration
}

func newLimiter(limit int, window time.Duration) *limiter {
	l := &limiter{
		seen:   make(map[string][]time.Time),
		limit:  limit,
		window: window,
	}
	go l.prune()
	return l
}

// take records a request for ip and reports how much budget remains.
// ok is false when the budget was already spent.
func (l *limiter) take(ip string, now time.Time) (remaining int, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var live []time.Time
	for _, ts := range l.seen[ip] {
		if now.Sub(ts) < l.window {
			live = append(live, ts)
		}
	}

	if len(live) >= l.limit {
		l.seen[ip] = live
		return 0, false
	}

	live = append(live, now)
	l.seen[ip] = live
	return l.limit - len(live), true
}

// prune drops clients whose entire window has expired
func (l *limiter) prune() {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		now := time.Now()
		for ip, times := range l.seen {
			if len(times) == 0 || now.Sub(times[len(times)-1]) >= l.window {
				delete(l.seen, ip)
			}
		}
		l.mu.Unlock()
	}
}

// RateLimit limits each client IP to limit requests per window
func RateLimit(limit int, window time.Duration) gin.HandlerFunc {
	l := newLimiter(limit, window)

	return func(c *gin.Context) {
		remaining, ok := l.take(c.ClientIP(), time.Now())

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !ok {
			c.Header("Retry-After", strconv.Itoa(int(window.Seconds())))
			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded")
			c.Abort()
			return
		}

		c.Next()
	}
}
