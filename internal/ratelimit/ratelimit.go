package ratelimit

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/sendrec/resources/internal/httputil"
	"golang.org/x/time/rate"
)

const idleTimeout = 10 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter keeps one token bucket per client IP.
type Limiter struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
	now     func() time.Time
}

func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	return &Limiter{
		clients: make(map[string]*client),
		limit:   rate.Limit(requestsPerSecond),
		burst:   burst,
		now:     time.Now,
	}
}

func (l *Limiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	c, ok := l.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// Sweep forgets clients idle for longer than maxIdle.
func (l *Limiter) Sweep(maxIdle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	now := l.now()
	for ip, c := range l.clients {
		if now.Sub(c.lastSeen) > maxIdle {
			delete(l.clients, ip)
			removed++
		}
	}
	return removed
}

func (l *Limiter) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				l.Sweep(idleTimeout)
			}
		}
	}()
}

func (l *Limiter) retryAfter() string {
	if l.limit <= 0 {
		return "60"
	}
	seconds := int(1/float64(l.limit)) + 1
	return strconv.Itoa(seconds)
}

func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.allow(httputil.ClientIP(r)) {
			w.Header().Set("Retry-After", l.retryAfter())
			httputil.WriteError(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}
