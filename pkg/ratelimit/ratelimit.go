package ratelimit

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Limiter implements fixed-window rate limiting keyed by client address.
// Windows live in memory; stale ones are pruned as new requests arrive.
type Limiter struct {
	window time.Duration
	max    int

	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count   int
	resetAt time.Time
}

// New creates a limiter allowing max requests per key per window.
func New(windowDuration time.Duration, max int) *Limiter {
	return &Limiter{
		window:  windowDuration,
		max:     max,
		windows: make(map[string]*window),
	}
}

// Allow reports whether a request for key fits in the current window.
func (l *Limiter) Allow(key string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || now.After(w.resetAt) {
		l.windows[key] = &window{count: 1, resetAt: now.Add(l.window)}
		l.prune(now)
		return true
	}

	if w.count >= l.max {
		return false
	}
	w.count++
	return true
}

// prune drops expired windows. Caller holds the lock.
func (l *Limiter) prune(now time.Time) {
	for key, w := range l.windows {
		if now.After(w.resetAt) {
			delete(l.windows, key)
		}
	}
}

// Middleware rejects requests over the limit with a 429 and a fixed message.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(clientIP(c.Request)) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests, please try again later.",
			})
			return
		}
		c.Next()
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}
