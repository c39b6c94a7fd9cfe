package api

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	httperrors "dptravels/internal/errors"
)

// rateLimiter is a fixed-window per-key request counter. Within a window a
// key gets at most max requests; the count resets when the window rolls over.
type rateLimiter struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
	max     int
	window  time.Duration
}

type windowEntry struct {
	count   int
	resetAt time.Time
}

func newRateLimiter(max int, window time.Duration) *rateLimiter {
	rl := &rateLimiter{
		entries: make(map[string]*windowEntry),
		max:     max,
		window:  window,
	}
	go rl.cleanup()
	return rl
}

// allow counts one request for key and reports whether it is within budget,
// plus the time the window resets.
func (rl *rateLimiter) allow(key string) (bool, time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	e, ok := rl.entries[key]
	if !ok || now.After(e.resetAt) {
		e = &windowEntry{resetAt: now.Add(rl.window)}
		rl.entries[key] = e
	}
	e.count++
	return e.count <= rl.max, e.resetAt
}

// cleanup drops expired windows so the map does not grow with one entry per
// IP ever seen.
func (rl *rateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		rl.mu.Lock()
		for key, e := range rl.entries {
			if now.After(e.resetAt) {
				delete(rl.entries, key)
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimitMiddleware limits each client IP to max requests per window,
// answering excess requests with 429 and a Retry-After header.
func RateLimitMiddleware(max int, window time.Duration) func(http.Handler) http.Handler {
	rl := newRateLimiter(max, window)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, resetAt := rl.allow(clientIP(r))
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(time.Until(resetAt).Seconds())+1))
				writeError(w, httperrors.NewHTTPError(http.StatusTooManyRequests, "Too many requests. Please try again later."))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP resolves the client address behind common reverse-proxy headers,
// falling back to the socket address.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		for _, part := range strings.Split(forwarded, ",") {
			if ip := net.ParseIP(strings.TrimSpace(part)); ip != nil {
				return ip.String()
			}
		}
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		if ip := net.ParseIP(strings.TrimSpace(real)); ip != nil {
			return ip.String()
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
