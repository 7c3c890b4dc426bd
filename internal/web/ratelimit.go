package web

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/JonMunkholm/CommunityDirectory/internal/core"
)

// ipLimiter keeps one token bucket per client IP. Buckets idle longer than
// the cache TTL are evicted by the go-cache janitor.
type ipLimiter struct {
	mu       sync.Mutex
	visitors *gocache.Cache
	limit    rate.Limit
	burst    int
}

// newIPLimiter allows perMinute sustained requests with bursts of burst.
func newIPLimiter(perMinute, burst int, idle time.Duration) *ipLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &ipLimiter{
		visitors: gocache.New(idle, 2*idle),
		limit:    rate.Limit(float64(perMinute) / 60),
		burst:    burst,
	}
}

// get returns the bucket for ip, creating it on first sight. Every access
// refreshes the entry's expiry.
func (l *ipLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if v, ok := l.visitors.Get(ip); ok {
		lim := v.(*rate.Limiter)
		l.visitors.SetDefault(ip, lim)
		return lim
	}

	lim := rate.NewLimiter(l.limit, l.burst)
	l.visitors.SetDefault(ip, lim)
	return lim
}

// reserve reports whether ip may proceed now, and if not how long it
// should wait.
func (l *ipLimiter) reserve(ip string) (bool, time.Duration) {
	res := l.get(ip).Reserve()
	if !res.OK() {
		return false, time.Minute
	}
	if d := res.Delay(); d > 0 {
		res.Cancel()
		return false, d
	}
	return true, 0
}

// middleware rejects clients over their budget with 429 and Retry-After.
func (l *ipLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, wait := l.reserve(clientIP(r))
		if !ok {
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			respondError(w, r, core.ErrRateLimited, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP is the host part of RemoteAddr, which TrustedRealIP has already
// rewritten for requests from trusted proxies.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
