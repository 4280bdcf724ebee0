package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

const bucketIdleTTL = 10 * time.Minute

// RateLimiter hands out per-client token buckets. Each Limit call gets its
// own bucket set, so a tight limit on one route does not drain another.
type RateLimiter struct {
	mu     sync.Mutex
	scopes []*limitScope
	now    func() time.Time
	stop   chan struct{}
	once   sync.Once
}

type limitScope struct {
	perMinute float64
	mu        sync.Mutex
	buckets   map[string]*bucket
}

type bucket struct {
	tokens   float64
	lastSeen time.Time
}

// NewRateLimiter starts the idle-bucket sweeper. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{now: time.Now, stop: make(chan struct{})}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the sweeper. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit allows maxPerMinute requests per client host, refilled evenly over
// the minute. Ports are ignored so one host shares a bucket.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	scope := &limitScope{perMinute: float64(maxPerMinute), buckets: make(map[string]*bucket)}
	rl.mu.Lock()
	rl.scopes = append(rl.scopes, scope)
	rl.mu.Unlock()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if wait, ok := scope.take(clientIP(r), rl.now()); !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeDetail(w, http.StatusTooManyRequests, "request was throttled")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// take spends one token for key. When none is left it reports how long
// until the next one refills.
func (s *limitScope) take(key string, now time.Time) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	perSecond := s.perMinute / 60
	if perSecond <= 0 {
		return time.Minute, false
	}
	b, ok := s.buckets[key]
	if !ok {
		b = &bucket{tokens: s.perMinute, lastSeen: now}
		s.buckets[key] = b
	}

	b.tokens = math.Min(s.perMinute, b.tokens+now.Sub(b.lastSeen).Seconds()*perSecond)
	b.lastSeen = now

	if b.tokens < 1 {
		return time.Duration((1 - b.tokens) * 60 / s.perMinute * float64(time.Second)), false
	}
	b.tokens--
	return 0, true
}

func (s *limitScope) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, b := range s.buckets {
		if now.Sub(b.lastSeen) > bucketIdleTTL {
			delete(s.buckets, key)
		}
	}
}

func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	scopes := append([]*limitScope(nil), rl.scopes...)
	rl.mu.Unlock()

	now := rl.now()
	for _, s := range scopes {
		s.sweep(now)
	}
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}
