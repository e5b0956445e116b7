package httpx

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/campfirehq/identity/pkg/slogx"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines a token-bucket profile.
type RateLimitConfig struct {
	// RequestsPerWindow is the sustained number of requests allowed per Window.
	RequestsPerWindow int
	// Window is the time window the sustained rate is computed over.
	Window time.Duration
	// Burst is the bucket size, i.e. how many requests may arrive at once.
	Burst int
}

// Profiles for the different endpoint classes. Each can be overridden via
// RATELIMIT_{STRICT,MODERATE,LENIENT}_{REQUESTS,WINDOW_SEC,BURST} env vars,
// which the e2e suite uses to avoid tripping the production limits.
var (
	// StrictLimit guards credential endpoints against brute force.
	StrictLimit = RateLimitConfig{RequestsPerWindow: 5, Window: time.Minute, Burst: 5}

	// ModerateLimit suits authenticated per-user operations.
	ModerateLimit = RateLimitConfig{RequestsPerWindow: 20, Window: time.Minute, Burst: 20}

	// LenientLimit suits read-heavy or monitoring traffic.
	LenientLimit = RateLimitConfig{RequestsPerWindow: 100, Window: time.Minute, Burst: 100}
)

func init() {
	StrictLimit = ParseRateLimitFromEnv("STRICT", StrictLimit)
	ModerateLimit = ParseRateLimitFromEnv("MODERATE", ModerateLimit)
	LenientLimit = ParseRateLimitFromEnv("LENIENT", LenientLimit)
}

// ParseRateLimitFromEnv overlays RATELIMIT_{prefix}_* env vars onto defaults.
func ParseRateLimitFromEnv(prefix string, defaults RateLimitConfig) RateLimitConfig {
	cfg := defaults

	if val := os.Getenv("RATELIMIT_" + prefix + "_REQUESTS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			cfg.RequestsPerWindow = n
		}
	}
	if val := os.Getenv("RATELIMIT_" + prefix + "_WINDOW_SEC"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			cfg.Window = time.Duration(n) * time.Second
		}
	}
	if val := os.Getenv("RATELIMIT_" + prefix + "_BURST"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			cfg.Burst = n
		}
	}

	return cfg
}

// KeyExtractor derives the bucket key for a request (IP, user ID, ...).
type KeyExtractor func(*http.Request) string

// IPKeyExtractor resolves the client IP, honouring X-Forwarded-For and
// X-Real-IP for proxied requests.
func IPKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first, _, ok := strings.Cut(xff, ","); ok || first != "" {
			return strings.TrimSpace(first)
		}
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// UserIDKeyExtractor keys on the authenticated user, or "" when anonymous.
func UserIDKeyExtractor(r *http.Request) string {
	return UserIDFromContext(r.Context())
}

// CompositeKeyExtractor joins several extractors with sep, skipping empties.
func CompositeKeyExtractor(sep string, extractors ...KeyExtractor) KeyExtractor {
	return func(r *http.Request) string {
		var parts []string
		for _, extract := range extractors {
			if key := extract(r); key != "" {
				parts = append(parts, key)
			}
		}
		return strings.Join(parts, sep)
	}
}

// bucketSet lazily creates one rate.Limiter per key and sheds idle ones.
type bucketSet struct {
	limiters sync.Map // map[string]*rate.Limiter
	rate     rate.Limit
	burst    int

	mu          sync.Mutex
	lastCleanup time.Time
}

func (b *bucketSet) get(key string) *rate.Limiter {
	if l, ok := b.limiters.Load(key); ok {
		return l.(*rate.Limiter)
	}
	l, _ := b.limiters.LoadOrStore(key, rate.NewLimiter(b.rate, b.burst))
	b.maybeCleanup()
	return l.(*rate.Limiter)
}

// maybeCleanup drops limiters whose buckets have refilled completely; a full
// bucket means the key has been idle for at least one window.
func (b *bucketSet) maybeCleanup() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if time.Since(b.lastCleanup) < 5*time.Minute {
		return
	}
	b.lastCleanup = time.Now()

	b.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(b.burst) {
			b.limiters.Delete(key)
		}
		return true
	})
}

// RateLimitMiddleware enforces config per key. Requests whose key cannot be
// determined are allowed through with a warning rather than dropped.
func RateLimitMiddleware(config RateLimitConfig, keyExtractor KeyExtractor) Middleware {
	buckets := &bucketSet{
		rate:        rate.Limit(float64(config.RequestsPerWindow) / config.Window.Seconds()),
		burst:       config.Burst,
		lastCleanup: time.Now(),
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			key := keyExtractor(r)
			if key == "" {
				log.Warn("rate limit: no key for request, allowing")
				next.ServeHTTP(w, r)
				return
			}

			limiter := buckets.get(key)
			if !limiter.Allow() {
				reservation := limiter.Reserve()
				delay := reservation.Delay()
				reservation.Cancel()

				retryAfter := max(int(delay.Seconds()), 1)
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(config.RequestsPerWindow))
				w.Header().Set("X-RateLimit-Window", config.Window.String())

				log.Warn("rate limit exceeded",
					"key", key,
					"endpoint", r.URL.Path,
					"retry_after", retryAfter,
				)

				WriteJSON(w, http.StatusTooManyRequests, map[string]any{
					"message":    "Too many requests. Please try again later.",
					"statusCode": http.StatusTooManyRequests,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitByIP limits by client IP only.
func RateLimitByIP(config RateLimitConfig) Middleware {
	return RateLimitMiddleware(config, IPKeyExtractor)
}

// RateLimitByUser limits by authenticated user, falling back to IP.
func RateLimitByUser(config RateLimitConfig) Middleware {
	return RateLimitMiddleware(config, CompositeKeyExtractor(":",
		UserIDKeyExtractor,
		IPKeyExtractor,
	))
}
