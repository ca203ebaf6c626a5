package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"eventhub/internal/errors"
	"eventhub/internal/handlers"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerSecond = 5
	defaultBurstSize         = 10

	clientIdleTimeout = 3 * time.Minute
	sweepInterval     = time.Minute
)

var rateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "rate_limited_requests_total",
		Help: "Requests refused with SYSTEM_006, by limiter scope",
	},
	[]string{"scope"},
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientBuckets keeps one token bucket per client IP. Idle buckets are
// swept lazily on access, at most once per sweepInterval.
type clientBuckets struct {
	mu        sync.Mutex
	clients   map[string]*client
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func newClientBuckets(rps, burst int) *clientBuckets {
	return &clientBuckets{
		clients:   make(map[string]*client),
		limit:     rate.Limit(rps),
		burst:     burst,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (b *clientBuckets) allow(ip string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	if now.Sub(b.lastSweep) >= sweepInterval {
		b.sweep(now)
	}

	c, ok := b.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(b.limit, b.burst)}
		b.clients[ip] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// sweep drops idle buckets; b.mu must be held
func (b *clientBuckets) sweep(now time.Time) {
	for ip, c := range b.clients {
		if now.Sub(c.lastSeen) > clientIdleTimeout {
			delete(b.clients, ip)
		}
	}
	b.lastSweep = now
}

func (b *clientBuckets) size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clients)
}

// retryAfter is the whole seconds until one token refills
func (b *clientBuckets) retryAfter() string {
	return strconv.Itoa(int(math.Ceil(1 / float64(b.limit))))
}

// RateLimit limits requests per client IP. scope labels the refusals in
// rate_limited_requests_total and non-positive values fall back to the defaults.
// The client IP comes from c.RealIP, so proxy trust is whatever the server's
// IPExtractor allows.
func RateLimit(scope string, rps, burst int) echo.MiddlewareFunc {
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}
	if burst <= 0 {
		burst = defaultBurstSize
	}
	return limitWith(scope, newClientBuckets(rps, burst))
}

func limitWith(scope string, buckets *clientBuckets) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if buckets.allow(c.RealIP()) {
				return next(c)
			}

			rateLimitedTotal.WithLabelValues(scope).Inc()
			c.Response().Header().Set("Retry-After", buckets.retryAfter())
			return handlers.SendError(c, errors.SystemRateLimitExceeded)
		}
	}
}
