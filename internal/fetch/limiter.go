// Package fetch - limiter.go rate-limits outbound requests per host.
package fetch

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// fallbackHost is the shared bucket for URLs whose host cannot be parsed.
const fallbackHost = "_"

// HostLimiter rate-limits requests per hostname so concurrent searches do not
// hammer a single job board.
type HostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	perHost  rate.Limit
	burst    int
}

// NewHostLimiter allows reqPerSec requests per second with the given burst
// for each distinct host.
func NewHostLimiter(reqPerSec float64, burst int) *HostLimiter {
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		perHost:  rate.Limit(reqPerSec),
		burst:    burst,
	}
}

// WaitURL blocks until a request to the URL's host is allowed, or the
// context ends. Unparseable URLs share one fallback bucket.
func (hl *HostLimiter) WaitURL(ctx context.Context, raw string) error {
	return hl.limiterFor(hostKey(raw)).Wait(ctx)
}

func (hl *HostLimiter) limiterFor(host string) *rate.Limiter {
	hl.mu.Lock()
	defer hl.mu.Unlock()

	lim, ok := hl.limiters[host]
	if !ok {
		lim = rate.NewLimiter(hl.perHost, hl.burst)
		hl.limiters[host] = lim
	}
	return lim
}

func hostKey(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return fallbackHost
	}
	return u.Host
}
