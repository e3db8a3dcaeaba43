// Package ratelimit throttles HTTP clients with per-client token buckets.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Config configures a Limiter.
type Config struct {
	Enabled           bool
	RequestsPerMinute int
	Burst             int
	Rules             []Rule
	// IdleTTL is how long an unused client bucket is kept.
	IdleTTL time.Duration
}

// Info describes the limit applied to a request.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

type bucket struct {
	limiter  *rate.Limiter
	limit    int
	lastSeen time.Time
}

// Limiter tracks one bucket per client and rule.
type Limiter struct {
	config  Config
	now     func() time.Time
	mu      sync.Mutex
	buckets map[string]*bucket
	stop    chan struct{}
	once    sync.Once
}

// NewLimiter builds a limiter and starts evicting idle buckets in the background.
func NewLimiter(config Config) *Limiter {
	if config.IdleTTL <= 0 {
		config.IdleTTL = 10 * time.Minute
	}
	l := &Limiter{
		config:  config,
		now:     time.Now,
		buckets: make(map[string]*bucket),
		stop:    make(chan struct{}),
	}
	if config.Enabled {
		go l.evictLoop(config.IdleTTL / 2)
	}
	return l
}

// Allow consumes one token for clientID on the given endpoint.
func (l *Limiter) Allow(clientID, method, path string) Info {
	if !l.config.Enabled {
		return Info{Allowed: true}
	}

	perMinute, burst, key := l.config.RequestsPerMinute, l.config.Burst, clientID
	if rule := Match(method, path, l.config.Rules); rule != nil {
		if rule.RequestsPerMinute == Unlimited {
			return Info{Allowed: true}
		}
		perMinute, burst, key = rule.RequestsPerMinute, rule.Burst, clientID+"|"+rule.Method+" "+rule.Path
	}
	if burst <= 0 {
		burst = max(perMinute, 1)
	}

	now := l.now()
	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{
			limiter: rate.NewLimiter(rate.Limit(float64(perMinute)/60), burst),
			limit:   burst,
		}
		l.buckets[key] = b
	}
	b.lastSeen = now
	l.mu.Unlock()

	info := Info{Limit: b.limit}
	if b.limiter.AllowN(now, 1) {
		info.Allowed = true
		info.Remaining = max(int(b.limiter.TokensAt(now)), 0)
		return info
	}

	r := b.limiter.ReserveN(now, 1)
	if r.OK() {
		info.RetryAfter = r.DelayFrom(now)
		r.CancelAt(now)
	}
	return info
}

// Len returns the number of tracked buckets.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// evict drops buckets idle for longer than IdleTTL.
func (l *Limiter) evict() {
	cutoff := l.now().Add(-l.config.IdleTTL)
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}

func (l *Limiter) evictLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.evict()
		case <-l.stop:
			return
		}
	}
}

// Stop ends background eviction. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.once.Do(func() { close(l.stop) })
}
