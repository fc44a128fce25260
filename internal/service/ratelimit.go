package service

import (
	"sync"
	"time"
)

type bucket struct {
	mu         sync.Mutex
	tokens     int64
	lastRefill time.Time
}

// Limiter is a lazy token-bucket rate limiter keyed by caller identity.
// Buckets are created on first use at full capacity and refilled on demand in
// whole intervals; no background timer runs. Each bucket has its own lock so
// contention on one identity never stalls another. A limiter instance owns
// its table for its whole lifetime; evicting or recreating a bucket only ever
// relaxes the limit, never tightens it.
type Limiter struct {
	capacity       int64
	refillTokens   int64
	refillInterval time.Duration

	now func() time.Time

	mu      sync.RWMutex
	buckets map[string]*bucket
}

func NewLimiter(capacity, refillTokens int64, refillInterval time.Duration) *Limiter {
	return &Limiter{
		capacity:       capacity,
		refillTokens:   refillTokens,
		refillInterval: refillInterval,
		now:            time.Now,
		buckets:        make(map[string]*bucket),
	}
}

// TryConsume takes cost tokens from identity's bucket. It returns false when
// the balance is insufficient; the caller rejects the request and does
// nothing else, there is no queuing or backoff here.
func (l *Limiter) TryConsume(identity string, cost int64) bool {
	b := l.bucket(identity)

	b.mu.Lock()
	defer b.mu.Unlock()

	now := l.now()
	if elapsed := now.Sub(b.lastRefill); elapsed >= l.refillInterval {
		intervals := int64(elapsed / l.refillInterval)
		b.tokens = min(l.capacity, b.tokens+intervals*l.refillTokens)
		b.lastRefill = b.lastRefill.Add(time.Duration(intervals) * l.refillInterval)
	}

	if b.tokens < cost {
		return false
	}
	b.tokens -= cost
	return true
}

func (l *Limiter) bucket(identity string) *bucket {
	l.mu.RLock()
	b, ok := l.buckets[identity]
	l.mu.RUnlock()
	if ok {
		return b
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if b, ok := l.buckets[identity]; ok {
		return b
	}
	b = &bucket{tokens: l.capacity, lastRefill: l.now()}
	l.buckets[identity] = b
	return b
}
