package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"urlify/internal/base62"
	"urlify/internal/types"
)

// cacheTTL bounds staleness if a destination is ever edited and is long
// enough to absorb read bursts on popular codes. It is deliberately not tied
// to the link's expiry; a link expiring sooner may still be served from
// cache until the TTL runs out.
const cacheTTL = time.Hour

const cachePrefix = "url:"

// ClickInfo carries the request fields needed for analytics, captured as
// plain values before the response is written.
type ClickInfo struct {
	IP        string
	UserAgent string
	Referer   string
}

func cacheKey(code string) string {
	return cachePrefix + code
}

// Resolve is the cache-aside read path: cache lookup, store fallback, expiry
// check, best-effort cache warm, asynchronous click recording. Cache faults
// are logged and treated as misses; the durable store is always the fallback
// of record.
func (s *Shortener) Resolve(ctx context.Context, code string, click ClickInfo) (string, error) {
	if !base62.IsValid(code) {
		return "", fmt.Errorf("resolve %q: %w", code, base62.ErrInvalidCharacter)
	}

	destination, err := s.cache.Get(ctx, cacheKey(code))
	if err == nil {
		s.scheduleClick(code, click)
		return destination, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		slog.Warn("Cache error, falling back to store", "code", code, "error", err)
	}

	link, err := s.store.Get(ctx, code)
	if err != nil {
		return "", err
	}
	if link.Expired(time.Now()) {
		return "", ErrExpired
	}

	if err := s.cache.Set(ctx, cacheKey(code), link.Destination, cacheTTL); err != nil {
		slog.Warn("Failed to warm cache", "code", code, "error", err)
	}

	s.scheduleClick(code, click)
	return link.Destination, nil
}

func (s *Shortener) scheduleClick(code string, click ClickInfo) {
	event := types.ClickEvent{
		Code:      code,
		IP:        click.IP,
		UserAgent: click.UserAgent,
		Referer:   click.Referer,
		ClickedAt: time.Now(),
	}
	go s.recorder.Record(event)
}
