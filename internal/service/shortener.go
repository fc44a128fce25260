// Package service holds the core of the shortener: code allocation, the
// cache-aside redirect path, rate limiting and click recording.
package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"urlify/internal/types"
)

// Shortener is the application service shared by the HTTP and Telegram
// surfaces.
type Shortener struct {
	store     UrlStore
	cache     FastCache
	events    EventLog
	allocator *Allocator
	recorder  *Recorder
}

func NewShortener(store UrlStore, cache FastCache, events EventLog) *Shortener {
	return &Shortener{
		store:     store,
		cache:     cache,
		events:    events,
		allocator: NewAllocator(),
		recorder:  NewRecorder(store, events),
	}
}

// ShortenRequest is the create-path input.
type ShortenRequest struct {
	URL         string `json:"url"`
	CustomAlias string `json:"custom_alias,omitempty"`
	ExpiryHours int    `json:"expiry_hours,omitempty"`
}

// Shorten validates the destination, mints or reserves a code and persists
// the link. The store's uniqueness constraint has the last word on
// collisions; its rejection comes back as ErrAliasTaken.
func (s *Shortener) Shorten(ctx context.Context, req ShortenRequest, ownerID int64) (*types.ShortLink, error) {
	if err := ValidateDestination(req.URL); err != nil {
		return nil, err
	}

	var (
		code string
		err  error
	)
	if alias := strings.TrimSpace(req.CustomAlias); alias != "" {
		code, err = s.allocator.Reserve(ctx, alias, s.store.ExistsCode)
	} else {
		code, err = s.allocator.Allocate(ctx, s.store.ExistsCode)
	}
	if err != nil {
		return nil, err
	}

	link := &types.ShortLink{
		Code:        code,
		Destination: req.URL,
		OwnerID:     ownerID,
	}
	if req.ExpiryHours > 0 {
		expiresAt := time.Now().Add(time.Duration(req.ExpiryHours) * time.Hour)
		link.ExpiresAt = &expiresAt
	}

	created, err := s.store.Create(ctx, link)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey(created.Code), created.Destination, cacheTTL); err != nil {
		slog.Warn("Failed to warm cache for new link", "code", created.Code, "error", err)
	}

	return created, nil
}

// ListByOwner returns the owner's links, newest first.
func (s *Shortener) ListByOwner(ctx context.Context, ownerID int64) ([]types.ShortLink, error) {
	return s.store.FindByOwner(ctx, ownerID)
}
