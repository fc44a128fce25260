package service

import (
	"context"
	"time"

	"urlify/internal/types"
)

//go:generate mockgen -source=store.go -destination=mocks/store_mock.go -package=mocks

// UrlStore is the durable store of ShortLinks. Its uniqueness constraint on
// the code is the final arbiter for collisions.
type UrlStore interface {
	// Get returns the link for code, or ErrNotFound.
	Get(ctx context.Context, code string) (*types.ShortLink, error)
	// ExistsCode reports whether a link with the code exists.
	ExistsCode(ctx context.Context, code string) (bool, error)
	// Create persists a new link and returns it with store-assigned fields
	// filled in. A uniqueness violation on the code maps to ErrAliasTaken.
	Create(ctx context.Context, link *types.ShortLink) (*types.ShortLink, error)
	// IncrementClicks atomically adds one to the link's click counter.
	IncrementClicks(ctx context.Context, code string) error
	// FindByOwner returns the owner's links, newest first.
	FindByOwner(ctx context.Context, ownerID int64) ([]types.ShortLink, error)
}

// FastCache fronts the durable store on the redirect path. Both operations
// may fail; callers absorb the failure and fall back to the store.
type FastCache interface {
	// Get returns the cached destination for key, or ErrCacheMiss.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// EventLog is the append-only click-event sink.
type EventLog interface {
	// Append hands the event to the sink without blocking. The sink may
	// drop events under pressure.
	Append(event types.ClickEvent)
	// RecentClicks returns up to limit most recent events for code.
	RecentClicks(ctx context.Context, code string, limit int) ([]types.ClickEvent, error)
}

// UserDirectory resolves rate-limit/ownership identities to owner ids.
type UserDirectory interface {
	// ResolveOwnerID maps an API key to an owner id, or ErrNotFound.
	ResolveOwnerID(ctx context.Context, apiKey string) (int64, error)
	// EnsureTelegramUser creates the user on first contact and returns its
	// owner id.
	EnsureTelegramUser(ctx context.Context, telegramID int64) (int64, error)
}
