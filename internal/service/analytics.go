package service

import (
	"context"
	"log/slog"
	"time"

	"urlify/internal/types"
)

const (
	recordTimeout    = 5 * time.Second
	recentClickLimit = 100
)

// Recorder is the fire-and-forget analytics sink. Callers dispatch Record on
// its own goroutine; it never reports back to the redirect path. The click
// counter increment and the event append are independent and either may fail
// without affecting the other.
type Recorder struct {
	store  UrlStore
	events EventLog
}

func NewRecorder(store UrlStore, events EventLog) *Recorder {
	return &Recorder{store: store, events: events}
}

// Record increments the link's click counter and appends the event. It runs
// on a fresh timeout context, never the originating request's: once
// scheduled it completes or fails regardless of the client disconnecting.
func (r *Recorder) Record(event types.ClickEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	if err := r.store.IncrementClicks(ctx, event.Code); err != nil {
		slog.Warn("Failed to increment click count", "code", event.Code, "error", err)
	}

	r.events.Append(event)
}

// Stats is the per-code analytics view: the link's counters plus its most
// recent click events.
type Stats struct {
	Link         types.ShortLink    `json:"link"`
	RecentClicks []types.ClickEvent `json:"recent_clicks"`
}

// Stats returns counters and up to 100 recent clicks for code. An event-log
// read failure degrades to an empty click list rather than failing the whole
// response.
func (s *Shortener) Stats(ctx context.Context, code string) (*Stats, error) {
	link, err := s.store.Get(ctx, code)
	if err != nil {
		return nil, err
	}

	clicks, err := s.events.RecentClicks(ctx, code, recentClickLimit)
	if err != nil {
		slog.Warn("Failed to load recent clicks", "code", code, "error", err)
		clicks = nil
	}

	return &Stats{Link: *link, RecentClicks: clicks}, nil
}
