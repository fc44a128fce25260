package types

import "time"

// ShortLink is one short-code to destination mapping. Code, destination and
// owner are immutable once created; ClickCount is mutated only through
// UrlStore.IncrementClicks.
type ShortLink struct {
	ID          int64      `json:"id" db:"id"`
	Code        string     `json:"code" db:"short_code"`
	Destination string     `json:"destination" db:"original_url"`
	OwnerID     int64      `json:"owner_id" db:"user_id"`
	ClickCount  int64      `json:"click_count" db:"click_count"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty" db:"expires_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// Expired reports whether the link has an expiry in the past. Expiry is a
// derived state: the row stays in storage and is simply never served.
func (l *ShortLink) Expired(now time.Time) bool {
	return l.ExpiresAt != nil && now.After(*l.ExpiresAt)
}
