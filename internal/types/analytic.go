package types

import "time"

// ClickEvent is one resolved redirect, append-only. All request fields are
// captured as plain values before the asynchronous handoff; only the
// timestamp is required.
type ClickEvent struct {
	Code      string    `json:"code" db:"short_code"`
	IP        string    `json:"ip" db:"ip"`
	Country   string    `json:"country" db:"country"`
	City      string    `json:"city" db:"city"`
	UserAgent string    `json:"user_agent" db:"user_agent"`
	Referer   string    `json:"referer" db:"referer"`
	ClickedAt time.Time `json:"clicked_at" db:"clicked_at"`
}
