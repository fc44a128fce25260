package service

import "errors"

var (
	// ErrNotFound means no ShortLink exists for the requested code.
	ErrNotFound = errors.New("short link not found")

	// ErrExpired means the ShortLink exists but its expiry is in the past.
	// Expired links are never served even though they stay in storage.
	ErrExpired = errors.New("short link has expired")

	// ErrAliasTaken means the requested code is already claimed. The durable
	// store's uniqueness constraint is the final authority: this is returned
	// both from the advisory pre-check and from a rejected write.
	ErrAliasTaken = errors.New("alias already in use")

	// ErrAllocationExhausted means code generation collided on every attempt.
	// This signals systemic contention or a store outage, not bad input.
	ErrAllocationExhausted = errors.New("failed to allocate unique short code")

	// ErrRateLimited means the caller's token bucket is exhausted.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned by FastCache.Get when the key is absent.
	ErrCacheMiss = errors.New("cache miss")
)

// ValidationError describes a destination URL rejected by the acceptance
// policy. User-correctable.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid destination URL: " + e.Reason
}
