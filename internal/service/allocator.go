package service

import (
	"context"
	"math/rand/v2"
	"time"

	"urlify/internal/base62"
)

const (
	codeLength          = 7
	maxAllocateAttempts = 10
	perturbationCeiling = 1000
)

// ExistsFunc checks whether a code is already taken in the durable store.
type ExistsFunc func(ctx context.Context, code string) (bool, error)

// Allocator mints short codes that are free at generation time. The
// existence check is advisory only; the store's uniqueness constraint settles
// any race between concurrent allocations of the same code.
type Allocator struct {
	maxAttempts int
	now         func() time.Time
	perturb     func() int64
}

func NewAllocator() *Allocator {
	return &Allocator{
		maxAttempts: maxAllocateAttempts,
		now:         time.Now,
		perturb:     func() int64 { return rand.Int64N(perturbationCeiling) },
	}
}

// Allocate generates a code from the current millisecond plus a random
// perturbation, base62-encoded and truncated to the trailing 7 characters.
// The perturbation is what keeps two requests in the same millisecond from
// colliding after truncation. On collision a fresh perturbation is drawn;
// exhausting the attempt budget returns ErrAllocationExhausted, which signals
// systemic contention or a store outage rather than bad input.
func (a *Allocator) Allocate(ctx context.Context, exists ExistsFunc) (string, error) {
	for attempt := 0; attempt < a.maxAttempts; attempt++ {
		combined := a.now().UnixMilli() + a.perturb()
		code := base62.Encode(uint64(combined))
		if len(code) > codeLength {
			code = code[len(code)-codeLength:]
		}

		taken, err := exists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrAllocationExhausted
}

// Reserve claims a caller-supplied alias. The pre-check surfaces an early
// ErrAliasTaken but cannot be atomic with the eventual write; a write
// rejected by the store surfaces as ErrAliasTaken even when the pre-check
// passed.
func (a *Allocator) Reserve(ctx context.Context, alias string, exists ExistsFunc) (string, error) {
	if !base62.IsValid(alias) {
		return "", &ValidationError{Reason: "alias may only contain alphanumeric characters"}
	}
	taken, err := exists(ctx, alias)
	if err != nil {
		return "", err
	}
	if taken {
		return "", ErrAliasTaken
	}
	return alias, nil
}
