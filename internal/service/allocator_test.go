package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urlify/internal/base62"
)

func testAllocator(nowMilli, perturbation int64) *Allocator {
	a := NewAllocator()
	a.now = func() time.Time { return time.UnixMilli(nowMilli) }
	a.perturb = func() int64 { return perturbation }
	return a
}

func neverExists(context.Context, string) (bool, error) { return false, nil }

func alwaysExists(context.Context, string) (bool, error) { return true, nil }

func TestAllocate(t *testing.T) {
	a := testAllocator(1700000000000, 42)

	code, err := a.Allocate(context.Background(), neverExists)
	require.NoError(t, err)

	assert.Equal(t, base62.Encode(1700000000042), code)
	assert.LessOrEqual(t, len(code), 7)
	assert.True(t, base62.IsValid(code))
}

func TestAllocateTruncatesToTrailingSeven(t *testing.T) {
	// Large enough that the encoding exceeds 7 characters.
	a := testAllocator(4_000_000_000_000_000, 0)

	code, err := a.Allocate(context.Background(), neverExists)
	require.NoError(t, err)

	full := base62.Encode(4_000_000_000_000_000)
	require.Greater(t, len(full), 7)
	assert.Equal(t, full[len(full)-7:], code)
}

func TestAllocateNeverReturnsTakenCode(t *testing.T) {
	a := testAllocator(1700000000000, 0)
	next := int64(0)
	a.perturb = func() int64 { next++; return next }

	taken := map[string]bool{}
	calls := 0
	exists := func(_ context.Context, code string) (bool, error) {
		calls++
		// First three candidates collide.
		if calls <= 3 {
			taken[code] = true
			return true, nil
		}
		return taken[code], nil
	}

	code, err := a.Allocate(context.Background(), exists)
	require.NoError(t, err)
	assert.False(t, taken[code])
	assert.Equal(t, 4, calls)
}

func TestAllocateExhaustsAfterTenAttempts(t *testing.T) {
	a := NewAllocator()

	calls := 0
	exists := func(ctx context.Context, code string) (bool, error) {
		calls++
		return alwaysExists(ctx, code)
	}

	_, err := a.Allocate(context.Background(), exists)
	assert.ErrorIs(t, err, ErrAllocationExhausted)
	assert.Equal(t, 10, calls)
}

func TestReserve(t *testing.T) {
	a := NewAllocator()

	code, err := a.Reserve(context.Background(), "myalias", neverExists)
	require.NoError(t, err)
	assert.Equal(t, "myalias", code)
}

func TestReserveTakenAlias(t *testing.T) {
	a := NewAllocator()

	_, err := a.Reserve(context.Background(), "myalias", alwaysExists)
	assert.ErrorIs(t, err, ErrAliasTaken)
}

func TestReserveRejectsInvalidAlias(t *testing.T) {
	a := NewAllocator()

	_, err := a.Reserve(context.Background(), "my alias!", neverExists)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}
