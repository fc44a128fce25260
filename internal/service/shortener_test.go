package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urlify/internal/types"
)

func createReturnsInput(_ context.Context, link *types.ShortLink) (*types.ShortLink, error) {
	created := *link
	created.ID = 1
	created.CreatedAt = time.Now()
	return &created, nil
}

func TestShortenGeneratedCode(t *testing.T) {
	s, store, cache, _ := newTestShortener(t)

	store.EXPECT().ExistsCode(gomock.Any(), gomock.Any()).Return(false, nil)
	store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(createReturnsInput)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), "https://example.com/page", time.Hour).Return(nil)

	link, err := s.Shorten(context.Background(), ShortenRequest{URL: "https://example.com/page"}, 7)
	require.NoError(t, err)

	assert.NotEmpty(t, link.Code)
	assert.LessOrEqual(t, len(link.Code), 7)
	assert.Equal(t, "https://example.com/page", link.Destination)
	assert.Equal(t, int64(7), link.OwnerID)
	assert.Nil(t, link.ExpiresAt)
}

func TestShortenCustomAlias(t *testing.T) {
	s, store, cache, _ := newTestShortener(t)

	store.EXPECT().ExistsCode(gomock.Any(), "promo").Return(false, nil)
	store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(createReturnsInput)
	cache.EXPECT().Set(gomock.Any(), "url:promo", "https://example.com", time.Hour).Return(nil)

	link, err := s.Shorten(context.Background(), ShortenRequest{URL: "https://example.com", CustomAlias: "promo"}, 7)
	require.NoError(t, err)
	assert.Equal(t, "promo", link.Code)
}

func TestShortenAliasTakenAtPreCheck(t *testing.T) {
	s, store, _, _ := newTestShortener(t)

	store.EXPECT().ExistsCode(gomock.Any(), "promo").Return(true, nil)

	_, err := s.Shorten(context.Background(), ShortenRequest{URL: "https://example.com", CustomAlias: "promo"}, 7)
	assert.ErrorIs(t, err, ErrAliasTaken)
}

func TestShortenAliasRaceLostAtWrite(t *testing.T) {
	s, store, _, _ := newTestShortener(t)

	// The pre-check passes, but a concurrent claim wins at the store; the
	// uniqueness constraint's rejection surfaces as the same conflict.
	store.EXPECT().ExistsCode(gomock.Any(), "promo").Return(false, nil)
	store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, ErrAliasTaken)

	_, err := s.Shorten(context.Background(), ShortenRequest{URL: "https://example.com", CustomAlias: "promo"}, 7)
	assert.ErrorIs(t, err, ErrAliasTaken)
}

func TestShortenRejectsInvalidDestination(t *testing.T) {
	s, _, _, _ := newTestShortener(t)

	for _, raw := range []string{"ftp://example.com", "http://10.1.2.3/path", ""} {
		_, err := s.Shorten(context.Background(), ShortenRequest{URL: raw}, 7)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr, "expected %q to be rejected", raw)
	}
}

func TestShortenWithExpiry(t *testing.T) {
	s, store, cache, _ := newTestShortener(t)

	var persisted *types.ShortLink
	store.EXPECT().ExistsCode(gomock.Any(), gomock.Any()).Return(false, nil)
	store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, link *types.ShortLink) (*types.ShortLink, error) {
			persisted = link
			return createReturnsInput(ctx, link)
		})
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), time.Hour).Return(nil)

	_, err := s.Shorten(context.Background(), ShortenRequest{URL: "https://example.com", ExpiryHours: 24}, 7)
	require.NoError(t, err)

	require.NotNil(t, persisted.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), *persisted.ExpiresAt, time.Minute)
}

func TestShortenCacheWarmFailureIsAbsorbed(t *testing.T) {
	s, store, cache, _ := newTestShortener(t)

	store.EXPECT().ExistsCode(gomock.Any(), gomock.Any()).Return(false, nil)
	store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(createReturnsInput)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), time.Hour).Return(assert.AnError)

	link, err := s.Shorten(context.Background(), ShortenRequest{URL: "https://example.com"}, 7)
	require.NoError(t, err)
	assert.NotEmpty(t, link.Code)
}
