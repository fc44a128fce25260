package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urlify/internal/service/mocks"
	"urlify/internal/types"
)

func TestRecorderRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockUrlStore(ctrl)
	events := mocks.NewMockEventLog(ctrl)
	r := NewRecorder(store, events)

	event := types.ClickEvent{
		Code:      "abc",
		IP:        "203.0.113.7",
		UserAgent: "test-agent",
		Referer:   "https://ref.example.com",
		ClickedAt: time.Now(),
	}

	store.EXPECT().IncrementClicks(gomock.Any(), "abc").Return(nil)
	events.EXPECT().Append(event)

	r.Record(event)
}

func TestRecorderIncrementFailureStillAppends(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockUrlStore(ctrl)
	events := mocks.NewMockEventLog(ctrl)
	r := NewRecorder(store, events)

	event := types.ClickEvent{Code: "abc", ClickedAt: time.Now()}

	// The increment and the append are independent failure domains.
	store.EXPECT().IncrementClicks(gomock.Any(), "abc").Return(assert.AnError)
	events.EXPECT().Append(event)

	r.Record(event)
}

func TestStats(t *testing.T) {
	s, store, _, events := newTestShortener(t)

	link := &types.ShortLink{Code: "abc", Destination: "https://example.com", ClickCount: 42}
	clicks := []types.ClickEvent{
		{Code: "abc", IP: "203.0.113.7", ClickedAt: time.Now()},
		{Code: "abc", IP: "203.0.113.8", ClickedAt: time.Now().Add(-time.Minute)},
	}

	store.EXPECT().Get(gomock.Any(), "abc").Return(link, nil)
	events.EXPECT().RecentClicks(gomock.Any(), "abc", 100).Return(clicks, nil)

	stats, err := s.Stats(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, int64(42), stats.Link.ClickCount)
	assert.Len(t, stats.RecentClicks, 2)
}

func TestStatsEventLogFailureDegrades(t *testing.T) {
	s, store, _, events := newTestShortener(t)

	link := &types.ShortLink{Code: "abc", ClickCount: 42}
	store.EXPECT().Get(gomock.Any(), "abc").Return(link, nil)
	events.EXPECT().RecentClicks(gomock.Any(), "abc", 100).Return(nil, assert.AnError)

	stats, err := s.Stats(context.Background(), "abc")
	require.NoError(t, err, "counters are still served when the event log is down")
	assert.Equal(t, int64(42), stats.Link.ClickCount)
	assert.Empty(t, stats.RecentClicks)
}

func TestStatsNotFound(t *testing.T) {
	s, store, _, _ := newTestShortener(t)

	store.EXPECT().Get(gomock.Any(), "nope").Return(nil, ErrNotFound)

	_, err := s.Stats(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
