package cache

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wildnav/internal/domain/entity"
	"wildnav/internal/domain/service"
	mocks "wildnav/internal/mocks/service"
)

type memoryStore struct {
	mu      sync.Mutex
	values  map[string][]byte
	ttls    map[string]time.Duration
	failGet bool
	failSet bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (s *memoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failGet {
		return nil, errors.New("connection refused")
	}
	v, ok := s.values[key]
	if !ok {
		return nil, ErrMiss
	}

	return v, nil
}

func (s *memoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failSet {
		return errors.New("read only replica")
	}
	s.values[key] = value
	s.ttls[key] = ttl

	return nil
}

func (s *memoryStore) Close() {}

var (
	from = entity.Coordinate{Latitude: 25.033012, Longitude: 121.565431}
	to   = entity.Coordinate{Latitude: 25.034019, Longitude: 121.566428}
	dirs = &service.Directions{
		DistanceMeters:  152,
		DurationSeconds: 110,
		Polyline:        []entity.Coordinate{from, to},
		Steps:           []entity.RouteStep{{Instruction: "Head north", DistanceMeters: 152}},
	}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCachedProvider_MissThenHit(t *testing.T) {
	next := mocks.NewMockDirectionsProvider(t)
	metrics := mocks.NewMockMetricsRecorder(t)
	store := newMemoryStore()

	next.EXPECT().GetRoute(mock.Anything, from, to, service.TravelModeWalking).Return(dirs, nil).Once()
	metrics.EXPECT().ObserveDirectionsCache(false).Once()
	metrics.EXPECT().ObserveDirectionsCache(true).Once()

	provider := NewCachedProvider(next, store, time.Hour, metrics, discardLogger())

	first, err := provider.GetRoute(context.Background(), from, to, service.TravelModeWalking)
	require.NoError(t, err)
	assert.Equal(t, dirs, first)
	assert.Equal(t, time.Hour, store.ttls[Key(from, to, service.TravelModeWalking)])

	second, err := provider.GetRoute(context.Background(), from, to, service.TravelModeWalking)
	require.NoError(t, err)
	assert.Equal(t, dirs, second)
}

func TestCachedProvider_JitterSharesKey(t *testing.T) {
	jittered := entity.Coordinate{Latitude: from.Latitude + 0.000001, Longitude: from.Longitude - 0.000001}

	assert.Equal(t,
		Key(from, to, service.TravelModeWalking),
		Key(jittered, to, service.TravelModeWalking),
	)
	assert.NotEqual(t,
		Key(from, to, service.TravelModeWalking),
		Key(to, from, service.TravelModeWalking),
	)
}

func TestCachedProvider_ErrorsAreNotCached(t *testing.T) {
	next := mocks.NewMockDirectionsProvider(t)
	store := newMemoryStore()

	upstream := errors.New("quota exceeded")
	next.EXPECT().GetRoute(mock.Anything, from, to, service.TravelModeWalking).Return(nil, upstream).Twice()

	provider := NewCachedProvider(next, store, 0, nil, discardLogger())

	for range 2 {
		_, err := provider.GetRoute(context.Background(), from, to, service.TravelModeWalking)
		assert.ErrorIs(t, err, upstream)
	}
	assert.Empty(t, store.values)
}

func TestCachedProvider_StoreFailuresFallThrough(t *testing.T) {
	next := mocks.NewMockDirectionsProvider(t)
	store := newMemoryStore()
	store.failGet = true
	store.failSet = true

	next.EXPECT().GetRoute(mock.Anything, from, to, service.TravelModeWalking).Return(dirs, nil).Once()

	provider := NewCachedProvider(next, store, time.Minute, nil, discardLogger())

	got, err := provider.GetRoute(context.Background(), from, to, service.TravelModeWalking)
	require.NoError(t, err)
	assert.Equal(t, dirs, got)
}

func TestCachedProvider_CorruptEntryIsRefetched(t *testing.T) {
	next := mocks.NewMockDirectionsProvider(t)
	store := newMemoryStore()
	key := Key(from, to, service.TravelModeWalking)
	store.values[key] = []byte("{not json")

	next.EXPECT().GetRoute(mock.Anything, from, to, service.TravelModeWalking).Return(dirs, nil).Once()

	provider := NewCachedProvider(next, store, time.Minute, nil, discardLogger())

	got, err := provider.GetRoute(context.Background(), from, to, service.TravelModeWalking)
	require.NoError(t, err)
	assert.Equal(t, dirs, got)

	var stored service.Directions
	require.NoError(t, json.Unmarshal(store.values[key], &stored))
	assert.Equal(t, *dirs, stored)
}
