package repository

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Rota-App/internal/domain/model"
)

type countingPlacesRepository struct {
	calls  atomic.Int32
	places []*model.Place
	err    error
	delay  time.Duration
}

func (c *countingPlacesRepository) ListAll(ctx context.Context) ([]*model.Place, error) {
	c.calls.Add(1)
	if c.delay > 0 {
		time.Sleep(c.delay)
	}
	return c.places, c.err
}

// ctxAwarePlacesRepository はdelayの間にctxがキャンセルされるとエラーを返す
type ctxAwarePlacesRepository struct {
	calls  atomic.Int32
	places []*model.Place
	delay  time.Duration
}

func (c *ctxAwarePlacesRepository) ListAll(ctx context.Context) ([]*model.Place, error) {
	c.calls.Add(1)
	select {
	case <-time.After(c.delay):
		return c.places, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func samplePlaces() []*model.Place {
	return []*model.Place{
		{ID: "p1", Name: "Moda Sahili", Category: "park", Rating: 4.6, UserRatingsTotal: 1200, Latitude: 40.98, Longitude: 29.02},
		{ID: "p2", Name: "Kronotrop", Category: "cafe", Rating: 4.5, UserRatingsTotal: 300},
	}
}

func TestCachedPlacesRepository_HitAfterMiss(t *testing.T) {
	mr, client := newTestRedis(t)
	inner := &countingPlacesRepository{places: samplePlaces()}
	repo := NewCachedPlacesRepository(inner, client, 10*time.Minute)
	ctx := context.Background()

	first, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 2)
	assert.True(t, mr.Exists(placesCacheKey))
	assert.Equal(t, 10*time.Minute, mr.TTL(placesCacheKey))

	second, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), inner.calls.Load())
	require.Len(t, second, 2)
	assert.Equal(t, "p1", second[0].ID, "IDもキャッシュに含める")
	assert.Equal(t, 1200, second[0].UserRatingsTotal)

	mr.FastForward(11 * time.Minute)
	_, err = repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), inner.calls.Load())
}

func TestCachedPlacesRepository_Invalidate(t *testing.T) {
	_, client := newTestRedis(t)
	inner := &countingPlacesRepository{places: samplePlaces()}
	repo := NewCachedPlacesRepository(inner, client, time.Minute)
	ctx := context.Background()

	_, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Invalidate(ctx))
	_, err = repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), inner.calls.Load())
}

func TestCachedPlacesRepository_InnerErrorNotCached(t *testing.T) {
	mr, client := newTestRedis(t)
	inner := &countingPlacesRepository{err: errors.New("firestore unavailable")}
	repo := NewCachedPlacesRepository(inner, client, time.Minute)

	_, err := repo.ListAll(context.Background())
	assert.Error(t, err)
	assert.False(t, mr.Exists(placesCacheKey))
}

func TestCachedPlacesRepository_RedisDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	inner := &countingPlacesRepository{places: samplePlaces()}
	repo := NewCachedPlacesRepository(inner, client, time.Minute)

	places, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, places, 2)
}

func TestCachedPlacesRepository_CollapsesConcurrentMisses(t *testing.T) {
	_, client := newTestRedis(t)
	inner := &countingPlacesRepository{places: samplePlaces(), delay: 100 * time.Millisecond}
	repo := NewCachedPlacesRepository(inner, client, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			places, err := repo.ListAll(context.Background())
			assert.NoError(t, err)
			assert.Len(t, places, 2)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), inner.calls.Load())
}

func TestCachedPlacesRepository_LeaderCancellationDoesNotFailFollowers(t *testing.T) {
	_, client := newTestRedis(t)
	inner := &ctxAwarePlacesRepository{places: samplePlaces(), delay: 200 * time.Millisecond}
	repo := NewCachedPlacesRepository(inner, client, time.Minute)

	leaderCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = repo.ListAll(leaderCtx)
	}()

	var followerPlaces []*model.Place
	var followerErr error
	go func() {
		defer wg.Done()
		time.Sleep(20 * time.Millisecond)
		followerPlaces, followerErr = repo.ListAll(context.Background())
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	wg.Wait()

	require.NoError(t, followerErr)
	assert.Len(t, followerPlaces, 2)
	assert.Equal(t, int32(1), inner.calls.Load())
}
