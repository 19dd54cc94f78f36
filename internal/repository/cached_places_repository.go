package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"Rota-App/internal/domain/model"
	"Rota-App/internal/domain/repository"
	"Rota-App/internal/infrastructure/metrics"
)

const placesCacheKey = "rota:places:snapshot:v1"

// CachedPlacesRepository はスポット一覧のスナップショットをRedisにキャッシュするデコレータ
type CachedPlacesRepository struct {
	inner repository.PlacesRepository
	redis *redis.Client
	ttl   time.Duration
	group singleflight.Group
}

// NewCachedPlacesRepository 新しいCachedPlacesRepositoryインスタンスを作成
func NewCachedPlacesRepository(inner repository.PlacesRepository, client *redis.Client, ttl time.Duration) *CachedPlacesRepository {
	return &CachedPlacesRepository{
		inner: inner,
		redis: client,
		ttl:   ttl,
	}
}

// ListAll はキャッシュを優先して読み込む。Redisの障害時は元のリポジトリから直接読む
func (r *CachedPlacesRepository) ListAll(ctx context.Context) ([]*model.Place, error) {
	if places, ok := r.get(ctx); ok {
		return places, nil
	}

	v, err, shared := r.group.Do(placesCacheKey, func() (any, error) {
		// 相乗りした他の呼び出しに最初の呼び出し元のキャンセルを波及させない
		loadCtx := context.WithoutCancel(ctx)
		places, err := r.inner.ListAll(loadCtx)
		if err != nil {
			return nil, err
		}
		r.set(loadCtx, places)
		return places, nil
	})
	if err != nil {
		return nil, err
	}
	places := v.([]*model.Place)
	if shared {
		return clonePlaces(places), nil
	}
	return places, nil
}

// Invalidate はキャッシュを破棄する
func (r *CachedPlacesRepository) Invalidate(ctx context.Context) error {
	return r.redis.Del(ctx, placesCacheKey).Err()
}

func (r *CachedPlacesRepository) get(ctx context.Context) ([]*model.Place, bool) {
	b, err := r.redis.Get(ctx, placesCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.ObserveCache("places", "miss")
		return nil, false
	}
	if err != nil {
		metrics.ObserveCache("places", "error")
		log.Warn().Err(err).Msg("⚠️ スポットキャッシュの読み込みに失敗")
		return nil, false
	}

	var places []*model.Place
	if err := json.Unmarshal(b, &places); err != nil {
		metrics.ObserveCache("places", "error")
		log.Warn().Err(err).Msg("⚠️ スポットキャッシュのデコードに失敗")
		return nil, false
	}
	metrics.ObserveCache("places", "hit")
	return places, true
}

func (r *CachedPlacesRepository) set(ctx context.Context, places []*model.Place) {
	b, err := json.Marshal(places)
	if err != nil {
		log.Warn().Err(err).Msg("⚠️ スポットキャッシュのエンコードに失敗")
		return
	}
	if err := r.redis.Set(ctx, placesCacheKey, b, r.ttl).Err(); err != nil {
		metrics.ObserveCache("places", "error")
		log.Warn().Err(err).Msg("⚠️ スポットキャッシュの保存に失敗")
		return
	}
	metrics.ObserveCache("places", "set")
}

func clonePlaces(places []*model.Place) []*model.Place {
	out := make([]*model.Place, len(places))
	for i, p := range places {
		if p == nil {
			continue
		}
		c := *p
		out[i] = &c
	}
	return out
}
