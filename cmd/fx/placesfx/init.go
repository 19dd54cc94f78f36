package placesfx

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"Rota-App/internal/config"
	"Rota-App/internal/domain/repository"
	"Rota-App/internal/infrastructure/cache"
	"Rota-App/internal/infrastructure/database"
	fsclient "Rota-App/internal/infrastructure/firestore"
	repoImpl "Rota-App/internal/repository"
)

var Module = fx.Provide(
	provideFirestore, provideRedis, providePlacesRepo)

// provideFirestore はスポット取得元か旅程保存先がFirestoreの場合のみクライアントを作成する
func provideFirestore(lc fx.Lifecycle, cfg config.Config) (*fsclient.FirestoreClient, error) {
	if !cfg.NeedsFirestore() {
		return nil, nil
	}
	client, err := fsclient.NewFirestoreClient(context.Background(), cfg.FirestoreProjectID, cfg.FirestoreCredentialsFile)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{OnStop: func(ctx context.Context) error { return client.Close() }})
	return client, nil
}

// provideRedis はREDIS_ADDRが空ならnilを返し、キャッシュを無効にする
func provideRedis(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Info().Msg("ℹ️ REDIS_ADDR is empty, places cache disabled")
		return nil
	}
	client, err := cache.NewRedisClient(context.Background(), cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Warn().Err(err).Msg("⚠️ Redis unavailable, places cache disabled")
		return nil
	}
	lc.Append(fx.Hook{OnStop: func(ctx context.Context) error { return client.Close() }})
	return client
}

func providePlacesRepo(lc fx.Lifecycle, cfg config.Config, fs *fsclient.FirestoreClient, rdb *redis.Client) (repository.PlacesRepository, error) {
	var places repository.PlacesRepository

	switch cfg.PlacesSource {
	case config.PlacesSourceFirestore:
		places = repoImpl.NewFirestorePlacesRepository(fs.GetClient())
	case config.PlacesSourcePostgres:
		pg, err := database.NewPostgreSQLClient(context.Background(), database.PostgresConfig{
			DSN:         cfg.DatabaseURL,
			SupabaseURL: cfg.SupabaseURL,
			Password:    cfg.SupabaseDBPassword,
		})
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{OnStop: func(ctx context.Context) error { return pg.Close() }})
		places = repoImpl.NewPostgresPlacesRepository(pg)
	case config.PlacesSourceSupabase:
		sb, err := database.NewSupabaseClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
		if err != nil {
			return nil, err
		}
		places = repoImpl.NewSupabasePlacesRepository(sb)
	default:
		return nil, fmt.Errorf("未対応のPLACES_SOURCEです: %s", cfg.PlacesSource)
	}
	log.Info().Str("source", cfg.PlacesSource).Msg("🗺️ Places repository initialized")

	if rdb == nil {
		return places, nil
	}
	return repoImpl.NewCachedPlacesRepository(places, rdb, cfg.PlacesCacheTTL), nil
}
