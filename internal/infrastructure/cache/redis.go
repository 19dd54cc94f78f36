package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// NewRedisClient はRedisクライアントを作成し、疎通確認を行う
func NewRedisClient(ctx context.Context, addr, pass string, db int) (*redis.Client, error) {
	c := redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := c.Ping(pingCtx).Err(); err != nil {
		c.Close()
		return nil, fmt.Errorf("Redisへの接続に失敗 (%s): %w", addr, err)
	}
	log.Info().Str("addr", addr).Msg("✅ Redis connection successful")
	return c, nil
}
