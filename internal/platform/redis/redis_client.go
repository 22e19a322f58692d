// Package redis は任意のキャッシュ用Redisクライアントを生成します。
package redis

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"shop_backend/internal/platform/config"
)

// ErrDisabled はRedisが設定されていないことを表します。
var ErrDisabled = errors.New("redis is not configured")

// pingTimeout は起動時の接続確認の上限時間です。
const pingTimeout = 3 * time.Second

// NewRedisClient は設定からクライアントを生成し、接続を確認します。
// REDIS_HOST が未設定の場合は ErrDisabled を返し、呼び出し側はキャッシュなしで起動します。
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if !cfg.Enabled() {
		return nil, ErrDisabled
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       0,
	})

	// 接続確認
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", cfg.Addr(), "error", err)
		_ = rdb.Close()
		return nil, err
	}

	slog.Info("Redis connection successful", "address", cfg.Addr())
	return rdb, nil
}
