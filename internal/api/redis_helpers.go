package api

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// rateCounter 是登录与联系表单限流所需的最小 Redis 能力。
type rateCounter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// incrWithTTL 自增窗口计数；窗口的首个请求负责设置过期时间，
// 设置失败不回滚计数。
func incrWithTTL(ctx context.Context, client rateCounter, key string, ttl time.Duration) (int64, error) {
	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		_ = client.Expire(ctx, key, ttl).Err()
	}
	return count, nil
}
