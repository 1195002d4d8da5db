package checks

import (
	"context"
	"time"

	"github.com/darkkaiser/momo-server/internal/service/health"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient 캐시(Redis) 클라이언트를 생성합니다.
// 헬스체크가 빠르게 실패하도록 재시도를 끄고 연결 타임아웃을 짧게 설정합니다.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: 2 * time.Second,
		MaxRetries:  -1,
		PoolSize:    4,
	})
}

// pinger Redis PING 명령을 실행할 수 있는 클라이언트 (redis.Client, redis.ClusterClient 등)
type pinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

// Redis 캐시 연결 상태를 확인하는 Checker입니다.
type Redis struct {
	client pinger
}

// NewRedis 새로운 Redis Checker를 생성합니다.
func NewRedis(client redis.UniversalClient) *Redis {
	return &Redis{client: client}
}

var _ health.Checker = (*Redis)(nil)

// Check PING 명령으로 연결 상태를 확인합니다.
func (r *Redis) Check(ctx context.Context) (health.Status, error) {
	if r.client == nil {
		return health.StatusFail, ErrRedisNotInitialized
	}

	pong, err := r.client.Ping(ctx).Result()
	if err != nil {
		return health.StatusFail, newErrRedisPing(err)
	}
	if pong != "PONG" {
		return health.StatusFail, newErrRedisUnexpectedReply(pong)
	}

	return health.StatusPass, nil
}
