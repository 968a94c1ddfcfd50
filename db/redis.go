package db

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

const (
	// AnalyzeQueueKey holds symbols waiting for a fetch-and-analyze pass.
	AnalyzeQueueKey = "stockai:queue:analyze"
	analysisKeyFmt  = "stockai:analysis:%s"
)

// AnalysisCacheTTL bounds how long a cached batch result is served before a
// fresh fetch is forced.
const AnalysisCacheTTL = 10 * time.Minute

func ConnectRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		fmt.Println("REDIS_URL environment variable is not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(Ctx).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

func PushSymbol(symbol string) error {
	return Redis.LPush(Ctx, AnalyzeQueueKey, symbol).Err()
}

func PopSymbol(timeout time.Duration) (string, error) {
	result, err := Redis.BRPop(Ctx, timeout, AnalyzeQueueKey).Result()
	if err != nil {
		return "", err
	}
	return result[1], nil
}

func QueueLength() (int64, error) {
	return Redis.LLen(Ctx, AnalyzeQueueKey).Result()
}

// CacheAnalysis stores a serialized batch result for a symbol.
func CacheAnalysis(symbol string, payload []byte) error {
	return Redis.Set(Ctx, fmt.Sprintf(analysisKeyFmt, symbol), payload, AnalysisCacheTTL).Err()
}

// GetCachedAnalysis returns the cached batch result for a symbol, or nil
// when the key is absent or expired.
func GetCachedAnalysis(symbol string) ([]byte, error) {
	data, err := Redis.Get(Ctx, fmt.Sprintf(analysisKeyFmt, symbol)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}
