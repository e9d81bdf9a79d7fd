package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// Redis backs the filter-option cache and the per-client rate limiter.
var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

func ConnectRedis() {
	if os.Getenv("REDIS_URL") == "" {
		log.Println("⚠️ REDIS_URL not set, using local default")
	}
	redisURL := getEnv("REDIS_URL", "redis://localhost:6379")

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("❌ Invalid REDIS_URL: %v", err)
	}
	RedisClient = redis.NewClient(opt)

	if err := RedisClient.Ping(Ctx).Err(); err != nil {
		log.Fatalf("❌ Redis ping failed: %v", err)
	}
	log.Println("✅ Redis connected")
}
