package database

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client
var RedisCtx = context.Background()
var RedisURI string

// InitRedis connects the shared Redis client. Redis is optional in dev: a
// missing REDIS_URI leaves RedisClient nil and callers degrade gracefully.
func InitRedis(redisURI string) {
	if redisURI == "" {
		log.Println("⚠️ REDIS_URI not set. Rate limiting and SMS fast-login tokens disabled.")
		return
	}
	RedisURI = redisURI
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     redisURI,
		Password: "",
		DB:       0,
	})
	if _, err := RedisClient.Ping(RedisCtx).Result(); err != nil {
		panic("❌ Failed to connect Redis: " + err.Error())
	}
	log.Println("✅ Redis connected successfully")
}
