package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a redis client for the leaderboard cache, or nil when
// no address is configured or the server is unreachable. The service works
// without it, queries just always hit the database.
func ConnectRedis(addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Printf("Redis not available, leaderboard cache disabled: %v", err)
		return nil
	}

	log.Println("Redis connection successfully established.")
	return rdb
}
