package controllers

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Env carries the store handles into every handler. RDB may be nil, in which
// case the leaderboard cache is skipped.
type Env struct {
	DB  *gorm.DB
	RDB *redis.Client
}
