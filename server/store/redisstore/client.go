// Package redisstore implements the Repository Layer against an external
// Redis instance via go-redis, so a fleet of Controllers can share session,
// route and member state instead of each tracking it in isolation.
package redisstore

import (
	"os"

	"github.com/redis/go-redis/v9"
)

// NewClient builds a go-redis client from the REDIS_URL environment
// variable, defaulting to a local Redis on its standard port when unset.
func NewClient() (*redis.Client, error) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = "redis://127.0.0.1:6379/0"
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}
