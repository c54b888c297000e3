package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisConn *redis.Client

// NewRedis starts an embedded redis server once and returns a client
// connected to it.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisConn = redis.NewClient(&redis.Options{Addr: server.Addr()})
	})
	return redisConn
}

// ClearRedis flushes every key between scenarios.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
