package broadcast

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher publishes hints over a Redis pub/sub channel.
type RedisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher constructs a publisher for the given Redis address.
// Connectivity is not verified here: the relay tolerates an unreachable
// backend by design.
func NewRedisPublisher(addr, password string) *RedisPublisher {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	return &RedisPublisher{client: client}
}

// Publish sends the payload to the named channel.
func (p *RedisPublisher) Publish(ctx context.Context, channel string, payload []byte) error {
	return p.client.Publish(ctx, channel, payload).Err()
}

// Close releases the underlying connection pool.
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
