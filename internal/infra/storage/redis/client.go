// Package redis implements archiver.ProgressStorage on top of Redis.
package redis

import (
	"context"

	redis "github.com/redis/go-redis/v9"
)

type client struct {
	conn      *redis.Client
	namespace string // network name every key is scoped to
}

func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to Redis and scopes every key to namespace, usually the network name.
func NewClient(ctx context.Context, namespace, addr, username, password string, db int) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &client{
		conn:      conn,
		namespace: namespace,
	}, nil
}
