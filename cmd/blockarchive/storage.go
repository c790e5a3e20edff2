package main

import (
	"context"
	"fmt"

	"github.com/gabapcia/blockarchive/internal/archiver"
	"github.com/gabapcia/blockarchive/internal/config"
	"github.com/gabapcia/blockarchive/internal/infra/storage/mysql"
	"github.com/gabapcia/blockarchive/internal/infra/storage/postgres"
	"github.com/gabapcia/blockarchive/internal/infra/storage/redis"
)

type progressStore interface {
	archiver.ProgressStorage
	Close() error
}

// openStorage connects to the progress store selected by STORE_DRIVER. Every
// backend scopes its records to the network name.
func openStorage(ctx context.Context, cfg config.Config) (progressStore, error) {
	network := cfg.Network.Name

	switch cfg.Env.StoreDriver {
	case config.DriverMySQL:
		return mysql.Open(ctx, cfg.Env.StoreDSN, network)
	case config.DriverPostgres:
		return postgres.Open(ctx, cfg.Env.StoreDSN, network)
	case config.DriverRedis:
		return redis.NewClient(ctx, network, cfg.Env.RedisAddr, cfg.Env.RedisUsername, cfg.Env.RedisPassword, cfg.Env.RedisDB)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Env.StoreDriver)
	}
}
