// Package config loads the process environment and the network document it
// points at.
//
// The environment carries secrets and deployment settings (store, HTTP address,
// log level). The network document, JSON or YAML chosen by file extension,
// describes the source chain, the archive chain and the identities used to
// archive it.
package config

import (
	"errors"
	"fmt"

	"github.com/gabapcia/blockarchive/internal/pkg/validator"
	"github.com/kelseyhightower/envconfig"
)

var (
	// ErrUnsupportedFormat is returned when the network document is neither JSON nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported network document format")

	// ErrMissingBackfillStart is returned when neither the document nor the
	// environment sets the backfill start height.
	ErrMissingBackfillStart = errors.New("backfill start block is not set")

	// ErrSelfSend is returned when a sender address is the archive pool address.
	ErrSelfSend = errors.New("sender address equals the archive pool address")
)

// Store drivers.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Env is the process environment.
type Env struct {
	Network            string  `envconfig:"NETWORK" required:"true" validate:"required"`
	BackfillStartBlock *uint64 `envconfig:"BACKFILL_START_BLOCK"`

	ArchiverPrivateKey string `envconfig:"ARCHIVER_PRIVATE_KEY"`
	BackfillPrivateKey string `envconfig:"BACKFILL_PRIVATE_KEY"`

	StoreDriver   string `envconfig:"STORE_DRIVER" default:"mysql" validate:"oneof=mysql postgres redis"`
	StoreDSN      string `envconfig:"STORE_DSN" validate:"required_unless=StoreDriver redis"`
	RedisAddr     string `envconfig:"REDIS_ADDR" validate:"required_if=StoreDriver redis"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`

	HTTPAddr         string `envconfig:"HTTP_ADDR" default:":8080"`
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"blockarchive"`
}

// Config is the fully loaded configuration.
type Config struct {
	Env     Env
	Network Network
}

// LoadEnv reads and validates the process environment.
func LoadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return Env{}, fmt.Errorf("read environment: %w", err)
	}

	if err := validator.Validate(env); err != nil {
		return Env{}, err
	}

	return env, nil
}

// Load reads the environment and the network document named by NETWORK.
func Load() (Config, error) {
	env, err := LoadEnv()
	if err != nil {
		return Config{}, err
	}

	network, err := LoadNetwork(env.Network, env.BackfillStartBlock)
	if err != nil {
		return Config{}, err
	}

	return Config{Env: env, Network: network}, nil
}
