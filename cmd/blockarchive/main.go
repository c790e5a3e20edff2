// Command blockarchive archives the blocks of a Substrate chain onto an EVM
// archive chain.
package main

import (
	"context"
	"math/big"
	"os"

	"github.com/gabapcia/blockarchive/internal/archiveinfo"
	"github.com/gabapcia/blockarchive/internal/archiver"
	"github.com/gabapcia/blockarchive/internal/config"
	"github.com/gabapcia/blockarchive/internal/handlers/cli"
	"github.com/gabapcia/blockarchive/internal/handlers/httpapi"
	"github.com/gabapcia/blockarchive/internal/infra/archivechain/evm"
	"github.com/gabapcia/blockarchive/internal/infra/sourcechain/sidecar"
	"github.com/gabapcia/blockarchive/internal/pkg/logger"
	"github.com/gabapcia/blockarchive/internal/pkg/telemetry"
	httpclient "github.com/gabapcia/blockarchive/internal/pkg/transport/http"
	"github.com/gabapcia/blockarchive/internal/pkg/transport/rest"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	ctx := context.Background()

	if err := run(ctx); err != nil {
		// No-op when run already initialized the logger.
		_ = logger.Init("info")
		logger.Error(ctx, "blockarchive stopped", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Env.LogLevel); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	registry := prometheus.NewRegistry()
	telemetryOpts := []telemetry.Option{telemetry.WithPrometheus(registry)}
	if cfg.Env.TelemetryEnabled {
		telemetryOpts = append(telemetryOpts, telemetry.WithOTLP())
	}

	shutdownTelemetry, err := telemetry.Init(ctx, cfg.Env.ServiceName, cfg.Network.Name, telemetryOpts...)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			logger.Warn(ctx, "telemetry shutdown failed", "error", err)
		}
	}()

	storage, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = storage.Close() }()

	// Streams retry on their own, so the source connection does not.
	source := sidecar.NewClient(rest.NewClient(
		httpclient.NewStandardClient(httpclient.WithRetryMax(0)),
		cfg.Network.SourceRPC,
	))

	eth, err := evm.Dial(ctx, cfg.Network.ArchiveRPC)
	if err != nil {
		return err
	}
	defer eth.Close()

	submitter, err := newSubmitter(eth, cfg)
	if err != nil {
		return err
	}

	schedule := cfg.Network.Schedule()

	svc, err := archiver.New(source, submitter, storage, schedule)
	if err != nil {
		return err
	}

	info := archiveinfo.New(
		archiveinfo.Network{Name: cfg.Network.Name, SourceRPC: cfg.Network.SourceRPC},
		schedule,
		storage,
		source,
		submitter,
		submitter,
		archiveinfo.WithStatus(svc),
	)

	srv := httpapi.NewServer(cfg.Env.HTTPAddr, info, httpapi.WithHealth(svc), httpapi.WithRegistry(registry))

	logger.Info(ctx, "blockarchive configured",
		"network.name", cfg.Network.Name,
		"store.driver", cfg.Env.StoreDriver,
		"livesync.start", schedule.LiveSyncStart,
		"backfill.start", schedule.BackfillStart,
	)

	return cli.Run(ctx, svc, info, srv)
}

// archiveSubmitter sends archive transactions and reads them back.
type archiveSubmitter interface {
	archiver.Submitter
	archiver.Wallets
	archiveinfo.Calldata
}

func newSubmitter(client evm.Client, cfg config.Config) (archiveSubmitter, error) {
	archiverWallet, err := evm.NewWallet(cfg.Network.ArchiverAddress, cfg.Env.ArchiverPrivateKey)
	if err != nil {
		return nil, err
	}

	backfillWallet, err := evm.NewWallet(cfg.Network.BackfillAddress, cfg.Env.BackfillPrivateKey)
	if err != nil {
		return nil, err
	}

	return evm.New(client, new(big.Int).SetUint64(cfg.Network.ArchiveChainID), cfg.Network.ArchivePoolAddress, map[archiver.StreamKind]*evm.Wallet{
		archiver.LiveSync: archiverWallet,
		archiver.Backfill: backfillWallet,
	})
}
