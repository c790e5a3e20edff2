package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/blockarchive/internal/archiver"
	"github.com/gabapcia/blockarchive/internal/pkg/logger"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

// startCommand returns a CLI command that runs both archiving streams and the
// HTTP surface.
//
// Usage example:
//
//	blockarchive start
//
// The process runs until it receives SIGINT or SIGTERM, or until the backfill
// stream violates the continuity checkpoint. Other halted streams are logged
// and reported by /healthz while the process keeps serving.
func startCommand(svc archiver.Service, srv Server) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Runs the live-sync and backfill streams together with the HTTP surface.",
		Usage:       "Starts archiving. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			failures, err := svc.Start(ctx)
			if err != nil {
				return err
			}
			defer svc.Close()

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return srv.Run(ctx)
			})
			g.Go(func() error {
				return watchFailures(ctx, failures)
			})

			return g.Wait()
		},
	}
}

// watchFailures logs every halted stream and returns the failure that must
// stop the process.
func watchFailures(ctx context.Context, failures <-chan *archiver.ArchiveFailure) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case failure, ok := <-failures:
			if !ok {
				return nil
			}

			logger.Error(ctx, "stream halted",
				"stream.kind", failure.Stream,
				"block.height", failure.Height,
				"error", failure.Err,
			)

			if errors.Is(failure, archiver.ErrContinuityViolation) {
				return failure
			}
		}
	}
}
