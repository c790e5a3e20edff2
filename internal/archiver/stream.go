package archiver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/blockarchive/internal/block"
	"github.com/gabapcia/blockarchive/internal/pkg/logger"
	"github.com/gabapcia/blockarchive/internal/pkg/x/chflow"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// pending remembers a submission whose record has not been stored yet, so the
// next attempt for the same height records it instead of submitting again.
type pending struct {
	height uint64
	txid   string
}

func (p *pending) matches(height uint64) bool {
	return p != nil && p.txid != "" && p.height == height
}

// Run implements Service.
//
// The stream resumes from the height after the last archived one, then loops:
// it polls whether the next height is archivable, archives it and polls again,
// or waits one block time when there is nothing to do or the attempt failed
// with a transient error. Permanent errors halt the stream.
func (s *service) Run(ctx context.Context, kind StreamKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStream, kind)
	}

	ctx = logger.Derive(ctx, "stream.kind", kind)
	defer func() {
		if !s.status.get(kind).Halted() {
			s.status.setState(kind, StateIdle)
		}
	}()

	next := s.resume(ctx, kind)

	var (
		head      uint64
		submitted pending
		complete  bool
	)
	for ctx.Err() == nil {
		s.status.setState(kind, StatePolling)

		archivable, err := s.poll(ctx, kind, next, &head)
		if err == nil && archivable {
			s.status.setState(kind, StateArchiving)
			_, err = s.archive(ctx, kind, next, &submitted)
			if err == nil {
				next++
				continue
			}
		}

		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			if IsPermanent(err) {
				return s.halt(ctx, kind, next, err)
			}

			s.status.failed(kind, err)
			logger.Warn(ctx, "archive cycle failed, retrying after one block time",
				"block.height", next,
				"error", err,
			)
		}

		if !archivable && err == nil && kind == Backfill {
			if !complete {
				logger.Info(ctx, "backfill reached the live-sync start height", "block.height", next)
				complete = true
			}
			s.status.setState(kind, StateComplete)
		} else {
			s.status.setState(kind, StateWaiting)
		}

		if !chflow.Sleep(ctx, s.schedule.BlockTime) {
			return nil
		}
	}

	return nil
}

// resume returns the first height the stream has to archive. Storage errors
// are logged and fall back to the configured start height.
func (s *service) resume(ctx context.Context, kind StreamKind) uint64 {
	s.status.setState(kind, StateResuming)

	next := s.schedule.start(kind)
	latest, err := s.storage.LatestArchived(ctx, kind)
	switch {
	case errors.Is(err, ErrNoProgressFound):
		logger.Info(ctx, "no archived height found, starting from the configured height", "block.height", next)
	case err != nil:
		logger.Error(ctx, "failed to load archived height, starting from the configured height",
			"block.height", next,
			"error", err,
		)
	default:
		next = latest + 1
		s.status.update(kind, func(st *StreamStatus) { st.LastArchived = &latest })
		logger.Info(ctx, "stream resumed", "block.height", next)
	}

	s.status.update(kind, func(st *StreamStatus) { st.NextHeight = next })
	return next
}

// poll reports whether next can be archived now.
//
// Live-sync can archive every height up to the chain head. The head is only
// refreshed once next goes past the last known one. Backfill can archive every
// height below the live-sync start height; reaching it completes the stream.
func (s *service) poll(ctx context.Context, kind StreamKind, next uint64, head *uint64) (bool, error) {
	if kind == Backfill {
		if next > s.schedule.LiveSyncStart {
			return false, s.assertContinuity(kind, next)
		}

		return next < s.schedule.LiveSyncStart, nil
	}

	if next <= *head {
		return true, nil
	}

	err := s.retrier(ctx).Execute(ctx, func() error {
		latest, err := s.blockchain.LatestHeight(ctx)
		if err != nil {
			return err
		}

		*head = latest
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("fetch chain head: %w", err)
	}

	s.status.update(kind, func(st *StreamStatus) { st.Head = *head })
	return next <= *head, nil
}

// assertContinuity rejects backfill heights at or above the live-sync start height.
func (s *service) assertContinuity(kind StreamKind, height uint64) error {
	if kind == Backfill && height >= s.schedule.LiveSyncStart {
		return fmt.Errorf("%w: height %d, live-sync start %d", ErrContinuityViolation, height, s.schedule.LiveSyncStart)
	}

	return nil
}

func (s *service) halt(ctx context.Context, kind StreamKind, height uint64, err error) error {
	failure := &ArchiveFailure{Stream: kind, Height: height, Err: err}

	s.status.halted(kind, err)
	logger.Error(ctx, "stream halted",
		"block.height", height,
		"error", err,
	)

	return failure
}

// ArchiveHeight implements Service.
func (s *service) ArchiveHeight(ctx context.Context, kind StreamKind, height uint64) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStream, kind)
	}

	if err := s.assertContinuity(kind, height); err != nil {
		return "", err
	}

	if !s.schedule.contains(kind, height) {
		return "", fmt.Errorf("%w: %s height %d, live-sync start %d, backfill start %d",
			ErrHeightOutOfRange, kind, height, s.schedule.LiveSyncStart, s.schedule.BackfillStart)
	}

	ctx = logger.Derive(ctx, "stream.kind", kind)
	return s.archive(ctx, kind, height, nil)
}

// archive fetches, packs, submits and records a single height.
func (s *service) archive(ctx context.Context, kind StreamKind, height uint64, submitted *pending) (txid string, err error) {
	if err := s.assertContinuity(kind, height); err != nil {
		return "", err
	}

	attemptID := uuid.Must(uuid.NewV7()).String()
	ctx = logger.Derive(ctx, "block.height", height, "archive.id", attemptID)

	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "archiver.archive", trace.WithAttributes(
		attribute.String("stream", kind.String()),
		attribute.Int64("block.height", int64(height)),
	))
	defer span.End()

	started := time.Now()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			s.metrics.recordFailure(ctx, kind, IsPermanent(err))
			return
		}

		s.metrics.recordArchived(ctx, kind, started)
	}()

	if submitted.matches(height) {
		txid = submitted.txid
		logger.Info(ctx, "recording previously submitted block", "tx.id", txid)
	} else {
		txid, err = s.submit(ctx, kind, height)
		if err != nil {
			return "", err
		}

		if submitted != nil {
			*submitted = pending{height: height, txid: txid}
		}
	}

	err = s.retrier(ctx).Execute(ctx, func() error {
		return s.storage.RecordArchived(ctx, kind, height, txid)
	})
	if err != nil {
		return "", fmt.Errorf("record block %d (tx %s): %w", height, txid, err)
	}

	if submitted != nil {
		*submitted = pending{}
	}

	s.status.archived(kind, height, txid)
	span.SetAttributes(attribute.String("tx.id", txid))
	logger.Info(ctx, "block archived", "tx.id", txid)

	return txid, nil
}

// submit fetches and packs the block at height and submits its payload.
func (s *service) submit(ctx context.Context, kind StreamKind, height uint64) (string, error) {
	var raw json.RawMessage
	err := s.retrier(ctx).Execute(ctx, func() error {
		var err error
		raw, err = s.blockchain.FetchBlockByHeight(ctx, height)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("fetch block %d: %w", height, err)
	}

	payload, err := block.Pack(raw)
	if err != nil {
		return "", fmt.Errorf("pack block %d: %w", height, err)
	}
	s.metrics.recordPayload(ctx, kind, len(payload))

	var txid string
	err = s.retrier(ctx).Execute(ctx, func() error {
		var err error
		txid, err = s.submitter.Submit(ctx, payload, kind)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("submit block %d: %w", height, err)
	}

	logger.Debug(ctx, "block submitted", "tx.id", txid, "payload.size", len(payload))
	return txid, nil
}
