// Package archiver coordinates the two archiving streams of a network.
//
// Each stream walks source-chain heights in strictly increasing order, one at a
// time: it fetches the block, packs it into the compressed binary envelope,
// submits the payload to the archival chain from the stream's own identity and
// records the resulting transaction id in the progress store. The live-sync
// stream follows the chain head from the configured start height, while the
// backfill stream fills the range below it and stops right before the live-sync
// start height (the continuity checkpoint).
package archiver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"
)

var (
	// ErrBlockNotFound is returned by a Blockchain when the requested height does not exist yet.
	ErrBlockNotFound = errors.New("block not found")

	// ErrNoProgressFound is returned by a ProgressStorage when a stream has no archived height.
	ErrNoProgressFound = errors.New("no archived height found for stream")

	// ErrRecordNotFound is returned by a ProgressStorage when a given height was never archived.
	ErrRecordNotFound = errors.New("archive record not found")

	// ErrContinuityViolation is returned when the backfill stream reaches the live-sync start height.
	ErrContinuityViolation = errors.New("backfill crossed the live-sync start height")

	// ErrUnknownStream is returned when a stream name is neither livesync nor backfill.
	ErrUnknownStream = errors.New("unknown stream")

	// ErrServiceAlreadyStarted is returned by Start when the streams are already running.
	ErrServiceAlreadyStarted = errors.New("service already started")

	// ErrInvalidSchedule is returned by New when the schedule cannot drive both streams.
	ErrInvalidSchedule = errors.New("invalid schedule")

	// ErrSubmitterUnavailable is wrapped by a Submitter that can never send for a
	// stream, for instance because its identity has no signing key.
	ErrSubmitterUnavailable = errors.New("stream cannot submit archive transactions")

	// ErrHeightOutOfRange is returned by ArchiveHeight when the height lies
	// outside the range owned by the stream.
	ErrHeightOutOfRange = errors.New("height outside the stream range")
)

// StreamKind identifies one of the two archiving streams.
type StreamKind string

const (
	// LiveSync archives from the configured start height toward the chain head.
	LiveSync StreamKind = "livesync"

	// Backfill archives from the backfill start height up to the live-sync start height.
	Backfill StreamKind = "backfill"
)

// Streams lists every stream kind in a stable order.
var Streams = []StreamKind{LiveSync, Backfill}

// Valid reports whether k names a known stream.
func (k StreamKind) Valid() bool {
	return k == LiveSync || k == Backfill
}

func (k StreamKind) String() string {
	return string(k)
}

// ParseStreamKind converts a stream name into a StreamKind.
func ParseStreamKind(s string) (StreamKind, error) {
	k := StreamKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStream, s)
	}

	return k, nil
}

// Blockchain is the source chain the streams read blocks from.
type Blockchain interface {
	// FetchBlockByHeight returns the raw JSON document of the block at height.
	// It returns ErrBlockNotFound when the height is not available.
	FetchBlockByHeight(ctx context.Context, height uint64) (json.RawMessage, error)

	// LatestHeight returns the height of the current chain head.
	LatestHeight(ctx context.Context) (uint64, error)
}

// Submitter publishes archive payloads on the archival chain.
type Submitter interface {
	// Submit sends payload as calldata from the identity bound to stream and
	// returns the transaction id once the archival chain accepted it.
	Submit(ctx context.Context, payload []byte, stream StreamKind) (string, error)

	// Ready reports whether stream has an identity able to submit. The returned
	// error wraps ErrSubmitterUnavailable.
	Ready(stream StreamKind) error
}

// Wallets exposes the identities used by a Submitter.
type Wallets interface {
	// Address returns the sender address bound to stream.
	Address(stream StreamKind) string

	// Balance returns the current balance of the sender bound to stream.
	Balance(ctx context.Context, stream StreamKind) (*big.Int, error)
}

// ProgressStorage persists which heights were archived by each stream.
//
// It is the single source of truth for resuming after a restart. Recording a
// height that was already recorded overwrites its transaction id.
type ProgressStorage interface {
	// LatestArchived returns the highest height archived by stream, or
	// ErrNoProgressFound when the stream has not archived anything.
	LatestArchived(ctx context.Context, stream StreamKind) (uint64, error)

	// FirstArchived returns the lowest height archived by stream, or
	// ErrNoProgressFound when the stream has not archived anything.
	FirstArchived(ctx context.Context, stream StreamKind) (uint64, error)

	// RecordArchived stores txid as the archive transaction of height.
	RecordArchived(ctx context.Context, stream StreamKind, height uint64, txid string) error

	// TotalCount returns the number of archived heights across all streams.
	TotalCount(ctx context.Context) (uint64, error)

	// TxID returns the transaction id recorded for height, or ErrRecordNotFound.
	TxID(ctx context.Context, stream StreamKind, height uint64) (string, error)
}

// Schedule holds the bounds and pacing shared by both streams.
type Schedule struct {
	LiveSyncStart uint64        // first live-sync height and exclusive upper bound of backfill
	BackfillStart uint64        // first backfill height
	BlockTime     time.Duration // nominal block interval, used as the polling period
}

// start returns the height a stream begins at when nothing was archived yet.
func (s Schedule) start(kind StreamKind) uint64 {
	if kind == Backfill {
		return s.BackfillStart
	}

	return s.LiveSyncStart
}

// contains reports whether height belongs to the range archived by kind.
func (s Schedule) contains(kind StreamKind, height uint64) bool {
	if kind == Backfill {
		return height >= s.BackfillStart && height < s.LiveSyncStart
	}

	return height >= s.LiveSyncStart
}

func (s Schedule) validate() error {
	if s.BlockTime <= 0 {
		return fmt.Errorf("%w: block time must be positive", ErrInvalidSchedule)
	}

	if s.BackfillStart > s.LiveSyncStart {
		return fmt.Errorf("%w: backfill start %d is above live-sync start %d", ErrInvalidSchedule, s.BackfillStart, s.LiveSyncStart)
	}

	return nil
}

// ArchiveFailure describes the error that halted a stream.
type ArchiveFailure struct {
	Stream StreamKind // stream that halted
	Height uint64     // height that could not be archived
	Err    error      // permanent error
}

func (f *ArchiveFailure) Error() string {
	return fmt.Sprintf("%s stream halted at height %d: %v", f.Stream, f.Height, f.Err)
}

func (f *ArchiveFailure) Unwrap() error {
	return f.Err
}
