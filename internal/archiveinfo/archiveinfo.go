// Package archiveinfo assembles the public view of an archiver: progress of
// both streams, wallet balances, and archived blocks read back from the
// archival chain.
package archiveinfo

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/gabapcia/blockarchive/internal/archiver"
	"github.com/gabapcia/blockarchive/internal/block"
)

// Calldata reads the input data of an archive transaction.
type Calldata interface {
	Calldata(ctx context.Context, txid string) ([]byte, error)
}

// StatusReader exposes the live status of the streams of a running archiver.
type StatusReader interface {
	Status(kind archiver.StreamKind) archiver.StreamStatus
}

// Network describes the source chain being archived.
type Network struct {
	Name      string
	SourceRPC string
}

// Wallet is the sender identity of one stream. Balance is nil when it could
// not be read, in which case BalanceError says why.
type Wallet struct {
	Address      string   `json:"address"`
	Balance      *big.Int `json:"balance"`
	BalanceError string   `json:"balance_error,omitempty"`
}

// Info is a point-in-time summary of the archive. Heights are nil when the
// stream has not archived anything or the lookup failed; failed lookups are
// listed in Errors.
type Info struct {
	NetworkName        string                  `json:"network_name"`
	NetworkRPC         string                  `json:"network_rpc"`
	LivesyncStartBlock uint64                  `json:"livesync_start_block"`
	FirstLivesyncBlock *uint64                 `json:"first_livesync_block"`
	LastLivesyncBlock  *uint64                 `json:"last_livesync_block"`
	FirstBackfillBlock *uint64                 `json:"first_backfill_block"`
	LastBackfillBlock  *uint64                 `json:"last_backfill_block"`
	TotalArchived      *uint64                 `json:"total_archived_blocks"`
	BlocksBehindLive   *uint64                 `json:"blocks_behind_live_blockheight"`
	Archiver           Wallet                  `json:"archiver"`
	Backfill           Wallet                  `json:"backfill"`
	Streams            []archiver.StreamStatus `json:"streams,omitempty"`
	Errors             []string                `json:"errors,omitempty"`
}

// ArchivedBlock is a block read back from its archive transaction.
type ArchivedBlock struct {
	Stream archiver.StreamKind `json:"stream"`
	Height uint64              `json:"height"`
	TxID   string              `json:"tx_id"`
	Block  block.Block         `json:"block"`
}

// Service answers read-only questions about the archive.
type Service interface {
	// Snapshot gathers the current Info. Individual lookup failures are
	// reported inside Info instead of failing the whole snapshot.
	Snapshot(ctx context.Context) Info

	// ArchivedBlock returns the block archived by stream at height.
	ArchivedBlock(ctx context.Context, stream archiver.StreamKind, height uint64) (ArchivedBlock, error)

	// DecodeTransaction unpacks the block carried by the archive transaction txid.
	DecodeTransaction(ctx context.Context, txid string) (block.Block, error)
}

type service struct {
	network    Network
	schedule   archiver.Schedule
	storage    archiver.ProgressStorage
	blockchain archiver.Blockchain
	wallets    archiver.Wallets
	calldata   Calldata
	status     StatusReader
}

var _ Service = (*service)(nil)

// Option configures optional collaborators of the service.
type Option func(*service)

// WithStatus includes the live status of each stream in snapshots.
func WithStatus(status StatusReader) Option {
	return func(s *service) {
		s.status = status
	}
}

// New returns an info Service.
func New(
	network Network,
	schedule archiver.Schedule,
	storage archiver.ProgressStorage,
	blockchain archiver.Blockchain,
	wallets archiver.Wallets,
	calldata Calldata,
	opts ...Option,
) *service {
	s := &service{
		network:    network,
		schedule:   schedule,
		storage:    storage,
		blockchain: blockchain,
		wallets:    wallets,
		calldata:   calldata,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *service) ArchivedBlock(ctx context.Context, stream archiver.StreamKind, height uint64) (ArchivedBlock, error) {
	txid, err := s.storage.TxID(ctx, stream, height)
	if err != nil {
		return ArchivedBlock{}, err
	}

	b, err := s.DecodeTransaction(ctx, txid)
	if err != nil {
		return ArchivedBlock{}, err
	}

	return ArchivedBlock{Stream: stream, Height: height, TxID: txid, Block: b}, nil
}

func (s *service) DecodeTransaction(ctx context.Context, txid string) (block.Block, error) {
	payload, err := s.calldata.Calldata(ctx, txid)
	if err != nil {
		return block.Block{}, err
	}

	b, err := block.Unpack(payload)
	if err != nil {
		return block.Block{}, fmt.Errorf("decode %s: %w", txid, err)
	}

	return b, nil
}

// height converts a progress lookup into an optional height. A stream without
// progress is not an error.
func height(v uint64, err error) (*uint64, error) {
	if err != nil {
		if errors.Is(err, archiver.ErrNoProgressFound) {
			return nil, nil
		}

		return nil, err
	}

	return &v, nil
}
