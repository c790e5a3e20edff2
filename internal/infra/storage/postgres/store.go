// Package postgres implements archiver.ProgressStorage on PostgreSQL through pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/blockarchive/internal/archiver"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createTable = `
	CREATE TABLE IF NOT EXISTS archived_blocks (
		network    TEXT NOT NULL,
		stream     TEXT NOT NULL,
		block_id   BIGINT NOT NULL,
		tx_id      TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (network, stream, block_id)
	)
`

const (
	selectLatest = `SELECT MAX(block_id) FROM archived_blocks WHERE network = $1 AND stream = $2`
	selectFirst  = `SELECT MIN(block_id) FROM archived_blocks WHERE network = $1 AND stream = $2`
	selectCount  = `SELECT COUNT(*) FROM archived_blocks WHERE network = $1`
	selectTxID   = `SELECT tx_id FROM archived_blocks WHERE network = $1 AND stream = $2 AND block_id = $3`

	// Re-recording a height replaces its transaction id.
	upsertArchived = `
		INSERT INTO archived_blocks (network, stream, block_id, tx_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (network, stream, block_id)
		DO UPDATE SET tx_id = EXCLUDED.tx_id, updated_at = NOW()
	`
)

// querier is the subset of *pgxpool.Pool used by the store.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type store struct {
	db      querier
	network string
	close   func()
}

// Compile-time assertion to ensure store implements the ProgressStorage interface.
var _ archiver.ProgressStorage = (*store)(nil)

// Open connects to connString, verifies the connection and creates the
// archive table when missing.
func Open(ctx context.Context, connString, network string) (*store, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if _, err := pool.Exec(ctx, createTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &store{db: pool, network: network, close: pool.Close}, nil
}

// Close releases the connection pool.
func (s *store) Close() error {
	if s.close != nil {
		s.close()
	}

	return nil
}

func (s *store) edge(ctx context.Context, query string, stream archiver.StreamKind) (uint64, error) {
	var height *int64
	if err := s.db.QueryRow(ctx, query, s.network, string(stream)).Scan(&height); err != nil {
		return 0, err
	}

	if height == nil {
		return 0, archiver.ErrNoProgressFound
	}

	return uint64(*height), nil
}

// LatestArchived returns the highest archived height of stream.
func (s *store) LatestArchived(ctx context.Context, stream archiver.StreamKind) (uint64, error) {
	return s.edge(ctx, selectLatest, stream)
}

// FirstArchived returns the lowest archived height of stream.
func (s *store) FirstArchived(ctx context.Context, stream archiver.StreamKind) (uint64, error) {
	return s.edge(ctx, selectFirst, stream)
}

func (s *store) RecordArchived(ctx context.Context, stream archiver.StreamKind, height uint64, txid string) error {
	_, err := s.db.Exec(ctx, upsertArchived, s.network, string(stream), int64(height), txid)
	return err
}

// TotalCount returns the number of archived heights across every stream of the network.
func (s *store) TotalCount(ctx context.Context) (uint64, error) {
	var total int64
	if err := s.db.QueryRow(ctx, selectCount, s.network).Scan(&total); err != nil {
		return 0, err
	}

	return uint64(total), nil
}

func (s *store) TxID(ctx context.Context, stream archiver.StreamKind, height uint64) (string, error) {
	var txid string

	err := s.db.QueryRow(ctx, selectTxID, s.network, string(stream), int64(height)).Scan(&txid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = archiver.ErrRecordNotFound
		}

		return "", err
	}

	return txid, nil
}
