package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gabapcia/blockarchive/internal/archiver"
	"github.com/redis/go-redis/v9"
)

// archiveKeyPrefix is the namespace prefix for all keys related to archive progress.
const archiveKeyPrefix = "archive"

// heightsKey returns the sorted set holding every archived height of a stream,
// scored by the height itself. The format is:
//
//	"archive:<namespace>:<stream>:heights"
func (c *client) heightsKey(stream archiver.StreamKind) string {
	return fmt.Sprintf("%s:%s:%s:heights", archiveKeyPrefix, c.namespace, stream)
}

// txidsKey returns the hash mapping each archived height of a stream to its
// transaction id. The format is:
//
//	"archive:<namespace>:<stream>:txids"
func (c *client) txidsKey(stream archiver.StreamKind) string {
	return fmt.Sprintf("%s:%s:%s:txids", archiveKeyPrefix, c.namespace, stream)
}

// edge returns the lowest (rev == false) or highest (rev == true) archived height.
func (c *client) edge(ctx context.Context, stream archiver.StreamKind, rev bool) (uint64, error) {
	key := c.heightsKey(stream)

	var (
		members []redis.Z
		err     error
	)
	if rev {
		members, err = c.conn.ZRevRangeWithScores(ctx, key, 0, 0).Result()
	} else {
		members, err = c.conn.ZRangeWithScores(ctx, key, 0, 0).Result()
	}
	if err != nil {
		return 0, err
	}

	if len(members) == 0 {
		return 0, archiver.ErrNoProgressFound
	}

	return uint64(members[0].Score), nil
}

// LatestArchived returns the highest archived height of stream.
func (c *client) LatestArchived(ctx context.Context, stream archiver.StreamKind) (uint64, error) {
	return c.edge(ctx, stream, true)
}

// FirstArchived returns the lowest archived height of stream.
func (c *client) FirstArchived(ctx context.Context, stream archiver.StreamKind) (uint64, error) {
	return c.edge(ctx, stream, false)
}

// RecordArchived adds height to the stream's sorted set and stores its
// transaction id in a single MULTI/EXEC block. Recording a height again
// overwrites its transaction id.
func (c *client) RecordArchived(ctx context.Context, stream archiver.StreamKind, height uint64, txid string) error {
	member := strconv.FormatUint(height, 10)

	_, err := c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, c.heightsKey(stream), redis.Z{Score: float64(height), Member: member})
		pipe.HSet(ctx, c.txidsKey(stream), member, txid)
		return nil
	})

	return err
}

// TotalCount returns the number of archived heights across every stream.
func (c *client) TotalCount(ctx context.Context) (uint64, error) {
	cmds := make([]*redis.IntCmd, 0, len(archiver.Streams))

	_, err := c.conn.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, stream := range archiver.Streams {
			cmds = append(cmds, pipe.ZCard(ctx, c.heightsKey(stream)))
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	var total uint64
	for _, cmd := range cmds {
		total += uint64(cmd.Val())
	}

	return total, nil
}

// TxID returns the transaction id recorded for height.
func (c *client) TxID(ctx context.Context, stream archiver.StreamKind, height uint64) (string, error) {
	txid, err := c.conn.HGet(ctx, c.txidsKey(stream), strconv.FormatUint(height, 10)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = archiver.ErrRecordNotFound
		}

		return "", err
	}

	return txid, nil
}

// Compile-time assertion to ensure client implements the ProgressStorage interface.
var _ archiver.ProgressStorage = new(client)
