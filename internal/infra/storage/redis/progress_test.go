package redis

import (
	"os"
	"testing"

	"github.com/gabapcia/blockarchive/internal/archiver"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	c := &client{namespace: "polkadot"}

	assert.Equal(t, "archive:polkadot:livesync:heights", c.heightsKey(archiver.LiveSync))
	assert.Equal(t, "archive:polkadot:backfill:txids", c.txidsKey(archiver.Backfill))
}

// newTestClient connects to the server named by REDIS_TEST_ADDR, skipping the
// test when it is unset. Every test gets its own namespace.
func newTestClient(t *testing.T) *client {
	t.Helper()

	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	c, err := NewClient(t.Context(), "test-"+uuid.NewString(), addr, "", "", 0)
	require.NoError(t, err)

	t.Cleanup(func() {
		for _, stream := range archiver.Streams {
			c.conn.Del(t.Context(), c.heightsKey(stream), c.txidsKey(stream))
		}
		_ = c.Close()
	})

	return c
}

func TestProgress(t *testing.T) {
	t.Run("empty stream reports no progress", func(t *testing.T) {
		c := newTestClient(t)

		_, err := c.LatestArchived(t.Context(), archiver.LiveSync)
		assert.ErrorIs(t, err, archiver.ErrNoProgressFound)

		_, err = c.FirstArchived(t.Context(), archiver.LiveSync)
		assert.ErrorIs(t, err, archiver.ErrNoProgressFound)

		_, err = c.TxID(t.Context(), archiver.LiveSync, 1)
		assert.ErrorIs(t, err, archiver.ErrRecordNotFound)
	})

	t.Run("tracks first, latest and total across streams", func(t *testing.T) {
		c := newTestClient(t)
		ctx := t.Context()

		require.NoError(t, c.RecordArchived(ctx, archiver.LiveSync, 101, "0xa"))
		require.NoError(t, c.RecordArchived(ctx, archiver.LiveSync, 100, "0xb"))
		require.NoError(t, c.RecordArchived(ctx, archiver.Backfill, 7, "0xc"))

		latest, err := c.LatestArchived(ctx, archiver.LiveSync)
		require.NoError(t, err)
		assert.Equal(t, uint64(101), latest)

		first, err := c.FirstArchived(ctx, archiver.LiveSync)
		require.NoError(t, err)
		assert.Equal(t, uint64(100), first)

		total, err := c.TotalCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
	})

	t.Run("re-recording a height keeps one entry with the last txid", func(t *testing.T) {
		c := newTestClient(t)
		ctx := t.Context()

		require.NoError(t, c.RecordArchived(ctx, archiver.LiveSync, 100, "0xfirst"))
		require.NoError(t, c.RecordArchived(ctx, archiver.LiveSync, 100, "0xsecond"))

		txid, err := c.TxID(ctx, archiver.LiveSync, 100)
		require.NoError(t, err)
		assert.Equal(t, "0xsecond", txid)

		total, err := c.TotalCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)

		latest, err := c.LatestArchived(ctx, archiver.LiveSync)
		require.NoError(t, err)
		assert.Equal(t, uint64(100), latest)
	})
}
