package archiveinfo

import (
	"context"
	"fmt"

	"github.com/gabapcia/blockarchive/internal/archiver"
	"github.com/gabapcia/blockarchive/internal/pkg/logger"
)

func (s *service) Snapshot(ctx context.Context) Info {
	info := Info{
		NetworkName:        s.network.Name,
		NetworkRPC:         s.network.SourceRPC,
		LivesyncStartBlock: s.schedule.LiveSyncStart,
		Archiver:           s.wallet(ctx, archiver.LiveSync),
		Backfill:           s.wallet(ctx, archiver.Backfill),
	}

	fail := func(what string, err error) {
		logger.Warn(ctx, "info lookup failed", "lookup", what, "error", err)
		info.Errors = append(info.Errors, fmt.Sprintf("%s: %v", what, err))
	}

	var err error
	if info.FirstLivesyncBlock, err = height(s.storage.FirstArchived(ctx, archiver.LiveSync)); err != nil {
		fail("first livesync block", err)
	}
	lastKnown := true
	if info.LastLivesyncBlock, err = height(s.storage.LatestArchived(ctx, archiver.LiveSync)); err != nil {
		lastKnown = false
		fail("last livesync block", err)
	}
	if info.FirstBackfillBlock, err = height(s.storage.FirstArchived(ctx, archiver.Backfill)); err != nil {
		fail("first backfill block", err)
	}
	if info.LastBackfillBlock, err = height(s.storage.LatestArchived(ctx, archiver.Backfill)); err != nil {
		fail("last backfill block", err)
	}

	if total, err := s.storage.TotalCount(ctx); err != nil {
		fail("total archived blocks", err)
	} else {
		info.TotalArchived = &total
	}

	if lastKnown {
		if head, err := s.blockchain.LatestHeight(ctx); err != nil {
			fail("chain head", err)
		} else {
			behind := s.behindLive(head, info.LastLivesyncBlock)
			info.BlocksBehindLive = &behind
		}
	}

	if s.status != nil {
		for _, kind := range archiver.Streams {
			info.Streams = append(info.Streams, s.status.Status(kind))
		}
	}

	return info
}

// behindLive is the distance between head and the last live-sync height. A
// stream that has not archived anything yet is measured from the block before
// its start height, so the gap keeps growing while live-sync is stuck.
func (s *service) behindLive(head uint64, last *uint64) uint64 {
	var archived uint64
	switch {
	case last != nil:
		archived = *last
	case s.schedule.LiveSyncStart > 0:
		archived = s.schedule.LiveSyncStart - 1
	}

	if head <= archived {
		return 0
	}

	return head - archived
}

func (s *service) wallet(ctx context.Context, stream archiver.StreamKind) Wallet {
	w := Wallet{Address: s.wallets.Address(stream)}

	balance, err := s.wallets.Balance(ctx, stream)
	if err != nil {
		logger.Warn(ctx, "wallet balance unavailable", "stream.kind", stream, "error", err)
		w.BalanceError = err.Error()
		return w
	}

	w.Balance = balance
	return w
}
