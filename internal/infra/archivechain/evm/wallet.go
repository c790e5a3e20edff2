package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/gabapcia/blockarchive/internal/archiver"
)

// Address returns the checksummed address of the stream's wallet, or an empty
// string when the stream has none.
func (s *submitter) Address(stream archiver.StreamKind) string {
	w, err := s.wallet(stream)
	if err != nil {
		return ""
	}

	return w.Address.Hex()
}

// Balance returns the latest balance of the stream's wallet in wei.
func (s *submitter) Balance(ctx context.Context, stream archiver.StreamKind) (*big.Int, error) {
	w, err := s.wallet(stream)
	if err != nil {
		return nil, err
	}

	balance, err := s.client.BalanceAt(ctx, w.Address, nil)
	if err != nil {
		return nil, fmt.Errorf("balance of %s: %w", w.Address, err)
	}

	return balance, nil
}
