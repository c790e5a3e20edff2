package evm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/gabapcia/blockarchive/internal/archiver"
	"github.com/gabapcia/blockarchive/internal/pkg/logger"
)

// Submit signs a transaction carrying payload as calldata from the stream's
// wallet to the pool and broadcasts it. It returns the transaction hash once
// the node accepts it; inclusion is not awaited.
//
// When a broadcast fails without an answer from the node, the signed
// transaction is kept and the next Submit of the same payload sends it again
// with the same nonce and hash.
func (s *submitter) Submit(ctx context.Context, payload []byte, stream archiver.StreamKind) (string, error) {
	w, err := s.signingWallet(stream)
	if err != nil {
		return "", err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	tx := w.inflight
	if tx != nil && bytes.Equal(tx.Data(), payload) {
		logger.Info(ctx, "rebroadcasting archive transaction", "stream.kind", stream, "tx.id", tx.Hash().Hex())
	} else {
		if tx, err = s.sign(ctx, w, payload); err != nil {
			return "", err
		}
	}

	if err := s.broadcast(ctx, w, tx); err != nil {
		return "", err
	}

	txid := tx.Hash().Hex()
	logger.Debug(ctx, "archive transaction sent",
		"stream.kind", stream,
		"tx.id", txid,
		"tx.nonce", tx.Nonce(),
		"tx.gas", tx.Gas(),
	)

	return txid, nil
}

// sign builds the legacy transaction for payload with the wallet's next nonce.
func (s *submitter) sign(ctx context.Context, w *Wallet, payload []byte) (*types.Transaction, error) {
	nonce, err := s.client.PendingNonceAt(ctx, w.Address)
	if err != nil {
		return nil, fmt.Errorf("pending nonce: %w", err)
	}

	gasPrice, err := s.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas price: %w", err)
	}

	gas, err := s.client.EstimateGas(ctx, ethereum.CallMsg{
		From:     w.Address,
		To:       &s.pool,
		GasPrice: gasPrice,
		Data:     payload,
	})
	if err != nil {
		return nil, fmt.Errorf("estimate gas: %w", err)
	}

	tx, err := types.SignTx(types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       &s.pool,
		Value:    big.NewInt(0),
		Data:     payload,
	}), s.signer, w.key)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}

	return tx, nil
}

// broadcast sends tx and tracks it on w while its outcome is unknown.
//
// A JSON-RPC error is an answer from the node and drops the transaction. Any
// other failure (timeouts, transport errors) keeps it for the next attempt.
func (s *submitter) broadcast(ctx context.Context, w *Wallet, tx *types.Transaction) error {
	err := s.client.SendTransaction(ctx, tx)
	if err == nil || isAlreadyKnown(err) {
		w.inflight = nil
		return nil
	}

	if w.inflight == tx {
		// mined or pooled since the previous attempt
		if _, _, lookupErr := s.client.TransactionByHash(ctx, tx.Hash()); lookupErr == nil {
			w.inflight = nil
			return nil
		}
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		w.inflight = nil
	} else {
		w.inflight = tx
	}

	return fmt.Errorf("send transaction %s: %w", tx.Hash().Hex(), err)
}

// isAlreadyKnown reports whether the node rejected a transaction because its
// pool already holds it.
func isAlreadyKnown(err error) bool {
	return strings.Contains(err.Error(), "already known")
}

// Calldata returns the input data of the transaction txid.
func (s *submitter) Calldata(ctx context.Context, txid string) ([]byte, error) {
	tx, _, err := s.client.TransactionByHash(ctx, common.HexToHash(txid))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTxNotFound, txid)
		}

		return nil, err
	}

	return tx.Data(), nil
}
