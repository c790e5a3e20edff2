// Package evm implements archiver.Submitter and archiver.Wallets on an
// EVM-compatible archive chain through go-ethereum.
package evm

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/gabapcia/blockarchive/internal/archiver"
)

var (
	// ErrInvalidAddress is returned when an address is not a 20 byte hex string.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidKey is returned when a private key cannot be parsed.
	ErrInvalidKey = errors.New("invalid private key")

	// ErrWalletMismatch is returned when a private key does not control the configured address.
	ErrWalletMismatch = errors.New("private key does not match wallet address")

	// ErrReadOnlyWallet is returned by Submit and Ready when the stream's wallet
	// has no private key. It is always joined with archiver.ErrSubmitterUnavailable.
	ErrReadOnlyWallet = errors.New("wallet has no private key")

	// ErrUnknownWallet is returned when no wallet is configured for a stream.
	// Submit and Ready join it with archiver.ErrSubmitterUnavailable.
	ErrUnknownWallet = errors.New("no wallet configured for stream")

	// ErrTxNotFound is returned by Calldata when the archive chain does not know the transaction.
	ErrTxNotFound = errors.New("transaction not found")
)

// Client is the subset of *ethclient.Client used by the submitter.
type Client interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	TransactionByHash(ctx context.Context, hash common.Hash) (tx *types.Transaction, isPending bool, err error)
}

var _ Client = (*ethclient.Client)(nil)

// Dial connects to the archive chain JSON-RPC endpoint.
func Dial(ctx context.Context, rpcURL string) (*ethclient.Client, error) {
	return ethclient.DialContext(ctx, rpcURL)
}

// Wallet is the sending identity of one stream. A wallet without a key can
// report its address and balance but cannot submit.
type Wallet struct {
	Address common.Address
	key     *ecdsa.PrivateKey

	mu       sync.Mutex         // serializes nonce selection and broadcast
	inflight *types.Transaction // signed transaction whose broadcast outcome is unknown
}

// NewWallet parses address and, when hexKey is not empty, the private key that
// controls it.
func NewWallet(address, hexKey string) (*Wallet, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}

	w := &Wallet{Address: common.HexToAddress(address)}
	if hexKey == "" {
		return w, nil
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	if derived := crypto.PubkeyToAddress(key.PublicKey); derived != w.Address {
		return nil, fmt.Errorf("%w: key controls %s, expected %s", ErrWalletMismatch, derived, w.Address)
	}

	w.key = key
	return w, nil
}

// CanSign reports whether the wallet holds a private key.
func (w *Wallet) CanSign() bool {
	return w.key != nil
}

type submitter struct {
	client  Client
	signer  types.Signer
	pool    common.Address
	wallets map[archiver.StreamKind]*Wallet
}

var (
	_ archiver.Submitter = (*submitter)(nil)
	_ archiver.Wallets   = (*submitter)(nil)
)

// New returns a submitter that sends legacy EIP-155 transactions signed for
// chainID to the pool address, one wallet per stream.
func New(client Client, chainID *big.Int, pool string, wallets map[archiver.StreamKind]*Wallet) (*submitter, error) {
	if !common.IsHexAddress(pool) {
		return nil, fmt.Errorf("%w: pool %q", ErrInvalidAddress, pool)
	}

	return &submitter{
		client:  client,
		signer:  types.NewEIP155Signer(chainID),
		pool:    common.HexToAddress(pool),
		wallets: wallets,
	}, nil
}

func (s *submitter) wallet(stream archiver.StreamKind) (*Wallet, error) {
	w, ok := s.wallets[stream]
	if !ok || w == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWallet, stream)
	}

	return w, nil
}

// signingWallet returns the wallet of stream when it can sign transactions.
func (s *submitter) signingWallet(stream archiver.StreamKind) (*Wallet, error) {
	w, err := s.wallet(stream)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", archiver.ErrSubmitterUnavailable, err)
	}

	if !w.CanSign() {
		return nil, fmt.Errorf("%w: %w: %s", archiver.ErrSubmitterUnavailable, ErrReadOnlyWallet, stream)
	}

	return w, nil
}

// Ready implements archiver.Submitter.
func (s *submitter) Ready(stream archiver.StreamKind) error {
	_, err := s.signingWallet(stream)
	return err
}
