package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabapcia/blockarchive/internal/archiver"
	"github.com/gabapcia/blockarchive/internal/pkg/validator"
	"gopkg.in/yaml.v3"
)

// Network describes the archived chain and the archive chain.
type Network struct {
	Name               string  `json:"name" validate:"required"`
	SourceChainID      uint64  `json:"source_chain_id"`
	ArchiveChainID     uint64  `json:"archive_chain_id" validate:"required"`
	SourceRPC          string  `json:"source_rpc" validate:"required,url"`
	ArchiveRPC         string  `json:"archive_rpc" validate:"required,url"`
	BlockTime          float64 `json:"block_time" validate:"gt=0"`
	StartBlock         uint64  `json:"start_block"`
	BackfillStartBlock uint64  `json:"backfill_start_block" validate:"ltfield=StartBlock"`
	ArchiverAddress    string  `json:"archiver_address" validate:"required,eth_addr"`
	BackfillAddress    string  `json:"backfill_address" validate:"required,eth_addr"`
	ArchivePoolAddress string  `json:"archive_pool_address" validate:"required,eth_addr"`
}

// document is the on-disk shape of a Network. The backfill start may be
// left to the environment.
type document struct {
	Name               string  `json:"name" yaml:"name"`
	SourceChainID      uint64  `json:"source_chain_id" yaml:"source_chain_id"`
	ArchiveChainID     uint64  `json:"archive_chain_id" yaml:"archive_chain_id"`
	SourceRPC          string  `json:"source_rpc" yaml:"source_rpc"`
	ArchiveRPC         string  `json:"archive_rpc" yaml:"archive_rpc"`
	BlockTime          float64 `json:"block_time" yaml:"block_time"`
	StartBlock         uint64  `json:"start_block" yaml:"start_block"`
	BackfillStartBlock *uint64 `json:"backfill_start_block" yaml:"backfill_start_block"`
	ArchiverAddress    string  `json:"archiver_address" yaml:"archiver_address"`
	BackfillAddress    string  `json:"backfill_address" yaml:"backfill_address"`
	ArchivePoolAddress string  `json:"archive_pool_address" yaml:"archive_pool_address"`
}

// LoadNetwork reads the network document at path. backfillStart is used when
// the document does not set backfill_start_block.
func LoadNetwork(path string, backfillStart *uint64) (Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Network{}, fmt.Errorf("read network document: %w", err)
	}

	var doc document
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&doc)
	default:
		return Network{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return Network{}, fmt.Errorf("parse network document %s: %w", path, err)
	}

	return doc.network(backfillStart)
}

func (d document) network(backfillStart *uint64) (Network, error) {
	if d.BackfillStartBlock == nil {
		d.BackfillStartBlock = backfillStart
	}

	if d.BackfillStartBlock == nil {
		return Network{}, ErrMissingBackfillStart
	}

	n := Network{
		Name:               d.Name,
		SourceChainID:      d.SourceChainID,
		ArchiveChainID:     d.ArchiveChainID,
		SourceRPC:          d.SourceRPC,
		ArchiveRPC:         d.ArchiveRPC,
		BlockTime:          d.BlockTime,
		StartBlock:         d.StartBlock,
		BackfillStartBlock: *d.BackfillStartBlock,
		ArchiverAddress:    d.ArchiverAddress,
		BackfillAddress:    d.BackfillAddress,
		ArchivePoolAddress: d.ArchivePoolAddress,
	}

	if err := n.Validate(); err != nil {
		return Network{}, err
	}

	return n, nil
}

// Validate checks field constraints and that neither sender is the pool.
func (n Network) Validate() error {
	if err := validator.Validate(n); err != nil {
		return err
	}

	for _, sender := range []string{n.ArchiverAddress, n.BackfillAddress} {
		if strings.EqualFold(sender, n.ArchivePoolAddress) {
			return fmt.Errorf("%w: %s", ErrSelfSend, sender)
		}
	}

	return nil
}

// BlockDuration returns BlockTime as a time.Duration.
func (n Network) BlockDuration() time.Duration {
	return time.Duration(n.BlockTime * float64(time.Second))
}

// Schedule returns the stream bounds of the network.
func (n Network) Schedule() archiver.Schedule {
	return archiver.Schedule{
		LiveSyncStart: n.StartBlock,
		BackfillStart: n.BackfillStartBlock,
		BlockTime:     n.BlockDuration(),
	}
}
