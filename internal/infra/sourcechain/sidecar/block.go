package sidecar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/gabapcia/blockarchive/internal/archiver"
	"github.com/gabapcia/blockarchive/internal/pkg/transport/rest"
)

// ErrInvalidHead is returned when the head block does not carry a decimal number.
var ErrInvalidHead = errors.New("invalid head block number")

// headResponse is the part of GET /blocks/head the client reads.
// The sidecar encodes block numbers as decimal strings.
type headResponse struct {
	Number string `json:"number"`
}

// FetchBlockByHeight returns the raw JSON of the block at height.
func (c *client) FetchBlockByHeight(ctx context.Context, height uint64) (json.RawMessage, error) {
	data, err := c.conn.Get(ctx, "blocks/"+strconv.FormatUint(height, 10))
	if err != nil {
		if errors.Is(err, rest.ErrNotFound) {
			return nil, fmt.Errorf("%w: height %d", archiver.ErrBlockNotFound, height)
		}

		return nil, fmt.Errorf("fetch block %d: %w", height, err)
	}

	return data, nil
}

// LatestHeight returns the number of the current head block.
func (c *client) LatestHeight(ctx context.Context) (uint64, error) {
	data, err := c.conn.Get(ctx, "blocks/head")
	if err != nil {
		return 0, fmt.Errorf("fetch head block: %w", err)
	}

	var head headResponse
	if err := json.Unmarshal(data, &head); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidHead, err)
	}

	height, err := strconv.ParseUint(head.Number, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHead, head.Number)
	}

	return height, nil
}
