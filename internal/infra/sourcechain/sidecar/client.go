// Package sidecar implements archiver.Blockchain for Substrate chains exposed
// through a REST sidecar.
package sidecar

import (
	"github.com/gabapcia/blockarchive/internal/archiver"
	"github.com/gabapcia/blockarchive/internal/pkg/transport/rest"
)

// client implements archiver.Blockchain on top of a REST connection to the sidecar.
type client struct {
	conn rest.Client // REST client rooted at the sidecar base URL
}

// Ensure client implements the archiver.Blockchain interface at compile time.
var _ archiver.Blockchain = (*client)(nil)

// NewClient creates a sidecar client using the provided REST connection.
// Retries are left to the caller, so conn should not retry on its own.
func NewClient(conn rest.Client) *client {
	return &client{
		conn: conn,
	}
}
