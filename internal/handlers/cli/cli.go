package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/gabapcia/blockarchive/internal/archiveinfo"
	"github.com/gabapcia/blockarchive/internal/archiver"
	"github.com/urfave/cli/v3"
)

// Server is the HTTP surface run alongside the streams.
type Server interface {
	Run(ctx context.Context) error
}

// Run initializes and executes the blockarchive CLI application.
//
// It registers all available commands, including:
//
//   - `start`: Runs both archiving streams and the HTTP surface.
//   - `archive`: Archives a single height of a stream.
//   - `decode`: Reads an archived block back from the archive chain.
//   - `info`: Prints the archive summary.
//
// This function sets up shell completion and invokes the CLI framework to parse and run commands.
func Run(ctx context.Context, svc archiver.Service, info archiveinfo.Service, srv Server) error {
	return newApp(svc, info, srv).Run(ctx, os.Args)
}

func newApp(svc archiver.Service, info archiveinfo.Service, srv Server) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "blockarchive",
		Description:           "Archives the blocks of a Substrate chain onto an EVM archive chain.",
		Usage:                 "blockarchive [command] [flags]",
		Commands: []*cli.Command{
			startCommand(svc, srv),
			archiveCommand(svc),
			decodeCommand(info),
			infoCommand(info),
		},
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
