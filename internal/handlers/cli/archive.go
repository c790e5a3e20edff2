package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/blockarchive/internal/archiveinfo"
	"github.com/gabapcia/blockarchive/internal/archiver"
	"github.com/urfave/cli/v3"
)

func streamFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "stream",
		Usage: "Stream the height belongs to (livesync or backfill)",
		Value: string(archiver.LiveSync),
	}
}

// archiveCommand returns a CLI command that archives one height.
//
// Usage example:
//
//	blockarchive archive --stream backfill --height 19000000
func archiveCommand(svc archiver.Service) *cli.Command {
	return &cli.Command{
		Name:        "archive",
		Description: "Fetches, packs and submits a single block, then records its transaction.",
		Usage:       "Archives one height and prints the archive transaction id.",
		Flags: []cli.Flag{
			streamFlag(),
			&cli.Uint64Flag{
				Name:     "height",
				Usage:    "Block height to archive",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			stream, err := archiver.ParseStreamKind(c.String("stream"))
			if err != nil {
				return err
			}

			txid, err := svc.ArchiveHeight(ctx, stream, c.Uint64("height"))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.Root().Writer, txid)
			return err
		},
	}
}

// decodeCommand returns a CLI command that prints an archived block as JSON.
//
// Usage example:
//
//	blockarchive decode --tx 0xabc...
//	blockarchive decode --stream livesync --height 21000000
func decodeCommand(info archiveinfo.Service) *cli.Command {
	return &cli.Command{
		Name:        "decode",
		Description: "Reads an archive transaction and prints the block it carries.",
		Usage:       "Decodes an archived block by transaction id or by stream and height.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "tx",
				Usage: "Archive transaction id",
			},
			streamFlag(),
			&cli.Uint64Flag{
				Name:  "height",
				Usage: "Archived block height, used when --tx is not set",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if txid := c.String("tx"); txid != "" {
				b, err := info.DecodeTransaction(ctx, txid)
				if err != nil {
					return err
				}

				return printJSON(c.Root().Writer, b)
			}

			if !c.IsSet("height") {
				return fmt.Errorf("either --tx or --height is required")
			}

			stream, err := archiver.ParseStreamKind(c.String("stream"))
			if err != nil {
				return err
			}

			archived, err := info.ArchivedBlock(ctx, stream, c.Uint64("height"))
			if err != nil {
				return err
			}

			return printJSON(c.Root().Writer, archived)
		},
	}
}

// infoCommand returns a CLI command that prints the archive summary.
func infoCommand(info archiveinfo.Service) *cli.Command {
	return &cli.Command{
		Name:        "info",
		Description: "Prints progress of both streams, wallet balances and lag behind the chain head.",
		Usage:       "Prints the archive summary as JSON.",
		Action: func(ctx context.Context, c *cli.Command) error {
			return printJSON(c.Root().Writer, info.Snapshot(ctx))
		},
	}
}
