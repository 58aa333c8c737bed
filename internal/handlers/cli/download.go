package cli

import (
	"context"
	"fmt"

	"github.com/voidbay/paygate/internal/catalog"
	"github.com/voidbay/paygate/internal/downloadsession"

	"github.com/urfave/cli/v3"
)

// downloadItemCommand returns a CLI command that triggers a download session
// for a catalog item and follows its status transitions until the session
// settles back to idle.
//
// Usage example:
//
//	paygate download --item nebula-drift --platform windows
func downloadItemCommand(downloads downloadsession.Service, cat catalog.Service) *cli.Command {
	return &cli.Command{
		Name:        "download",
		Description: "Trigger a download for a catalog item and follow its progress.",
		Usage:       "Starts a download session. The item must exist in the catalog.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "item",
				Usage:    "Catalog item identifier",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "platform",
				Usage: "Build variant to download (windows, linux); omit for the default artifact",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			out := commandWriter(c)

			item, err := cat.Get(ctx, c.String("item"))
			if err != nil {
				return err
			}

			platform := downloadsession.Platform(c.String("platform"))
			if !downloads.Available(platform) {
				fmt.Fprintf(out, "%s builds are coming soon\n", platform)
				return nil
			}

			key := downloadsession.Key{ItemID: item.ID, Platform: platform}
			transitions, cancel := downloads.Watch(key)
			defer cancel()

			if err := downloads.Trigger(ctx, item.ID, item.Title, platform); err != nil {
				return err
			}

			fmt.Fprintf(out, "Downloading %q\n", item.Title)

			for snap := range transitions {
				if snap.Status == downloadsession.StatusIdle {
					break
				}

				if snap.Label != "" {
					fmt.Fprintln(out, snap.Label)
				}
				if snap.Status == downloadsession.StatusDownloading && snap.FileName != "" {
					fmt.Fprintf(out, "Saving as %s\n", snap.FileName)
				}
			}

			return nil
		},
	}
}
