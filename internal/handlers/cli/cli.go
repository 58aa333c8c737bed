// Package cli is the command-line surface of the payment-gated release
// workflow: payment verification, key disclosure, download sessions, and
// catalog browsing.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/voidbay/paygate/internal/catalog"
	"github.com/voidbay/paygate/internal/downloadsession"
	"github.com/voidbay/paygate/internal/paymentverify"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the paygate CLI application.
//
// It registers all available commands:
//
//   - `verify`: Verifies a payment transaction and optionally reveals the key.
//   - `download`: Triggers a download session and follows it to completion.
//   - `catalog`: Lists catalog items with optional filtering.
func Run(ctx context.Context, verifier paymentverify.Service, downloads downloadsession.Service, cat catalog.Service) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "paygate",
		Description:           "Command-line interface for the payment-gated release workflow.",
		Usage:                 "paygate [command] [flags]",
		Commands: []*cli.Command{
			verifyPaymentCommand(verifier),
			downloadItemCommand(downloads, cat),
			listCatalogCommand(cat),
		},
	}

	return app.Run(ctx, os.Args)
}

// commandWriter returns the command's configured output writer, falling back
// to stdout.
func commandWriter(c *cli.Command) io.Writer {
	if w := c.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
