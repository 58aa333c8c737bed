package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/voidbay/paygate/internal/paymentverify"

	"github.com/urfave/cli/v3"
)

// verifyPaymentCommand returns a CLI command that verifies a payment
// transaction against the configured policy and, when the payment checks out,
// optionally reveals the decrypt key and copies it to the clipboard.
//
// Usage example:
//
//	paygate verify --signature 5Kd3N... --reveal --copy
func verifyPaymentCommand(verifier paymentverify.Service) *cli.Command {
	return &cli.Command{
		Name:        "verify",
		Description: "Verify a payment transaction by signature and unlock the decrypt key when it is valid.",
		Usage:       "Verifies a transaction signature. The decrypt key is only revealed for valid payments.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "signature",
				Usage:    "Transaction signature to verify",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "reveal",
				Usage: "Print the decrypt key when the payment is valid",
			},
			&cli.BoolFlag{
				Name:  "copy",
				Usage: "Copy the decrypt key to the clipboard when the payment is valid",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			out := commandWriter(c)

			result, err := verifier.Verify(ctx, c.String("signature"))
			if err != nil {
				// Lookup and validation failures are part of the workflow, not
				// program errors: print the user-facing message and exit clean.
				fmt.Fprintln(out, paymentverify.UserMessage(err))
				return nil
			}

			printVerification(out, result)

			if !result.Verdict.Valid {
				return nil
			}

			if c.Bool("reveal") || c.Bool("copy") {
				secret, err := verifier.Reveal()
				if err != nil {
					return err
				}

				if c.Bool("reveal") {
					fmt.Fprintf(out, "Decrypt key: %s\n", secret)
				}

				if c.Bool("copy") {
					if err := verifier.CopySecret(ctx); err != nil {
						return err
					}
					fmt.Fprintln(out, "Copied to clipboard")
				}
			}

			return nil
		},
	}
}

func printVerification(out io.Writer, result paymentverify.Result) {
	status := func(ok bool) string {
		if ok {
			return "OK"
		}
		return "MISMATCH"
	}

	fmt.Fprintf(out, "Sender:    %s\n", result.Record.Sender)
	fmt.Fprintf(out, "Receiver:  %s (expected %s) [%s]\n", result.Record.Receiver, result.ExpectedReceiver, status(result.Verdict.ReceiverValid))
	fmt.Fprintf(out, "Amount:    %g SOL (minimum %g) [%s]\n", result.Record.AmountSOL, result.ExpectedSOL, status(result.Verdict.AmountValid))
	fmt.Fprintf(out, "Fee:       %g SOL\n", result.Record.Fee)
	if result.Record.BlockTime != nil {
		fmt.Fprintf(out, "Block:     %s\n", result.Record.BlockTime.Format("2006-01-02 15:04:05 MST"))
	}
	if result.Record.SelfTransfer {
		fmt.Fprintln(out, "Note:      sender and receiver are the same account")
	}

	if result.Verdict.Valid {
		fmt.Fprintln(out, "Payment verified")
	} else {
		fmt.Fprintln(out, "Payment rejected")
	}
}
